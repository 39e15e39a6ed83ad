package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go-internmatch-portal/internal/api"
	"go-internmatch-portal/internal/config"
	"go-internmatch-portal/internal/recommend"
	"go-internmatch-portal/internal/session"
	"go-internmatch-portal/internal/wizard"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. API: %s", cfg.APIBaseURL)

	client := api.NewClient(cfg.APIBaseURL)
	store := session.New(client, session.NewFileStore(cfg.SessionPath))
	svc := recommend.NewService(client, recommend.NewSeenCache(cfg.CachePath))

	ctx := context.Background()
	store.Initialize(ctx)
	if sess := store.User(); sess != nil {
		fmt.Printf("👤 Welcome back, %s %s!\n", sess.FirstName, sess.LastName)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("\n=== InternMatch Portal ===")
		if store.IsAuthenticated() {
			fmt.Println("  1) Edit profile")
			fmt.Println("  2) Show recommendations")
			fmt.Println("  3) Browse all internships")
			fmt.Println("  4) Apply for an internship")
			fmt.Println("  5) Logout")
		} else {
			fmt.Println("  1) Login")
			fmt.Println("  2) Register")
		}
		fmt.Println("  0) Quit")

		choice := prompt(reader, "Choice")
		if store.IsAuthenticated() {
			switch choice {
			case "1":
				runWizard(ctx, reader, store)
			case "2":
				showRecommendations(ctx, store, svc, cfg.TopN)
			case "3":
				browseInternships(ctx, client)
			case "4":
				applyForInternship(ctx, reader, store, svc)
			case "5":
				store.Logout()
				fmt.Println("👋 Signed out.")
			case "0":
				return
			}
			continue
		}
		switch choice {
		case "1":
			login(ctx, reader, store)
		case "2":
			register(ctx, reader, store)
		case "0":
			return
		}
	}
}

func login(ctx context.Context, reader *bufio.Reader, store *session.Store) {
	email := prompt(reader, "Email")
	sess, err := store.Login(ctx, email)
	if err != nil {
		fmt.Printf("❌ Login failed: %v\n", err)
		return
	}
	fmt.Printf("✅ Signed in as %s %s\n", sess.FirstName, sess.LastName)
}

// register walks the full wizard to build a profile draft, then creates the
// account from the aggregate.
func register(ctx context.Context, reader *bufio.Reader, store *session.Store) {
	w := wizard.New(store)
	if !collectProfile(reader, w) {
		fmt.Println("ℹ️ Registration cancelled.")
		return
	}
	sess, err := store.Register(ctx, w.Form())
	if err != nil {
		fmt.Printf("❌ Registration failed: %v\n", err)
		return
	}
	fmt.Printf("✅ Account created. Welcome, %s!\n", sess.FirstName)
}

// runWizard edits the existing profile through the five steps and submits.
func runWizard(ctx context.Context, reader *bufio.Reader, store *session.Store) {
	w := wizard.New(store)
	if w.Editing() {
		fmt.Println("📝 Edit your profile")
	} else {
		fmt.Println("📝 Complete your profile")
	}
	if !collectProfile(reader, w) {
		fmt.Println("ℹ️ Changes discarded.")
		return
	}
	if err := w.Submit(ctx); err != nil {
		fmt.Printf("❌ Profile update failed: %v\n", err)
		return
	}
	fmt.Println("✅ Profile saved.")
}

// collectProfile drives the wizard until the final step validates. Returns
// false when the user aborts.
func collectProfile(reader *bufio.Reader, w *wizard.Wizard) bool {
	for {
		switch w.Step() {
		case wizard.StepPersonal:
			fmt.Println("\n-- Step 1/5: Personal Info --")
			editScalar(reader, w, "First name", wizard.FieldFirstName, w.Form().FirstName)
			editScalar(reader, w, "Last name", wizard.FieldLastName, w.Form().LastName)
			editScalar(reader, w, "Email", wizard.FieldEmail, w.Form().Email)
			editScalar(reader, w, "Phone", wizard.FieldPhone, w.Form().Phone)
			editScalar(reader, w, "Location", wizard.FieldLocation, w.Form().Location)
			editScalar(reader, w, "Date of birth (YYYY-MM-DD)", wizard.FieldDateOfBirth, w.Form().DateOfBirth)
			editScalar(reader, w, "Gender", wizard.FieldGender, w.Form().Gender)

		case wizard.StepProfessional:
			fmt.Println("\n-- Step 2/5: Professional --")
			editScalar(reader, w, "Current job title", wizard.FieldCurrentJobTitle, w.Form().CurrentJobTitle)
			editScalar(reader, w, "Current company", wizard.FieldCurrentCompany, w.Form().CurrentCompany)
			editScalar(reader, w, "Experience level (entry/mid/senior/lead)", wizard.FieldExperienceLevel, string(w.Form().ExperienceLevel))
			editScalar(reader, w, "Total experience (0-1/1-3/3-5/5-10/10+)", wizard.FieldTotalExperience, w.Form().TotalExperience)
			editScalar(reader, w, "Expected salary", wizard.FieldExpectedSalary, w.Form().ExpectedSalary)
			editScalar(reader, w, "Preferred job type (full-time/part-time/contract/internship/freelance)", wizard.FieldJobType, string(w.Form().JobType))

		case wizard.StepEducation:
			fmt.Println("\n-- Step 3/5: Education --")
			editEducation(reader, w)

		case wizard.StepSkills:
			fmt.Println("\n-- Step 4/5: Skills --")
			editSkills(reader, w, "Technical skill", wizard.SkillTechnical, w.Form().TechnicalSkills)
			editSkills(reader, w, "Soft skill", wizard.SkillSoft, w.Form().SoftSkills)
			editSkills(reader, w, "Language", wizard.SkillLanguage, w.Form().Languages)

		case wizard.StepPreferences:
			fmt.Println("\n-- Step 5/5: Preferences --")
			editScalar(reader, w, "Company size (startup/small/medium/large/enterprise)", wizard.FieldCompanySize, string(w.Form().CompanySize))
			editScalar(reader, w, "Work location preference (remote/hybrid/onsite/flexible)", wizard.FieldWorkLocation, string(w.Form().WorkLocation))
			w.SetFlag(wizard.FieldRemoteWork, yesNo(reader, "Open to remote work?", w.Form().RemoteWork))
			w.SetFlag(wizard.FieldWillingToRelocate, yesNo(reader, "Willing to relocate?", w.Form().WillingToRelocate))
			editScalar(reader, w, "Bio", wizard.FieldBio, w.Form().Bio)
			editScalar(reader, w, "LinkedIn", wizard.FieldLinkedIn, w.Form().LinkedIn)
			editScalar(reader, w, "GitHub", wizard.FieldGitHub, w.Form().GitHub)
		}

		if w.Step() == wizard.StepPreferences {
			return true
		}

		if !w.Next() {
			fmt.Println("⚠️ Please fix the following:")
			for _, msg := range w.Errors() {
				fmt.Printf("   - %s\n", msg)
			}
			if prompt(reader, "Retry? (y/n)") != "y" {
				return false
			}
		}
	}
}

func editEducation(reader *bufio.Reader, w *wizard.Wizard) {
	for {
		entries := w.Form().Education
		for i := range entries {
			fmt.Printf(" Education %d\n", i+1)
			editArrayField(reader, w, wizard.SectionEducation, i, "Degree (high-school/associate/bachelor/master/phd/certificate)", wizard.FieldDegree, string(entries[i].Degree))
			editArrayField(reader, w, wizard.SectionEducation, i, "Field of study", wizard.FieldStudyField, entries[i].Field)
			editArrayField(reader, w, wizard.SectionEducation, i, "Institution", wizard.FieldInstitution, entries[i].Institution)
			editArrayField(reader, w, wizard.SectionEducation, i, "Graduation year", wizard.FieldGraduationYear, entries[i].GraduationYear)
		}
		if prompt(reader, "Add another education entry? (y/n)") != "y" {
			return
		}
		w.AppendArrayElement(wizard.SectionEducation)
	}
}

func editSkills(reader *bufio.Reader, w *wizard.Wizard, label string, kind wizard.SkillKind, current []string) {
	if len(current) > 0 {
		fmt.Printf(" Current %ss: %s\n", strings.ToLower(label), strings.Join(current, ", "))
	}
	for {
		value := prompt(reader, label+" (blank to stop)")
		if !w.AddSkill(kind, value) {
			return
		}
	}
}

func showRecommendations(ctx context.Context, store *session.Store, svc *recommend.Service, topN int) {
	recs, err := svc.FetchFor(ctx, store.User(), topN)
	if err != nil {
		fmt.Printf("❌ Failed to fetch recommendations: %v\n", err)
		return
	}
	if len(recs) == 0 {
		fmt.Println("ℹ️ No recommendations yet. Complete your profile first.")
		return
	}
	for i, rec := range recs {
		fmt.Printf(" %2d) [%.1f%%] %s @ %s (%s) - id %s\n", i+1, rec.Match, rec.Title, rec.Company, rec.Location, rec.InternshipID)
	}
}

func browseInternships(ctx context.Context, client *api.Client) {
	items, err := client.GetInternships(ctx)
	if err != nil {
		fmt.Printf("❌ Failed to fetch internships: %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Println("ℹ️ No internships posted yet.")
		return
	}
	for i, it := range items {
		fmt.Printf(" %2d) %s @ %s (%s) - id %s\n", i+1, it.Title, it.Company, it.Location, it.ID)
	}
}

func applyForInternship(ctx context.Context, reader *bufio.Reader, store *session.Store, svc *recommend.Service) {
	internshipID := prompt(reader, "Internship id")
	if internshipID == "" {
		return
	}
	appID, err := svc.Apply(ctx, store.User(), internshipID)
	if err != nil {
		fmt.Printf("❌ Application failed: %v\n", err)
		return
	}
	fmt.Printf("✅ Applied! Application id: %s\n", appID)
}

// editScalar prompts with the current value as default; blank keeps it.
func editScalar(reader *bufio.Reader, w *wizard.Wizard, label string, field wizard.Field, current string) {
	value := prompt(reader, fmt.Sprintf("%s [%s]", label, current))
	if value == "" {
		return
	}
	if err := w.SetScalar(field, value); err != nil {
		fmt.Printf("⚠️ %v\n", err)
	}
}

func editArrayField(reader *bufio.Reader, w *wizard.Wizard, section wizard.Section, index int, label string, field wizard.Field, current string) {
	value := prompt(reader, fmt.Sprintf("  %s [%s]", label, current))
	if value == "" {
		return
	}
	if err := w.SetArrayElement(section, index, field, value); err != nil {
		fmt.Printf("⚠️ %v\n", err)
	}
}

func yesNo(reader *bufio.Reader, label string, current bool) bool {
	value := prompt(reader, fmt.Sprintf("%s (y/n) [%s]", label, strconv.FormatBool(current)))
	if value == "" {
		return current
	}
	return strings.EqualFold(value, "y") || strings.EqualFold(value, "yes")
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Printf("%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
