package wizard

import (
	"strings"

	"go-internmatch-portal/internal/models"
)

// validateStep checks only the required fields of one step and returns a
// field → message map. Steps 4 and 5 have no required fields.
func validateStep(step int, form models.Profile) map[string]string {
	errs := map[string]string{}

	switch step {
	case StepPersonal:
		if strings.TrimSpace(form.FirstName) == "" {
			errs["firstName"] = "First name is required"
		}
		if strings.TrimSpace(form.LastName) == "" {
			errs["lastName"] = "Last name is required"
		}
		if strings.TrimSpace(form.Email) == "" {
			errs["email"] = "Email is required"
		}
		if strings.TrimSpace(form.Phone) == "" {
			errs["phone"] = "Phone number is required"
		}
		if strings.TrimSpace(form.Location) == "" {
			errs["location"] = "Location is required"
		}

	case StepProfessional:
		if strings.TrimSpace(form.CurrentJobTitle) == "" {
			errs["currentJobTitle"] = "Current job title is required"
		}
		if form.ExperienceLevel == "" {
			errs["experienceLevel"] = "Experience level is required"
		}
		if form.TotalExperience == "" {
			errs["totalExperience"] = "Total experience is required"
		}

	case StepEducation:
		//structural check only; entry fields themselves are unconstrained
		if len(form.Education) == 0 {
			errs["education"] = "At least one education entry is required"
		}
	}

	return errs
}
