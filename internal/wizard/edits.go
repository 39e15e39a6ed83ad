package wizard

import (
	"fmt"
	"strings"

	"go-internmatch-portal/internal/models"
)

// Field names a profile field in an edit operation. The names double as the
// keys of the validation error map.
type Field string

const (
	FieldFirstName       Field = "firstName"
	FieldLastName        Field = "lastName"
	FieldEmail           Field = "email"
	FieldPhone           Field = "phone"
	FieldLocation        Field = "location"
	FieldDateOfBirth     Field = "dateOfBirth"
	FieldGender          Field = "gender"
	FieldCurrentJobTitle Field = "currentJobTitle"
	FieldCurrentCompany  Field = "currentCompany"
	FieldExperienceLevel Field = "experienceLevel"
	FieldTotalExperience Field = "totalExperience"
	FieldExpectedSalary  Field = "expectedSalary"
	FieldJobType         Field = "jobType"
	FieldWorkLocation    Field = "workLocation"
	FieldBio             Field = "bio"
	FieldPortfolio       Field = "portfolio"
	FieldLinkedIn        Field = "linkedin"
	FieldGitHub          Field = "github"
	FieldWebsite         Field = "website"
	FieldCompanySize     Field = "companySize"

	//flags
	FieldRemoteWork        Field = "remoteWork"
	FieldWillingToRelocate Field = "willingToRelocate"

	//education entry fields
	FieldDegree         Field = "degree"
	FieldStudyField     Field = "field"
	FieldInstitution    Field = "institution"
	FieldGraduationYear Field = "graduationYear"
	FieldGPA            Field = "gpa"

	//work experience entry fields
	FieldCompany     Field = "company"
	FieldPosition    Field = "position"
	FieldStartDate   Field = "startDate"
	FieldEndDate     Field = "endDate"
	FieldDescription Field = "description"
)

// Section names a positional collection of the profile.
type Section string

const (
	SectionEducation      Section = "education"
	SectionWorkExperience Section = "workExperience"
)

// SkillKind names one of the free-text string lists.
type SkillKind string

const (
	SkillTechnical SkillKind = "technicalSkills"
	SkillSoft      SkillKind = "softSkills"
	SkillLanguage  SkillKind = "languages"
)

// SetScalar writes one scalar field of the working copy and clears its
// pending validation error.
func (w *Wizard) SetScalar(field Field, value string) error {
	switch field {
	case FieldFirstName:
		w.form.FirstName = value
	case FieldLastName:
		w.form.LastName = value
	case FieldEmail:
		w.form.Email = value
	case FieldPhone:
		w.form.Phone = value
	case FieldLocation:
		w.form.Location = value
	case FieldDateOfBirth:
		w.form.DateOfBirth = value
	case FieldGender:
		w.form.Gender = value
	case FieldCurrentJobTitle:
		w.form.CurrentJobTitle = value
	case FieldCurrentCompany:
		w.form.CurrentCompany = value
	case FieldExperienceLevel:
		w.form.ExperienceLevel = models.ExperienceLevel(value)
	case FieldTotalExperience:
		w.form.TotalExperience = value
	case FieldExpectedSalary:
		w.form.ExpectedSalary = value
	case FieldJobType:
		w.form.JobType = models.JobType(value)
	case FieldWorkLocation:
		w.form.WorkLocation = models.WorkLocation(value)
	case FieldBio:
		w.form.Bio = value
	case FieldPortfolio:
		w.form.Portfolio = value
	case FieldLinkedIn:
		w.form.LinkedIn = value
	case FieldGitHub:
		w.form.GitHub = value
	case FieldWebsite:
		w.form.Website = value
	case FieldCompanySize:
		w.form.CompanySize = models.CompanySize(value)
	default:
		return fmt.Errorf("unknown scalar field %q", field)
	}
	delete(w.errors, string(field))
	return nil
}

// SetFlag writes one of the boolean preference fields.
func (w *Wizard) SetFlag(field Field, value bool) error {
	switch field {
	case FieldRemoteWork:
		w.form.RemoteWork = value
	case FieldWillingToRelocate:
		w.form.WillingToRelocate = value
	default:
		return fmt.Errorf("unknown flag field %q", field)
	}
	return nil
}

// SetArrayElement writes one field of the element at index, replacing only
// that element in a fresh copy of the sequence. Sibling elements and the
// previous sequence are never mutated.
func (w *Wizard) SetArrayElement(section Section, index int, field Field, value string) error {
	switch section {
	case SectionEducation:
		if index < 0 || index >= len(w.form.Education) {
			return fmt.Errorf("education index %d out of range", index)
		}
		items := append([]models.Education(nil), w.form.Education...)
		e := items[index]
		switch field {
		case FieldDegree:
			e.Degree = models.Degree(value)
		case FieldStudyField:
			e.Field = value
		case FieldInstitution:
			e.Institution = value
		case FieldGraduationYear:
			e.GraduationYear = value
		case FieldGPA:
			e.GPA = value
		default:
			return fmt.Errorf("unknown education field %q", field)
		}
		items[index] = e
		w.form.Education = items

	case SectionWorkExperience:
		if index < 0 || index >= len(w.form.WorkExperience) {
			return fmt.Errorf("work experience index %d out of range", index)
		}
		items := append([]models.WorkExperience(nil), w.form.WorkExperience...)
		e := items[index]
		switch field {
		case FieldCompany:
			e.Company = value
		case FieldPosition:
			e.Position = value
		case FieldStartDate:
			e.StartDate = value
		case FieldEndDate:
			e.EndDate = value
		case FieldDescription:
			e.Description = value
		default:
			return fmt.Errorf("unknown work experience field %q", field)
		}
		items[index] = e
		w.form.WorkExperience = items

	default:
		return fmt.Errorf("unknown section %q", section)
	}
	delete(w.errors, string(section))
	return nil
}

// SetWorkExperienceCurrent flips the "still working here" flag of one entry.
func (w *Wizard) SetWorkExperienceCurrent(index int, current bool) error {
	if index < 0 || index >= len(w.form.WorkExperience) {
		return fmt.Errorf("work experience index %d out of range", index)
	}
	items := append([]models.WorkExperience(nil), w.form.WorkExperience...)
	items[index].Current = current
	w.form.WorkExperience = items
	return nil
}

// AppendArrayElement adds an empty-shaped entry to the section.
func (w *Wizard) AppendArrayElement(section Section) error {
	switch section {
	case SectionEducation:
		w.form.Education = append(append([]models.Education(nil), w.form.Education...), models.Education{})
	case SectionWorkExperience:
		w.form.WorkExperience = append(append([]models.WorkExperience(nil), w.form.WorkExperience...), models.WorkExperience{})
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	return nil
}

// RemoveArrayElement removes the entry at index. Keeping at least one entry
// is the presentation layer's job; this is a plain positional removal.
func (w *Wizard) RemoveArrayElement(section Section, index int) error {
	switch section {
	case SectionEducation:
		if index < 0 || index >= len(w.form.Education) {
			return fmt.Errorf("education index %d out of range", index)
		}
		items := append([]models.Education(nil), w.form.Education...)
		w.form.Education = append(items[:index], items[index+1:]...)
	case SectionWorkExperience:
		if index < 0 || index >= len(w.form.WorkExperience) {
			return fmt.Errorf("work experience index %d out of range", index)
		}
		items := append([]models.WorkExperience(nil), w.form.WorkExperience...)
		w.form.WorkExperience = append(items[:index], items[index+1:]...)
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	return nil
}

// AddSkill trims the input and appends it. Blank input is ignored;
// duplicates are accepted, insertion order is kept.
func (w *Wizard) AddSkill(kind SkillKind, value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	switch kind {
	case SkillTechnical:
		w.form.TechnicalSkills = append(append([]string(nil), w.form.TechnicalSkills...), trimmed)
	case SkillSoft:
		w.form.SoftSkills = append(append([]string(nil), w.form.SoftSkills...), trimmed)
	case SkillLanguage:
		w.form.Languages = append(append([]string(nil), w.form.Languages...), trimmed)
	default:
		return false
	}
	return true
}

// RemoveSkill removes by positional index.
func (w *Wizard) RemoveSkill(kind SkillKind, index int) error {
	remove := func(list []string) ([]string, error) {
		if index < 0 || index >= len(list) {
			return nil, fmt.Errorf("skill index %d out of range", index)
		}
		items := append([]string(nil), list...)
		return append(items[:index], items[index+1:]...), nil
	}

	switch kind {
	case SkillTechnical:
		items, err := remove(w.form.TechnicalSkills)
		if err != nil {
			return err
		}
		w.form.TechnicalSkills = items
	case SkillSoft:
		items, err := remove(w.form.SoftSkills)
		if err != nil {
			return err
		}
		w.form.SoftSkills = items
	case SkillLanguage:
		items, err := remove(w.form.Languages)
		if err != nil {
			return err
		}
		w.form.Languages = items
	default:
		return fmt.Errorf("unknown skill kind %q", kind)
	}
	return nil
}
