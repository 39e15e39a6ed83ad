package models

type Internship struct {
	ID                  string   `json:"_id,omitempty"`
	Title               string   `json:"title,omitempty"`
	Company             string   `json:"company,omitempty"`
	Description         string   `json:"description,omitempty"`
	Location            string   `json:"location,omitempty"`
	JobType             string   `json:"jobType,omitempty"`
	Duration            string   `json:"duration,omitempty"`
	Salary              string   `json:"salary,omitempty"`
	Skills              []string `json:"skills,omitempty"`
	ExperienceLevel     string   `json:"experienceLevel,omitempty"`
	WorkLocation        string   `json:"workLocation,omitempty"`
	CompanySize         string   `json:"companySize,omitempty"`
	Industry            string   `json:"industry,omitempty"`
	Requirements        []string `json:"requirements,omitempty"`
	Benefits            []string `json:"benefits,omitempty"`
	ApplicationDeadline string   `json:"applicationDeadline,omitempty"`
	StartDate           string   `json:"startDate,omitempty"`
}

// Recommendation is one scored entry from the recommendations endpoint.
// Match is the remote score as a percentage.
type Recommendation struct {
	InternshipID    string   `json:"internship_id"`
	Title           string   `json:"title,omitempty"`
	Company         string   `json:"company,omitempty"`
	Description     string   `json:"description,omitempty"`
	Location        string   `json:"location,omitempty"`
	JobType         string   `json:"jobType,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Salary          string   `json:"salary,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceLevel string   `json:"experienceLevel,omitempty"`
	WorkLocation    string   `json:"workLocation,omitempty"`
	CompanySize     string   `json:"companySize,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	Match           float64  `json:"match"`
}
