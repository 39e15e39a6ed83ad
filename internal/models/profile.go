package models

import "encoding/json"

type ExperienceLevel string

const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
	ExperienceLead   ExperienceLevel = "lead"
)

type JobType string

const (
	JobFullTime   JobType = "full-time"
	JobPartTime   JobType = "part-time"
	JobContract   JobType = "contract"
	JobInternship JobType = "internship"
	JobFreelance  JobType = "freelance"
)

type WorkLocation string

const (
	WorkRemote   WorkLocation = "remote"
	WorkHybrid   WorkLocation = "hybrid"
	WorkOnsite   WorkLocation = "onsite"
	WorkFlexible WorkLocation = "flexible"
)

type CompanySize string

const (
	SizeStartup    CompanySize = "startup"
	SizeSmall      CompanySize = "small"
	SizeMedium     CompanySize = "medium"
	SizeLarge      CompanySize = "large"
	SizeEnterprise CompanySize = "enterprise"
)

type Degree string

const (
	DegreeHighSchool  Degree = "high-school"
	DegreeAssociate   Degree = "associate"
	DegreeBachelor    Degree = "bachelor"
	DegreeMaster      Degree = "master"
	DegreePhD         Degree = "phd"
	DegreeCertificate Degree = "certificate"
)

//Total experience buckets accepted by the remote system
const (
	ExpBucket0to1   = "0-1"
	ExpBucket1to3   = "1-3"
	ExpBucket3to5   = "3-5"
	ExpBucket5to10  = "5-10"
	ExpBucket10Plus = "10+"
)

type Education struct {
	Degree         Degree `json:"degree,omitempty"`
	Field          string `json:"field,omitempty"`
	Institution    string `json:"institution,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

type WorkExperience struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Profile is the flat user profile record exchanged with the remote system.
// Fields carry omitempty so a partial draft marshals to only the fields it
// actually sets; Merge relies on that. The boolean flags are the exception
// and are always present, so turning one off survives the round trip.
type Profile struct {
	//Personal information
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Gender      string `json:"gender,omitempty"`

	//Professional information
	CurrentJobTitle string          `json:"currentJobTitle,omitempty"`
	CurrentCompany  string          `json:"currentCompany,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	TotalExperience string          `json:"totalExperience,omitempty"`
	ExpectedSalary  string          `json:"expectedSalary,omitempty"`
	JobType         JobType         `json:"jobType,omitempty"`
	WorkLocation    WorkLocation    `json:"workLocation,omitempty"`

	//Education
	Education []Education `json:"education,omitempty"`

	//Skills
	TechnicalSkills []string `json:"technicalSkills,omitempty"`
	SoftSkills      []string `json:"softSkills,omitempty"`
	Languages       []string `json:"languages,omitempty"`

	//Work experience
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`

	//Additional info
	Bio       string `json:"bio,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`

	//Preferences
	CompanySize CompanySize `json:"companySize,omitempty"`
	// The flags are always transmitted: with omitempty a false value
	// would be unrepresentable on the wire and could never unset a
	// previously saved true.
	RemoteWork        bool `json:"remoteWork"`
	WillingToRelocate bool `json:"willingToRelocate"`
}

// NewProfile builds the default working shape: one empty education entry,
// one empty work experience entry, empty skill lists. The wizard always has
// a row to render.
func NewProfile() Profile {
	return Profile{
		Education:       []Education{{}},
		WorkExperience:  []WorkExperience{{}},
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Languages:       []string{},
	}
}

// Normalize re-establishes the default collection shape after rehydration,
// so missing fields never surface as nil.
func (p *Profile) Normalize() {
	if len(p.Education) == 0 {
		p.Education = []Education{{}}
	}
	if len(p.WorkExperience) == 0 {
		p.WorkExperience = []WorkExperience{{}}
	}
	if p.TechnicalSkills == nil {
		p.TechnicalSkills = []string{}
	}
	if p.SoftSkills == nil {
		p.SoftSkills = []string{}
	}
	if p.Languages == nil {
		p.Languages = []string{}
	}
}

// Clone deep-copies the profile so collection edits on the copy never touch
// the original's backing arrays.
func (p Profile) Clone() Profile {
	out := p
	if p.Education != nil {
		out.Education = append([]Education(nil), p.Education...)
	}
	if p.WorkExperience != nil {
		out.WorkExperience = append([]WorkExperience(nil), p.WorkExperience...)
	}
	if p.TechnicalSkills != nil {
		out.TechnicalSkills = append([]string(nil), p.TechnicalSkills...)
	}
	if p.SoftSkills != nil {
		out.SoftSkills = append([]string(nil), p.SoftSkills...)
	}
	if p.Languages != nil {
		out.Languages = append([]string(nil), p.Languages...)
	}
	return out
}

// Merge overlays the fields present in draft onto a copy of p and returns
// the result. Presence is decided by the draft's JSON encoding: zero-valued
// fields are omitted and therefore keep the current value, mirroring an
// object spread keyed on the draft's keys.
func (p Profile) Merge(draft Profile) (Profile, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return p, err
	}
	merged := p.Clone()
	if err := json.Unmarshal(data, &merged); err != nil {
		return p, err
	}
	// json decodes arrays element-wise into the existing backing, which
	// would leak stale fields of sibling entries; collections present in
	// the draft replace the previous sequence wholesale.
	if len(draft.Education) > 0 {
		merged.Education = append([]Education(nil), draft.Education...)
	}
	if len(draft.WorkExperience) > 0 {
		merged.WorkExperience = append([]WorkExperience(nil), draft.WorkExperience...)
	}
	return merged, nil
}
