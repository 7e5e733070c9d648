package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ApplicationStatus represents cleaner application status
type ApplicationStatus string

const (
	ApplicationStatusSubmitted ApplicationStatus = "submitted"
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// WizardStep identifies one screen of the cleaner application wizard
type WizardStep int

const (
	StepIntro WizardStep = iota + 1
	StepPersonalInfo
	StepProfessionalInfo
	StepDocumentUpload
	StepReferences
	StepBackgroundCheck
	StepReview
)

// String returns the step name used in API responses
func (s WizardStep) String() string {
	switch s {
	case StepIntro:
		return "intro"
	case StepPersonalInfo:
		return "personal_info"
	case StepProfessionalInfo:
		return "professional_info"
	case StepDocumentUpload:
		return "document_upload"
	case StepReferences:
		return "references"
	case StepBackgroundCheck:
		return "background_check"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Reference is a single professional reference provided by an applicant
type Reference struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Company      string `json:"company,omitempty"`
}

// Complete reports whether the reference counts toward the minimum.
// Name and phone are the only mandatory parts.
func (r Reference) Complete() bool {
	return r.Name != "" && r.Phone != ""
}

// ApplicantProfile is the mutable data collected across wizard steps
type ApplicantProfile struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	DateOfBirth      string `json:"dateOfBirth"` // YYYY-MM-DD
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	IDType           string `json:"idType"`
	IDNumber         string `json:"idNumber"`
	PictureURL       string `json:"pictureUrl,omitempty"`

	CleaningExperience string   `json:"cleaningExperience"`
	Skills             []string `json:"skills"`
	HasEquipment       bool     `json:"hasEquipment"`
	HasTransportation  bool     `json:"hasTransportation"`
	HasInsurance       bool     `json:"hasInsurance"`
	Availability       []string `json:"availability"`
	PreferredRate      float64  `json:"preferredRate"`

	Documents  map[string]string `json:"documents"`
	References []Reference       `json:"references"`

	BackgroundCheckConsent bool   `json:"backgroundCheckConsent"`
	WorkAuthorization      string `json:"workAuthorization"`
	CriminalRecordAnswer   string `json:"criminalRecordAnswer,omitempty"`
	TermsAgreed            bool   `json:"termsAgreed"`
}

// Snapshot returns a deep copy of the profile so the submitted record
// cannot alias the still-mutable session profile.
func (p ApplicantProfile) Snapshot() ApplicantProfile {
	out := p
	out.Skills = append([]string(nil), p.Skills...)
	out.Availability = append([]string(nil), p.Availability...)
	out.References = append([]Reference(nil), p.References...)
	if p.Documents != nil {
		out.Documents = make(map[string]string, len(p.Documents))
		for k, v := range p.Documents {
			out.Documents[k] = v
		}
	}
	return out
}

// ApplicationRecord is the immutable record created at final submission
type ApplicationRecord struct {
	ID        uuid.UUID         `json:"id"`
	Status    ApplicationStatus `json:"status"`
	Profile   ApplicantProfile  `json:"profile"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Reason    null.String       `json:"reason,omitempty"`
}

// WizardSession is the per-session wizard state: the step pointer and
// the in-progress profile. One session id owns exactly one of these.
type WizardSession struct {
	ID        string           `json:"id"`
	Step      WizardStep       `json:"step"`
	Profile   ApplicantProfile `json:"profile"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// NewWizardSession creates a fresh session at the intro step
func NewWizardSession(id string) *WizardSession {
	return &WizardSession{
		ID:        id,
		Step:      StepIntro,
		Profile:   ApplicantProfile{Documents: map[string]string{}},
		UpdatedAt: time.Now(),
	}
}
