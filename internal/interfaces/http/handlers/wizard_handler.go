package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/interfaces/http/middleware"
	"cleanfee.backend/internal/interfaces/http/response"
	"cleanfee.backend/internal/usecases"
	"cleanfee.backend/pkg/metrics"
)

// WizardHandler handles the cleaner application wizard endpoints.
// All state is keyed on the caller's session id.
type WizardHandler struct {
	wizardUsecase *usecases.WizardUsecase
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizardUsecase *usecases.WizardUsecase) *WizardHandler {
	return &WizardHandler{wizardUsecase: wizardUsecase}
}

// ProfileUpdateInput carries partial profile updates. Only fields
// present in the request body are merged.
type ProfileUpdateInput struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	DateOfBirth      *string `json:"dateOfBirth"`
	Address          *string `json:"address"`
	EmergencyContact *string `json:"emergencyContact"`
	IDType           *string `json:"idType"`
	IDNumber         *string `json:"idNumber"`

	CleaningExperience *string   `json:"cleaningExperience"`
	Skills             *[]string `json:"skills"`
	HasEquipment       *bool     `json:"hasEquipment"`
	HasTransportation  *bool     `json:"hasTransportation"`
	HasInsurance       *bool     `json:"hasInsurance"`
	Availability       *[]string `json:"availability"`
	PreferredRate      *float64  `json:"preferredRate"`

	Documents  *map[string]string    `json:"documents"`
	References *[]entities.Reference `json:"references"`

	BackgroundCheckConsent *bool   `json:"backgroundCheckConsent"`
	WorkAuthorization      *string `json:"workAuthorization"`
	CriminalRecordAnswer   *string `json:"criminalRecordAnswer"`
	TermsAgreed            *bool   `json:"termsAgreed"`
}

// GetState returns the current wizard session
// GET /api/v1/wizard
func (h *WizardHandler) GetState(c *gin.Context) {
	session, err := h.wizardUsecase.GetSession(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessionView(session))
}

// UpdateProfile merges field updates into the in-progress profile
// PUT /api/v1/wizard/profile
func (h *WizardHandler) UpdateProfile(c *gin.Context) {
	var input ProfileUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if len(valueOr(input.References, nil)) > 3 {
		response.Error(c, domainerrors.BadRequest("at most 3 references are accepted"))
		return
	}

	session, err := h.wizardUsecase.UpdateProfile(c.Request.Context(), middleware.GetSessionID(c), func(p *entities.ApplicantProfile) {
		applyProfileUpdate(p, &input)
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessionView(session))
}

// Advance moves to the next step if the current step validates
// POST /api/v1/wizard/advance
func (h *WizardHandler) Advance(c *gin.Context) {
	session, err := h.wizardUsecase.Advance(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessionView(session))
}

// Back moves one step backwards
// POST /api/v1/wizard/back
func (h *WizardHandler) Back(c *gin.Context) {
	session, err := h.wizardUsecase.Back(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessionView(session))
}

// Submit finalizes the application
// POST /api/v1/wizard/submit
func (h *WizardHandler) Submit(c *gin.Context) {
	record, err := h.wizardUsecase.Submit(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.ApplicationsSubmitted.Inc()
	response.Success(c, http.StatusCreated, record)
}

// Restart clears the session back to the intro step
// POST /api/v1/wizard/restart
func (h *WizardHandler) Restart(c *gin.Context) {
	session, err := h.wizardUsecase.Restart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessionView(session))
}

func sessionView(session *entities.WizardSession) gin.H {
	return gin.H{
		"step":     int(session.Step),
		"stepName": session.Step.String(),
		"profile":  session.Profile,
	}
}

func applyProfileUpdate(p *entities.ApplicantProfile, in *ProfileUpdateInput) {
	setString(&p.FirstName, in.FirstName)
	setString(&p.LastName, in.LastName)
	setString(&p.Email, in.Email)
	setString(&p.Phone, in.Phone)
	setString(&p.DateOfBirth, in.DateOfBirth)
	setString(&p.Address, in.Address)
	setString(&p.EmergencyContact, in.EmergencyContact)
	setString(&p.IDType, in.IDType)
	setString(&p.IDNumber, in.IDNumber)
	setString(&p.CleaningExperience, in.CleaningExperience)
	setString(&p.WorkAuthorization, in.WorkAuthorization)
	setString(&p.CriminalRecordAnswer, in.CriminalRecordAnswer)

	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.Availability != nil {
		p.Availability = *in.Availability
	}
	if in.Documents != nil {
		p.Documents = *in.Documents
	}
	if in.References != nil {
		p.References = *in.References
	}

	setBool(&p.HasEquipment, in.HasEquipment)
	setBool(&p.HasTransportation, in.HasTransportation)
	setBool(&p.HasInsurance, in.HasInsurance)
	setBool(&p.BackgroundCheckConsent, in.BackgroundCheckConsent)
	setBool(&p.TermsAgreed, in.TermsAgreed)

	if in.PreferredRate != nil {
		p.PreferredRate = *in.PreferredRate
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func valueOr(src *[]entities.Reference, fallback []entities.Reference) []entities.Reference {
	if src == nil {
		return fallback
	}
	return *src
}
