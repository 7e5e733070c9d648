package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/interfaces/http/response"
	"cleanfee.backend/internal/usecases"
)

// ApplicationHandler handles application record endpoints
type ApplicationHandler struct {
	applicationUsecase *usecases.ApplicationUsecase
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationUsecase *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applicationUsecase: applicationUsecase}
}

// CreateApplication creates a record from a complete profile
// POST /api/v1/applications
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var profile entities.ApplicantProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.applicationUsecase.CreateApplication(c.Request.Context(), profile)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, record)
}

// ListApplications returns all records
// GET /api/v1/applications
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	items, err := h.applicationUsecase.ListApplications(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetApplication returns one record
// GET /api/v1/applications/:id
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	record, err := h.applicationUsecase.GetApplication(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("application not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}

// SetStatus applies an administrative status decision
// PUT /api/v1/applications/:id/status
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid application id"))
		return
	}

	var input struct {
		Status entities.ApplicationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.applicationUsecase.SetStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("application not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}
