package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/interfaces/http/response"
	"cleanfee.backend/internal/usecases"
)

// SocialHandler handles the page pass-through endpoints. Missing
// credentials yield null / an inline error object, never a failure,
// so the front end can render a "not connected" card.
type SocialHandler struct {
	socialUsecase *usecases.SocialUsecase
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(socialUsecase *usecases.SocialUsecase) *SocialHandler {
	return &SocialHandler{socialUsecase: socialUsecase}
}

// GetPageInfo returns page details
// GET /api/v1/facebook/page_info
func (h *SocialHandler) GetPageInfo(c *gin.Context) {
	info, err := h.socialUsecase.GetPageInfo(c.Request.Context())
	if err != nil {
		response.Error(c, domainerrors.BadGateway("failed to fetch page info", err))
		return
	}
	response.Success(c, http.StatusOK, info)
}

// GetInsights returns page metrics
// GET /api/v1/facebook/insights
func (h *SocialHandler) GetInsights(c *gin.Context) {
	insights, err := h.socialUsecase.GetInsights(c.Request.Context())
	if err != nil {
		response.Error(c, domainerrors.BadGateway("failed to fetch insights", err))
		return
	}
	response.Success(c, http.StatusOK, insights)
}

// CreatePost publishes a message to the page feed
// POST /api/v1/facebook/post
func (h *SocialHandler) CreatePost(c *gin.Context) {
	var input struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.socialUsecase.CreatePost(c.Request.Context(), input.Message)
	if err != nil {
		if err == domainerrors.ErrNotConfigured {
			response.Success(c, http.StatusOK, gin.H{"error": "Facebook not configured"})
			return
		}
		response.Error(c, domainerrors.BadGateway("failed to create post", err))
		return
	}
	response.Success(c, http.StatusOK, result)
}
