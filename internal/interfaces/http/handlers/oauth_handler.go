package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/interfaces/http/middleware"
	"cleanfee.backend/internal/interfaces/http/response"
	"cleanfee.backend/internal/usecases"
)

// OAuthHandler handles the social-login endpoints
type OAuthHandler struct {
	oauthUsecase *usecases.OAuthUsecase
}

// NewOAuthHandler creates a new OAuth handler
func NewOAuthHandler(oauthUsecase *usecases.OAuthUsecase) *OAuthHandler {
	return &OAuthHandler{oauthUsecase: oauthUsecase}
}

// Login returns the provider authorization URL and the state token
// GET /api/v1/oauth/facebook/login
func (h *OAuthHandler) Login(c *gin.Context) {
	url, state, err := h.oauthUsecase.LoginURL(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"authorizationUrl": url, "state": state})
}

// Callback completes the authorization-code exchange. The one-time
// code is consumed here and never included in the response.
// GET /api/v1/oauth/facebook/callback?code=&state=
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		response.Error(c, domainerrors.BadRequest("code and state are required"))
		return
	}

	session, err := h.oauthUsecase.HandleCallback(c.Request.Context(), middleware.GetSessionID(c), code, state)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"step":     int(session.Step),
		"stepName": session.Step.String(),
		"profile":  session.Profile,
	})
}
