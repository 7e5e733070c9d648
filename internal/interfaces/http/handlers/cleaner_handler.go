package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/interfaces/http/response"
	"cleanfee.backend/internal/usecases"
	"cleanfee.backend/pkg/utils"
)

// CleanerHandler handles cleaner listing endpoints
type CleanerHandler struct {
	cleanerUsecase *usecases.CleanerUsecase
}

// NewCleanerHandler creates a new cleaner handler
func NewCleanerHandler(cleanerUsecase *usecases.CleanerUsecase) *CleanerHandler {
	return &CleanerHandler{cleanerUsecase: cleanerUsecase}
}

// ListCleaners returns cleaners matching the query filters
// GET /api/v1/cleaners
func (h *CleanerHandler) ListCleaners(c *gin.Context) {
	var filter entities.CleanerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	items, err := h.cleanerUsecase.ListCleaners(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	params := utils.GetPaginationParams(page, limit)

	total := int64(len(items))
	if params.Limit > 0 {
		offset := params.CalculateOffset()
		if offset > len(items) {
			offset = len(items)
		}
		end := offset + params.Limit
		if end > len(items) {
			end = len(items)
		}
		items = items[offset:end]
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      items,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// GetCleaner returns one cleaner
// GET /api/v1/cleaners/:id
func (h *CleanerHandler) GetCleaner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid cleaner id"))
		return
	}

	cleaner, err := h.cleanerUsecase.GetCleaner(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("cleaner not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, cleaner)
}

// ListReviews returns a cleaner's reviews
// GET /api/v1/cleaners/:id/reviews
func (h *CleanerHandler) ListReviews(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid cleaner id"))
		return
	}

	reviews, err := h.cleanerUsecase.GetReviews(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": reviews})
}

// GetAvailability returns a cleaner's open slots on a date
// GET /api/v1/cleaners/:id/availability?date=YYYY-MM-DD
func (h *CleanerHandler) GetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid cleaner id"))
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("date must be YYYY-MM-DD"))
		return
	}

	slots, err := h.cleanerUsecase.GetAvailability(c.Request.Context(), id, date)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("cleaner not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"date": c.Query("date"), "slots": slots})
}
