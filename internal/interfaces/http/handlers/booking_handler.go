package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"cleanfee.backend/internal/domain/entities"
	domainerrors "cleanfee.backend/internal/domain/errors"
	"cleanfee.backend/internal/interfaces/http/response"
	"cleanfee.backend/internal/usecases"
	"cleanfee.backend/pkg/metrics"
)

// BookingHandler handles booking endpoints
type BookingHandler struct {
	bookingUsecase *usecases.BookingUsecase
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUsecase *usecases.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookingUsecase: bookingUsecase}
}

// CreateBooking creates a pending booking
// POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input entities.BookingCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics.BookingsCreated.Inc()
	response.Success(c, http.StatusCreated, booking)
}

// ListBookings returns all bookings
// GET /api/v1/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	items, err := h.bookingUsecase.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetBooking returns one booking
// GET /api/v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid booking id"))
		return
	}

	booking, err := h.bookingUsecase.GetBooking(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("booking not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, booking)
}

// CompleteBooking marks a booking completed
// PUT /api/v1/bookings/:id/complete
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid booking id"))
		return
	}

	booking, err := h.bookingUsecase.CompleteBooking(c.Request.Context(), id)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("booking not found"))
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, booking)
}
