package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "cleanfee.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response mapped from the domain error taxonomy.
// Validation failures carry the exact field list so the client can
// highlight what is incomplete; the age failure has its own code.
func Error(c *gin.Context, err error) {
	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":    "validation_error",
			"message": validationErr.Error(),
			"step":    validationErr.Step,
			"fields":  validationErr.Fields,
		})
		return
	}

	var ageErr *domainerrors.AgeIneligibleError
	if errors.As(err, &ageErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":    "age_ineligible",
			"message": ageErr.Error(),
			"age":     ageErr.Age,
			"minimum": ageErr.Minimum,
		})
		return
	}

	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	// Bare repository sentinel, no handler-specific message attached
	if errors.Is(err, domainerrors.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    http.StatusNotFound,
			"message": err.Error(),
		})
		return
	}

	internal := domainerrors.InternalError(err)
	c.JSON(internal.Code, gin.H{
		"code":    internal.Code,
		"message": internal.Message,
	})
}
