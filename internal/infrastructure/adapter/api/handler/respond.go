package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/fbp-works/economy-service/internal/domain/error"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFromError maps domain errors to HTTP status codes
func statusFromError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidExternalID),
		errors.Is(err, domainerr.ErrInvalidName):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrPurchaseInFlight):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInsufficientFunds),
		errors.Is(err, domainerr.ErrNotEnoughItems):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response. Server-side failures
// are masked with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
