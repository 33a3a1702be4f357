package handler

import (
	"net/http"

	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RedemptionHandler handles item-consumption HTTP requests
type RedemptionHandler struct {
	registry    usecase.RegistryUseCase
	redemptions usecase.RedemptionUseCase
	logger      coreport.Logger
}

// NewRedemptionHandler creates a new redemption handler instance
func NewRedemptionHandler(
	registry usecase.RegistryUseCase,
	redemptions usecase.RedemptionUseCase,
	logger coreport.Logger,
) *RedemptionHandler {
	return &RedemptionHandler{
		registry:    registry,
		redemptions: redemptions,
		logger:      logger,
	}
}

// Redeem handles the POST /users/{externalId}/redemptions endpoint
func (h *RedemptionHandler) Redeem(c *gin.Context) {
	var req dto.RedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	user, err := h.registry.GetOrCreate(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.redemptions.Redeem(c.Request.Context(), user.ID, req.ItemName, req.TargetRef, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RedemptionResponse{
		Remaining:  result.Remaining,
		TargetUses: result.TargetUses,
	})
}

// CountUses handles the GET /redemptions endpoint. It reports how many
// times an action has been applied to a target.
func (h *RedemptionHandler) CountUses(c *gin.Context) {
	targetRef := c.Query("targetRef")
	action := c.Query("action")
	if targetRef == "" || action == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "targetRef and action query parameters are required",
		})
		return
	}

	count, err := h.redemptions.CountUses(c.Request.Context(), targetRef, action)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"targetRef": targetRef,
		"action":    action,
		"count":     count,
	})
}
