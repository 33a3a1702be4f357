package handler

import (
	"net/http"

	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// EventHandler receives external trigger events
type EventHandler struct {
	rewards usecase.RewardUseCase
	logger  coreport.Logger
}

// NewEventHandler creates a new event handler instance
func NewEventHandler(rewards usecase.RewardUseCase, logger coreport.Logger) *EventHandler {
	return &EventHandler{
		rewards: rewards,
		logger:  logger,
	}
}

// SubjectRenamed handles the POST /events/subject-renamed endpoint.
// The sender only needs to know the event was received, so every
// well-formed event is acknowledged with 202. Grant failures are logged
// here and never reported back.
func (h *EventHandler) SubjectRenamed(c *gin.Context) {
	var req dto.SubjectRenamedEvent
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	event := usecase.TriggerEvent{
		SubjectName:   req.SubjectName,
		ParentGroupID: req.ParentGroupID,
		Timestamp:     req.Timestamp,
	}

	if err := h.rewards.HandleTriggerEvent(c.Request.Context(), event); err != nil {
		h.logger.Error("Trigger event processing failed", map[string]any{
			"subject_name":    req.SubjectName,
			"parent_group_id": req.ParentGroupID,
			"error":           err.Error(),
		})
	}

	c.Status(http.StatusAccepted)
}
