package handler

import (
	"net/http"

	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles purchase HTTP requests
type PurchaseHandler struct {
	registry  usecase.RegistryUseCase
	purchases usecase.PurchaseUseCase
	logger    coreport.Logger
}

// NewPurchaseHandler creates a new purchase handler instance
func NewPurchaseHandler(
	registry usecase.RegistryUseCase,
	purchases usecase.PurchaseUseCase,
	logger coreport.Logger,
) *PurchaseHandler {
	return &PurchaseHandler{
		registry:  registry,
		purchases: purchases,
		logger:    logger,
	}
}

// Purchase handles the POST /users/{externalId}/purchases endpoint.
// Expected rejections (busy key, insufficient funds) come back as 200
// with success=false; the message is safe to relay to the buyer.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	var req dto.PurchaseRequest
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

	result, err := h.purchases.Purchase(c.Request.Context(), user.ID, req.ItemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurchaseResponse{
		Success:    result.Success,
		Message:    result.Message,
		NewBalance: result.NewBalance,
	})
}
