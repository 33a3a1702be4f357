package handler

import (
	"net/http"

	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// WalletHandler handles balance and grant HTTP requests. Routes are keyed
// by external identity; unknown identities are registered on first touch.
type WalletHandler struct {
	registry usecase.RegistryUseCase
	wallets  usecase.WalletUseCase
	logger   coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance
func NewWalletHandler(
	registry usecase.RegistryUseCase,
	wallets usecase.WalletUseCase,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		registry: registry,
		wallets:  wallets,
		logger:   logger,
	}
}

// GetBalance handles the GET /users/{externalId}/balance endpoint
func (h *WalletHandler) GetBalance(c *gin.Context) {
	user, err := h.registry.GetOrCreate(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	balance, err := h.wallets.GetBalance(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("Error getting user balance", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:     user.ID,
		ExternalID: user.ExternalID,
		Balance:    balance,
	})
}

// Grant handles the POST /users/{externalId}/grants endpoint.
// Administrative credits and debits both pass through here.
func (h *WalletHandler) Grant(c *gin.Context) {
	var req dto.GrantRequest
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

	newBalance, err := h.wallets.ApplyDelta(c.Request.Context(), user.ID, req.Amount, req.Actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GrantResponse{
		UserID:     user.ID,
		Amount:     req.Amount,
		NewBalance: newBalance,
	})
}

// ListTransactions handles the GET /users/{externalId}/transactions endpoint
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	user, err := h.registry.GetOrCreate(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	transactions, err := h.wallets.ListTransactions(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.TransactionListResponse{
		UserID:       user.ID,
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
	}
	for _, txn := range transactions {
		resp.Transactions = append(resp.Transactions, dto.TransactionResponse{
			TransactionID: txn.TransactionID,
			Amount:        txn.Amount,
			Actor:         txn.Actor,
			CreatedAt:     txn.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, resp)
}
