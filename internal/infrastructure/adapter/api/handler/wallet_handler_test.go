package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fbp-works/economy-service/internal/domain/entity"
	errs "github.com/fbp-works/economy-service/internal/domain/error"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/fbp-works/economy-service/mocks/port/core"
	usecasemocks "github.com/fbp-works/economy-service/mocks/port/usecase"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func relaxedLogger() *coremocks.MockLogger {
	logger := new(coremocks.MockLogger)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func walletTestRouter(registry *usecasemocks.MockRegistryUseCase, wallets *usecasemocks.MockWalletUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWalletHandler(registry, wallets, relaxedLogger())

	router := gin.New()
	router.GET("/users/:externalId/balance", h.GetBalance)
	router.POST("/users/:externalId/grants", h.Grant)
	router.GET("/users/:externalId/transactions", h.ListTransactions)
	return router
}

func TestWalletHandlerGetBalance(t *testing.T) {
	alice := &entity.User{ID: 7, ExternalID: "ext-alice", CreatedAt: fixedTime}

	t.Run("known identity returns the balance", func(t *testing.T) {
		registry := new(usecasemocks.MockRegistryUseCase)
		wallets := new(usecasemocks.MockWalletUseCase)
		router := walletTestRouter(registry, wallets)

		registry.On("GetOrCreate", mock.Anything, "ext-alice").Return(alice, nil)
		wallets.On("GetBalance", mock.Anything, uint64(7)).Return(int64(320), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/ext-alice/balance", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.BalanceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(7), resp.UserID)
		assert.Equal(t, "ext-alice", resp.ExternalID)
		assert.Equal(t, int64(320), resp.Balance)
	})

	t.Run("registration failure maps to store status", func(t *testing.T) {
		registry := new(usecasemocks.MockRegistryUseCase)
		wallets := new(usecasemocks.MockWalletUseCase)
		router := walletTestRouter(registry, wallets)

		registry.On("GetOrCreate", mock.Anything, "ext-alice").
			Return(nil, errs.NewStoreError("user.create", "ext-alice", context.DeadlineExceeded))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/users/ext-alice/balance", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeStore, resp.Code)
		assert.Equal(t, "Internal server error", resp.Message)
		wallets.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
	})
}

func TestWalletHandlerGrant(t *testing.T) {
	alice := &entity.User{ID: 7, ExternalID: "ext-alice", CreatedAt: fixedTime}

	t.Run("applies the delta and returns the new balance", func(t *testing.T) {
		registry := new(usecasemocks.MockRegistryUseCase)
		wallets := new(usecasemocks.MockWalletUseCase)
		router := walletTestRouter(registry, wallets)

		registry.On("GetOrCreate", mock.Anything, "ext-alice").Return(alice, nil)
		wallets.On("ApplyDelta", mock.Anything, uint64(7), int64(100), "admin").Return(int64(420), nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users/ext-alice/grants",
			strings.NewReader(`{"amount": 100, "actor": "admin"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.GrantResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(420), resp.NewBalance)
	})

	t.Run("missing actor is rejected before any lookup", func(t *testing.T) {
		registry := new(usecasemocks.MockRegistryUseCase)
		wallets := new(usecasemocks.MockWalletUseCase)
		router := walletTestRouter(registry, wallets)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users/ext-alice/grants",
			strings.NewReader(`{"amount": 100}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		registry.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("overdraft grant maps to unprocessable entity", func(t *testing.T) {
		registry := new(usecasemocks.MockRegistryUseCase)
		wallets := new(usecasemocks.MockWalletUseCase)
		router := walletTestRouter(registry, wallets)

		registry.On("GetOrCreate", mock.Anything, "ext-alice").Return(alice, nil)
		wallets.On("ApplyDelta", mock.Anything, uint64(7), int64(-500), "admin").
			Return(int64(0), errs.NewInsufficientFundsError(7, -500, 320))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users/ext-alice/grants",
			strings.NewReader(`{"amount": -500, "actor": "admin"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, errs.CodeInsufficientFunds, resp.Code)
	})
}

func TestWalletHandlerListTransactions(t *testing.T) {
	alice := &entity.User{ID: 7, ExternalID: "ext-alice", CreatedAt: fixedTime}

	registry := new(usecasemocks.MockRegistryUseCase)
	wallets := new(usecasemocks.MockWalletUseCase)
	router := walletTestRouter(registry, wallets)

	registry.On("GetOrCreate", mock.Anything, "ext-alice").Return(alice, nil)
	wallets.On("ListTransactions", mock.Anything, uint64(7)).Return([]*entity.Transaction{
		{ID: 1, TransactionID: "txn-1", UserID: 7, Amount: 100, Actor: "SYSTEM", CreatedAt: fixedTime},
		{ID: 2, TransactionID: "txn-2", UserID: 7, Amount: -50, Actor: "PURCHASE:5", CreatedAt: fixedTime},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/ext-alice/transactions", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.UserID)
	require.Len(t, resp.Transactions, 2)
	assert.Equal(t, "txn-1", resp.Transactions[0].TransactionID)
	assert.Equal(t, int64(-50), resp.Transactions[1].Amount)
}
