package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/fbp-works/economy-service/internal/domain/error"
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/domain/port/usecase"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles item and quest administration plus the
// inventory view
type CatalogHandler struct {
	registry usecase.RegistryUseCase
	catalog  usecase.CatalogUseCase
	logger   coreport.Logger
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(
	registry usecase.RegistryUseCase,
	catalog usecase.CatalogUseCase,
	logger coreport.Logger,
) *CatalogHandler {
	return &CatalogHandler{
		registry: registry,
		catalog:  catalog,
		logger:   logger,
	}
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAmount),
			Message: "Invalid ID format",
		})
		return 0, false
	}
	return id, true
}

// ListItems handles the GET /items endpoint
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalog.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.ItemResponse{ID: item.ID, Name: item.Name, Price: item.Price})
	}

	c.JSON(http.StatusOK, resp)
}

// AddItem handles the POST /items endpoint
func (h *CatalogHandler) AddItem(c *gin.Context) {
	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	item, err := h.catalog.AddItem(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ItemResponse{ID: item.ID, Name: item.Name, Price: item.Price})
}

// EditItem handles the PUT /items/{itemId} endpoint
func (h *CatalogHandler) EditItem(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	item, err := h.catalog.EditItem(c.Request.Context(), id, req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ItemResponse{ID: item.ID, Name: item.Name, Price: item.Price})
}

// RemoveItem handles the DELETE /items/{itemId} endpoint
func (h *CatalogHandler) RemoveItem(c *gin.Context) {
	id, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.catalog.RemoveItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListQuests handles the GET /quests endpoint
func (h *CatalogHandler) ListQuests(c *gin.Context) {
	quests, err := h.catalog.ListQuests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.QuestResponse, 0, len(quests))
	for _, quest := range quests {
		resp = append(resp, dto.QuestResponse{
			ID:     quest.ID,
			Number: quest.Number,
			Reward: quest.Reward,
			Title:  quest.Title,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// AddQuest handles the POST /quests endpoint
func (h *CatalogHandler) AddQuest(c *gin.Context) {
	var req dto.QuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	quest, err := h.catalog.AddQuest(c.Request.Context(), req.Number, req.Reward, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.QuestResponse{
		ID:     quest.ID,
		Number: quest.Number,
		Reward: quest.Reward,
		Title:  quest.Title,
	})
}

// EditQuest handles the PUT /quests/{questId} endpoint
func (h *CatalogHandler) EditQuest(c *gin.Context) {
	id, ok := parseIDParam(c, "questId")
	if !ok {
		return
	}

	var req dto.QuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	quest, err := h.catalog.EditQuest(c.Request.Context(), id, req.Number, req.Reward, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestResponse{
		ID:     quest.ID,
		Number: quest.Number,
		Reward: quest.Reward,
		Title:  quest.Title,
	})
}

// RemoveQuest handles the DELETE /quests/{questId} endpoint
func (h *CatalogHandler) RemoveQuest(c *gin.Context) {
	id, ok := parseIDParam(c, "questId")
	if !ok {
		return
	}

	if err := h.catalog.RemoveQuest(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetInventory handles the GET /users/{externalId}/inventory endpoint
func (h *CatalogHandler) GetInventory(c *gin.Context) {
	user, err := h.registry.GetOrCreate(c.Request.Context(), c.Param("externalId"))
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.catalog.GetInventory(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.InventoryResponse{
		Balance: view.Balance,
		Items:   make([]dto.InventoryLineResponse, 0, len(view.Items)),
	}
	for _, line := range view.Items {
		resp.Items = append(resp.Items, dto.InventoryLineResponse{
			ItemName: line.ItemName,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	c.JSON(http.StatusOK, resp)
}
