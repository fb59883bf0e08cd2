package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appshop "github.com/petshop/backend/internal/application/shop"
	"github.com/petshop/backend/internal/infrastructure/telemetry"
)

// ItemHandler handles item API endpoints nested under a customer's basket
type ItemHandler struct {
	BaseHandler
	itemService *appshop.ItemService
	metrics     *telemetry.ShopMetrics
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *appshop.ItemService, metrics *telemetry.ShopMetrics) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		metrics:     metrics,
	}
}

// chainIDs parses the customer and basket path parameters
func (h *ItemHandler) chainIDs(c *gin.Context) (customerID, basketID uuid.UUID, ok bool) {
	customerID, ok = h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}
	basketID, ok = h.parseUUIDParam(c, "basketId")
	return
}

// Create godoc
// @ID           createItem
// @Summary      Add an item to a basket
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        request body appshop.CreateItemRequest true "Item creation request"
// @Success      201 {object} dto.Envelope{data=appshop.ItemResponse}
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}

	var req appshop.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), access(c), customerID, basketID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.metrics.RecordItemCreated(c.Request.Context())
	h.Created(c, item)
}

// GetByID godoc
// @ID           getItemById
// @Summary      Get an item of a basket by ID
// @Tags         items
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Envelope{data=appshop.ItemResponse}
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items/{itemId} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}
	itemID, ok := h.parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), access(c), customerID, basketID, itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// List godoc
// @ID           listItems
// @Summary      List the items of a basket
// @Tags         items
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        page query int false "Page number, 1-based" default(1)
// @Param        size query int false "Page size" default(20)
// @Param        sortBy query string false "Sort field" default(id)
// @Param        direction query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} dto.Envelope{data=appshop.PagedResponse[appshop.ItemResponse]}
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}
	page, ok := h.bindPage(c)
	if !ok {
		return
	}

	result, err := h.itemService.List(c.Request.Context(), access(c), customerID, basketID, page, requestURL(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Stream godoc
// @ID           streamItems
// @Summary      Stream the items of a basket as NDJSON
// @Tags         items
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Success      200 {string} string "NDJSON stream, one item per line"
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items/stream [get]
func (h *ItemHandler) Stream(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}

	h.streamNDJSON(c, func() error {
		return h.itemService.Stream(c.Request.Context(), access(c), customerID, basketID, c.Writer)
	})
}

// Update godoc
// @ID           updateItem
// @Summary      Replace an item's description and amount
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Param        request body appshop.UpdateItemRequest true "Item update request"
// @Success      200 {object} dto.Envelope{data=appshop.ItemResponse}
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items/{itemId} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}
	itemID, ok := h.parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	var req appshop.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.itemService.Update(c.Request.Context(), access(c), customerID, basketID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Patch godoc
// @ID           patchItem
// @Summary      Partially update an item
// @Description  At least one field must be provided
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Param        request body appshop.PatchItemRequest true "Item patch request"
// @Success      200 {object} dto.Envelope{data=appshop.ItemResponse}
// @Failure      400 {object} dto.Envelope
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items/{itemId} [patch]
func (h *ItemHandler) Patch(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}
	itemID, ok := h.parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	var req appshop.PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	item, err := h.itemService.Patch(c.Request.Context(), access(c), customerID, basketID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// BatchUpdate godoc
// @ID           batchUpdateItems
// @Summary      Patch many items of one basket in one request
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        request body []appshop.BatchElement[appshop.PatchItemRequest] true "Batch elements"
// @Success      200 {object} dto.Envelope{data=appshop.BatchResult[appshop.ItemResponse]}
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items/batch [patch]
func (h *ItemHandler) BatchUpdate(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}

	var elements []appshop.BatchElement[appshop.PatchItemRequest]
	if err := c.ShouldBindJSON(&elements); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.itemService.BatchUpdate(c.Request.Context(), access(c), customerID, basketID, elements)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.metrics.RecordBatchOutcome(c.Request.Context(), "item", result.SuccessCount, result.FailureCount)
	h.Success(c, result)
}

// Delete godoc
// @ID           deleteItem
// @Summary      Remove an item from a basket
// @Tags         items
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Success      204 "Deleted"
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}
	itemID, ok := h.parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), access(c), customerID, basketID, itemID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Exists godoc
// @ID           itemExists
// @Summary      Check whether an item exists in a basket
// @Tags         items
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        itemId path string true "Item ID" format(uuid)
// @Success      200 "Exists"
// @Failure      404 "Not found"
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId}/items/{itemId} [head]
func (h *ItemHandler) Exists(c *gin.Context) {
	customerID, basketID, ok := h.chainIDs(c)
	if !ok {
		return
	}
	itemID, ok := h.parseUUIDParam(c, "itemId")
	if !ok {
		return
	}

	exists, err := h.itemService.Exists(c.Request.Context(), access(c), customerID, basketID, itemID)
	h.head(c, exists, err)
}
