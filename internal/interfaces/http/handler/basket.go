package handler

import (
	"github.com/gin-gonic/gin"
	appshop "github.com/petshop/backend/internal/application/shop"
	"github.com/petshop/backend/internal/infrastructure/telemetry"
)

// BasketHandler handles shopping basket API endpoints nested under a customer
type BasketHandler struct {
	BaseHandler
	basketService *appshop.BasketService
	metrics       *telemetry.ShopMetrics
}

// NewBasketHandler creates a new BasketHandler
func NewBasketHandler(basketService *appshop.BasketService, metrics *telemetry.ShopMetrics) *BasketHandler {
	return &BasketHandler{
		basketService: basketService,
		metrics:       metrics,
	}
}

// Create godoc
// @ID           createBasket
// @Summary      Open a new basket for a customer
// @Description  The basket starts in status NEW
// @Tags         baskets
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Success      201 {object} dto.Envelope{data=appshop.BasketResponse}
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets [post]
func (h *BasketHandler) Create(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	basket, err := h.basketService.Create(c.Request.Context(), access(c), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.metrics.RecordBasketCreated(c.Request.Context())
	h.Created(c, basket)
}

// GetByID godoc
// @ID           getBasketById
// @Summary      Get a customer's basket by ID
// @Tags         baskets
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Success      200 {object} dto.Envelope{data=appshop.BasketResponse}
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId} [get]
func (h *BasketHandler) GetByID(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}
	basketID, ok := h.parseUUIDParam(c, "basketId")
	if !ok {
		return
	}

	basket, err := h.basketService.GetByID(c.Request.Context(), access(c), customerID, basketID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, basket)
}

// List godoc
// @ID           listBaskets
// @Summary      List a customer's baskets
// @Tags         baskets
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        page query int false "Page number, 1-based" default(1)
// @Param        size query int false "Page size" default(20)
// @Param        sortBy query string false "Sort field" default(id)
// @Param        direction query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} dto.Envelope{data=appshop.PagedResponse[appshop.BasketResponse]}
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets [get]
func (h *BasketHandler) List(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}
	page, ok := h.bindPage(c)
	if !ok {
		return
	}

	result, err := h.basketService.List(c.Request.Context(), access(c), customerID, page, requestURL(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Stream godoc
// @ID           streamBaskets
// @Summary      Stream a customer's baskets as NDJSON
// @Tags         baskets
// @Param        customerId path string true "Customer ID" format(uuid)
// @Success      200 {string} string "NDJSON stream, one basket per line"
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/stream [get]
func (h *BasketHandler) Stream(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	h.streamNDJSON(c, func() error {
		return h.basketService.Stream(c.Request.Context(), access(c), customerID, c.Writer)
	})
}

// Patch godoc
// @ID           patchBasket
// @Summary      Advance a basket's status
// @Description  Status may only move forward: NEW, PAID, PROCESSED, UNKNOWN
// @Tags         baskets
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Param        request body appshop.PatchBasketRequest true "Basket patch request"
// @Success      200 {object} dto.Envelope{data=appshop.BasketResponse}
// @Failure      422 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId} [patch]
func (h *BasketHandler) Patch(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}
	basketID, ok := h.parseUUIDParam(c, "basketId")
	if !ok {
		return
	}

	var req appshop.PatchBasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	before, err := h.basketService.GetByID(c.Request.Context(), access(c), customerID, basketID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	basket, err := h.basketService.Patch(c.Request.Context(), access(c), customerID, basketID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.metrics.RecordBasketTransition(c.Request.Context(), before.Status, basket.Status)
	h.Success(c, basket)
}

// BatchUpdate godoc
// @ID           batchUpdateBaskets
// @Summary      Patch many baskets of one customer in one request
// @Tags         baskets
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        request body []appshop.BatchElement[appshop.PatchBasketRequest] true "Batch elements"
// @Success      200 {object} dto.Envelope{data=appshop.BatchResult[appshop.BasketResponse]}
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/batch [patch]
func (h *BasketHandler) BatchUpdate(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	var elements []appshop.BatchElement[appshop.PatchBasketRequest]
	if err := c.ShouldBindJSON(&elements); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.basketService.BatchUpdate(c.Request.Context(), access(c), customerID, elements)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.metrics.RecordBatchOutcome(c.Request.Context(), "basket", result.SuccessCount, result.FailureCount)
	h.Success(c, result)
}

// Delete godoc
// @ID           deleteBasket
// @Summary      Delete a basket and its items
// @Tags         baskets
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Success      204 "Deleted"
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId} [delete]
func (h *BasketHandler) Delete(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}
	basketID, ok := h.parseUUIDParam(c, "basketId")
	if !ok {
		return
	}

	if err := h.basketService.Delete(c.Request.Context(), access(c), customerID, basketID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Exists godoc
// @ID           basketExists
// @Summary      Check whether a basket exists for a customer
// @Tags         baskets
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        basketId path string true "Basket ID" format(uuid)
// @Success      200 "Exists"
// @Failure      404 "Not found"
// @Security     BearerAuth
// @Router       /customers/{customerId}/baskets/{basketId} [head]
func (h *BasketHandler) Exists(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}
	basketID, ok := h.parseUUIDParam(c, "basketId")
	if !ok {
		return
	}

	exists, err := h.basketService.Exists(c.Request.Context(), access(c), customerID, basketID)
	h.head(c, exists, err)
}
