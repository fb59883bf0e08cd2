package handler

import (
	"github.com/gin-gonic/gin"
	appshop "github.com/petshop/backend/internal/application/shop"
	"github.com/petshop/backend/internal/infrastructure/telemetry"
)

// CustomerHandler handles customer API endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *appshop.CustomerService
	metrics         *telemetry.ShopMetrics
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *appshop.CustomerService, metrics *telemetry.ShopMetrics) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		metrics:         metrics,
	}
}

// Create godoc
// @ID           createCustomer
// @Summary      Create a new customer
// @Description  Create a customer owned by the calling token
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body appshop.CreateCustomerRequest true "Customer creation request"
// @Success      201 {object} dto.Envelope{data=appshop.CustomerResponse}
// @Failure      400 {object} dto.Envelope
// @Failure      401 {object} dto.Envelope
// @Failure      409 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req appshop.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customer, err := h.customerService.Create(c.Request.Context(), access(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.metrics.RecordCustomerCreated(c.Request.Context())
	h.Created(c, customer)
}

// GetByID godoc
// @ID           getCustomerById
// @Summary      Get customer by ID
// @Tags         customers
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Success      200 {object} dto.Envelope{data=appshop.CustomerResponse}
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(c.Request.Context(), access(c), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// List godoc
// @ID           listCustomers
// @Summary      List customers
// @Description  Page through the customers visible to the calling token
// @Tags         customers
// @Produce      json
// @Param        page query int false "Page number, 1-based" default(1)
// @Param        size query int false "Page size" default(20)
// @Param        sortBy query string false "Sort field" default(id)
// @Param        direction query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} dto.Envelope{data=appshop.PagedResponse[appshop.CustomerResponse]}
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	page, ok := h.bindPage(c)
	if !ok {
		return
	}

	result, err := h.customerService.List(c.Request.Context(), access(c), page, requestURL(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// Stream godoc
// @ID           streamCustomers
// @Summary      Stream all visible customers as NDJSON
// @Tags         customers
// @Produce      json
// @Success      200 {string} string "NDJSON stream, one customer per line"
// @Security     BearerAuth
// @Router       /customers/stream [get]
func (h *CustomerHandler) Stream(c *gin.Context) {
	h.streamNDJSON(c, func() error {
		return h.customerService.Stream(c.Request.Context(), access(c), c.Writer)
	})
}

// Update godoc
// @ID           updateCustomer
// @Summary      Replace a customer's mutable fields
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        request body appshop.UpdateCustomerRequest true "Customer update request"
// @Success      200 {object} dto.Envelope{data=appshop.CustomerResponse}
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	var req appshop.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customer, err := h.customerService.Update(c.Request.Context(), access(c), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// Patch godoc
// @ID           patchCustomer
// @Summary      Partially update a customer
// @Description  At least one field must be provided
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customerId path string true "Customer ID" format(uuid)
// @Param        request body appshop.PatchCustomerRequest true "Customer patch request"
// @Success      200 {object} dto.Envelope{data=appshop.CustomerResponse}
// @Failure      400 {object} dto.Envelope
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId} [patch]
func (h *CustomerHandler) Patch(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	var req appshop.PatchCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	customer, err := h.customerService.Patch(c.Request.Context(), access(c), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// BatchUpdate godoc
// @ID           batchUpdateCustomers
// @Summary      Patch many customers in one request
// @Description  Elements are processed independently; the result reconciles successes and failures
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body []appshop.BatchElement[appshop.PatchCustomerRequest] true "Batch elements"
// @Success      200 {object} dto.Envelope{data=appshop.BatchResult[appshop.CustomerResponse]}
// @Security     BearerAuth
// @Router       /customers/batch [patch]
func (h *CustomerHandler) BatchUpdate(c *gin.Context) {
	var elements []appshop.BatchElement[appshop.PatchCustomerRequest]
	if err := c.ShouldBindJSON(&elements); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.customerService.BatchUpdate(c.Request.Context(), access(c), elements)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.metrics.RecordBatchOutcome(c.Request.Context(), "customer", result.SuccessCount, result.FailureCount)
	h.Success(c, result)
}

// Delete godoc
// @ID           deleteCustomer
// @Summary      Delete a customer and everything it owns
// @Tags         customers
// @Param        customerId path string true "Customer ID" format(uuid)
// @Success      204 "Deleted"
// @Failure      404 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /customers/{customerId} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	if err := h.customerService.Delete(c.Request.Context(), access(c), customerID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Exists godoc
// @ID           customerExists
// @Summary      Check whether a customer exists
// @Tags         customers
// @Param        customerId path string true "Customer ID" format(uuid)
// @Success      200 "Exists"
// @Failure      404 "Not found"
// @Security     BearerAuth
// @Router       /customers/{customerId} [head]
func (h *CustomerHandler) Exists(c *gin.Context) {
	customerID, ok := h.parseUUIDParam(c, "customerId")
	if !ok {
		return
	}

	exists, err := h.customerService.Exists(c.Request.Context(), access(c), customerID)
	h.head(c, exists, err)
}
