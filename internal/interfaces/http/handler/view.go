package handler

import (
	"github.com/gin-gonic/gin"
	appshop "github.com/petshop/backend/internal/application/shop"
)

// ViewHandler serves the read-only customer-basket-item view endpoints
type ViewHandler struct {
	BaseHandler
	viewService *appshop.ViewService
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(viewService *appshop.ViewService) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// List godoc
// @ID           listCustomerBasketItems
// @Summary      Flattened customer-basket-item rows
// @Description  Every visible customer joined with its baskets and items, unpaged
// @Tags         view
// @Produce      json
// @Success      200 {object} dto.Envelope{data=[]appshop.CustomerBasketItemViewResponse}
// @Security     BearerAuth
// @Router       /view/customer-basket-items [get]
func (h *ViewHandler) List(c *gin.Context) {
	rows, err := h.viewService.List(c.Request.Context(), access(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}

// ListPaginated godoc
// @ID           listCustomerBasketItemsPaginated
// @Summary      Page through the flattened customer-basket-item rows
// @Tags         view
// @Produce      json
// @Param        page query int false "Page number, 1-based" default(1)
// @Param        size query int false "Page size" default(20)
// @Param        sortBy query string false "Sort field" default(customer_id)
// @Param        direction query string false "Sort direction" Enums(asc, desc)
// @Success      200 {object} dto.Envelope{data=appshop.PagedResponse[appshop.CustomerBasketItemViewResponse]}
// @Security     BearerAuth
// @Router       /view/customer-basket-items/paginated [get]
func (h *ViewHandler) ListPaginated(c *gin.Context) {
	page, ok := h.bindPage(c)
	if !ok {
		return
	}

	result, err := h.viewService.ListPage(c.Request.Context(), access(c), page, requestURL(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}

// ListByCustomerName godoc
// @ID           listCustomerBasketItemsByCustomerName
// @Summary      Flattened rows of the customers carrying a name
// @Description  Names are unique per tenant; an admin caller can match the name across tenants
// @Tags         view
// @Produce      json
// @Param        customerName path string true "Customer name"
// @Success      200 {object} dto.Envelope{data=[]appshop.CustomerBasketItemViewResponse}
// @Security     BearerAuth
// @Router       /view/customer-basket-items/by-customer-name/{customerName} [get]
func (h *ViewHandler) ListByCustomerName(c *gin.Context) {
	rows, err := h.viewService.ListByCustomerName(c.Request.Context(), access(c), c.Param("customerName"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, rows)
}
