package shop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
)

// CustomerBasketItemViewResponse is one row of the flattened
// customer-basket-item join in API responses. The owner token never leaves
// the server; visibility already encodes it.
type CustomerBasketItemViewResponse struct {
	CustomerID       uuid.UUID `json:"customer_id"`
	CustomerName     string    `json:"customer_name"`
	CustomerTimezone string    `json:"customer_timezone"`
	CustomerCreated  time.Time `json:"customer_created"`

	BasketID         *uuid.UUID `json:"basket_id,omitempty"`
	BasketStatus     *string    `json:"basket_status,omitempty"`
	BasketStatusDate *time.Time `json:"basket_status_date,omitempty"`
	BasketCreated    *time.Time `json:"basket_created,omitempty"`

	ItemID          *uuid.UUID `json:"item_id,omitempty"`
	ItemDescription *string    `json:"item_description,omitempty"`
	ItemAmount      *int       `json:"item_amount,omitempty"`
	ItemCreated     *time.Time `json:"item_created,omitempty"`
}

// ToViewResponse converts a domain view row to its API representation
func ToViewResponse(v *shop.CustomerBasketItemView) CustomerBasketItemViewResponse {
	return CustomerBasketItemViewResponse{
		CustomerID:       v.CustomerID,
		CustomerName:     v.CustomerName,
		CustomerTimezone: v.CustomerTimezone,
		CustomerCreated:  v.CustomerCreated,
		BasketID:         v.BasketID,
		BasketStatus:     v.BasketStatus,
		BasketStatusDate: v.BasketStatusDate,
		BasketCreated:    v.BasketCreated,
		ItemID:           v.ItemID,
		ItemDescription:  v.ItemDescription,
		ItemAmount:       v.ItemAmount,
		ItemCreated:      v.ItemCreated,
	}
}

// ToViewResponses converts a slice of domain view rows
func ToViewResponses(views []shop.CustomerBasketItemView) []CustomerBasketItemViewResponse {
	responses := make([]CustomerBasketItemViewResponse, len(views))
	for i := range views {
		responses[i] = ToViewResponse(&views[i])
	}
	return responses
}

// ViewService serves read-only queries over the flattened
// customer-basket-item join
type ViewService struct {
	viewRepo shop.ViewRepository
}

// NewViewService creates a new ViewService
func NewViewService(viewRepo shop.ViewRepository) *ViewService {
	return &ViewService{viewRepo: viewRepo}
}

// List retrieves every visible row of the join without paging
func (s *ViewService) List(ctx context.Context, access shared.AccessContext) ([]CustomerBasketItemViewResponse, error) {
	views, err := s.viewRepo.FindAllWithAccess(ctx, access)
	if err != nil {
		return nil, err
	}
	return ToViewResponses(views), nil
}

// ListPage retrieves one page of the join
func (s *ViewService) ListPage(ctx context.Context, access shared.AccessContext, page PageRequest, baseURL string) (*PagedResponse[CustomerBasketItemViewResponse], error) {
	page.Sanitize()

	views, total, err := s.viewRepo.FindPageWithAccess(ctx, access, page.ToFilter())
	if err != nil {
		return nil, err
	}

	response := NewPagedResponse(ToViewResponses(views), total, page, baseURL)
	return &response, nil
}

// ListByCustomerName retrieves the visible rows of the customers carrying
// the given name. Names are unique per tenant, so a tenant gets at most one
// customer's rows while an admin can match the name across tenants.
func (s *ViewService) ListByCustomerName(ctx context.Context, access shared.AccessContext, name string) ([]CustomerBasketItemViewResponse, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Customer name cannot be empty")
	}

	views, err := s.viewRepo.FindByCustomerNameWithAccess(ctx, access, name)
	if err != nil {
		return nil, err
	}
	return ToViewResponses(views), nil
}
