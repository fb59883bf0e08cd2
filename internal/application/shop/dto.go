package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shop"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Timezone string `json:"timezone" binding:"required,iana_tz"`
}

// UpdateCustomerRequest represents a full replacement of a customer's mutable fields
type UpdateCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Timezone string `json:"timezone" binding:"required,iana_tz"`
}

// PatchCustomerRequest represents a partial update of a customer.
// At least one field must be present.
type PatchCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Timezone *string `json:"timezone" binding:"omitempty,iana_tz"`
}

// IsEmpty reports whether the patch carries no fields
func (r PatchCustomerRequest) IsEmpty() bool {
	return r.Name == nil && r.Timezone == nil
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *shop.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Timezone:  c.Timezone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain Customers
func ToCustomerResponses(customers []shop.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}

// =============================================================================
// Basket DTOs
// =============================================================================

// UpdateBasketRequest represents a status change request for a basket
type UpdateBasketRequest struct {
	Status string `json:"status" binding:"required"`
}

// PatchBasketRequest represents a partial update of a basket.
// Status is the basket's only mutable field; at least one field must be present.
type PatchBasketRequest struct {
	Status *string `json:"status"`
}

// IsEmpty reports whether the patch carries no fields
func (r PatchBasketRequest) IsEmpty() bool {
	return r.Status == nil
}

// BasketResponse represents a shopping basket in API responses
type BasketResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
	StatusDate time.Time `json:"status_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToBasketResponse converts a domain ShoppingBasket to BasketResponse
func ToBasketResponse(b *shop.ShoppingBasket) BasketResponse {
	return BasketResponse{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		Status:     string(b.Status),
		StatusDate: b.StatusDate,
		CreatedAt:  b.CreatedAt,
	}
}

// ToBasketResponses converts a slice of domain ShoppingBaskets
func ToBasketResponses(baskets []shop.ShoppingBasket) []BasketResponse {
	responses := make([]BasketResponse, len(baskets))
	for i := range baskets {
		responses[i] = ToBasketResponse(&baskets[i])
	}
	return responses
}

// =============================================================================
// Item DTOs
// =============================================================================

// CreateItemRequest represents a request to add an item to a basket
type CreateItemRequest struct {
	Description string `json:"description" binding:"required,min=2,max=255"`
	Amount      int    `json:"amount" binding:"required,min=1"`
}

// UpdateItemRequest represents a full replacement of an item's mutable fields
type UpdateItemRequest struct {
	Description string `json:"description" binding:"required,min=2,max=255"`
	Amount      int    `json:"amount" binding:"required,min=1"`
}

// PatchItemRequest represents a partial update of an item.
// At least one field must be present.
type PatchItemRequest struct {
	Description *string `json:"description" binding:"omitempty,min=2,max=255"`
	Amount      *int    `json:"amount" binding:"omitempty,min=1"`
}

// IsEmpty reports whether the patch carries no fields
func (r PatchItemRequest) IsEmpty() bool {
	return r.Description == nil && r.Amount == nil
}

// ItemResponse represents a basket item in API responses
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	BasketID    uuid.UUID `json:"basket_id"`
	Description string    `json:"description"`
	Amount      int       `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToItemResponse converts a domain Item to ItemResponse
func ToItemResponse(i *shop.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		BasketID:    i.BasketID,
		Description: i.Description,
		Amount:      i.Amount,
		CreatedAt:   i.CreatedAt,
	}
}

// ToItemResponses converts a slice of domain Items
func ToItemResponses(items []shop.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
