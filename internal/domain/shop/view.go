package shop

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
)

// CustomerBasketItemView is one row of the flattened customer-basket-item
// join. Basket and item columns are nil when the customer has no basket or
// the basket holds no items.
type CustomerBasketItemView struct {
	CustomerID       uuid.UUID
	CustomerName     string
	CustomerTimezone string
	OwnerToken       string
	CustomerCreated  time.Time

	BasketID         *uuid.UUID
	BasketStatus     *string
	BasketStatusDate *time.Time
	BasketCreated    *time.Time

	ItemID          *uuid.UUID
	ItemDescription *string
	ItemAmount      *int
	ItemCreated     *time.Time
}

// ViewRepository reads the flattened customer-basket-item join. All reads
// carry the same access scoping as the entity repositories.
type ViewRepository interface {
	// FindAllWithAccess finds every visible row without paging
	FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]CustomerBasketItemView, error)

	// FindPageWithAccess finds one page of visible rows and the total count
	FindPageWithAccess(ctx context.Context, access shared.AccessContext, filter shared.Filter) ([]CustomerBasketItemView, int64, error)

	// FindByCustomerNameWithAccess finds the visible rows of the customers
	// carrying the given name. An admin caller can match the name across
	// tenants; a tenant only within its own scope.
	FindByCustomerNameWithAccess(ctx context.Context, access shared.AccessContext, name string) ([]CustomerBasketItemView, error)
}
