package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
)

// BasketRepository defines the interface for shopping basket persistence.
// Visibility is resolved through the owning customer's token.
type BasketRepository interface {
	// FindByIDWithAccess finds a basket of the customer visible to the caller
	FindByIDWithAccess(ctx context.Context, access shared.AccessContext, customerID, id uuid.UUID) (*ShoppingBasket, error)

	// FindAllWithAccess finds every visible basket across all of the caller's
	// customers without paging
	FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]ShoppingBasket, error)

	// FindPageWithAccess finds one page of the customer's visible baskets and the total count
	FindPageWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, filter shared.Filter) ([]ShoppingBasket, int64, error)

	// FindByIDsWithAccess finds the visible baskets of the customer among the
	// given IDs with a single query
	FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, ids []uuid.UUID) ([]ShoppingBasket, error)

	// StreamAllWithAccess opens a cursor over the customer's visible baskets
	StreamAllWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) (shared.Cursor[ShoppingBasket], error)

	// ExistsByIDWithAccess checks whether a visible basket with the ID exists for the customer
	ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, customerID, id uuid.UUID) (bool, error)

	// Save creates or updates a basket
	Save(ctx context.Context, basket *ShoppingBasket) error

	// SaveAll persists multiple baskets in one bulk write
	SaveAll(ctx context.Context, baskets []*ShoppingBasket) error

	// Delete deletes a basket; items cascade at the database level
	Delete(ctx context.Context, id uuid.UUID) error
}
