package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
)

// ItemRepository defines the interface for basket item persistence.
// Visibility is resolved through the basket's owning customer.
type ItemRepository interface {
	// FindByIDWithAccess finds an item of the basket visible to the caller
	FindByIDWithAccess(ctx context.Context, access shared.AccessContext, basketID, id uuid.UUID) (*Item, error)

	// FindAllWithAccess finds every visible item across all of the caller's
	// baskets without paging
	FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]Item, error)

	// FindPageWithAccess finds one page of the basket's visible items and the total count
	FindPageWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID, filter shared.Filter) ([]Item, int64, error)

	// FindByIDsWithAccess finds the visible items of the basket among the
	// given IDs with a single query
	FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID, ids []uuid.UUID) ([]Item, error)

	// StreamAllWithAccess opens a cursor over the basket's visible items
	StreamAllWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID) (shared.Cursor[Item], error)

	// ExistsByIDWithAccess checks whether a visible item with the ID exists in the basket
	ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, basketID, id uuid.UUID) (bool, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error

	// SaveAll persists multiple items in one bulk write
	SaveAll(ctx context.Context, items []*Item) error

	// Delete deletes an item
	Delete(ctx context.Context, id uuid.UUID) error
}
