package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
)

// CustomerRepository defines the interface for customer persistence.
// Every read is scoped by the caller's access context: tenants only see
// customers whose owner token matches theirs, admins see everything.
type CustomerRepository interface {
	// FindByIDWithAccess finds a customer by ID visible to the caller
	FindByIDWithAccess(ctx context.Context, access shared.AccessContext, id uuid.UUID) (*Customer, error)

	// FindAllWithAccess finds every visible customer without paging
	FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]Customer, error)

	// FindPageWithAccess finds one page of visible customers and the total count
	FindPageWithAccess(ctx context.Context, access shared.AccessContext, filter shared.Filter) ([]Customer, int64, error)

	// FindByIDsWithAccess finds the visible customers among the given IDs
	// with a single query; missing or foreign IDs are silently absent
	FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, ids []uuid.UUID) ([]Customer, error)

	// StreamAllWithAccess opens a cursor over all visible customers.
	// The caller owns the cursor and must close it.
	StreamAllWithAccess(ctx context.Context, access shared.AccessContext) (shared.Cursor[Customer], error)

	// ExistsByIDWithAccess checks whether a visible customer with the ID exists
	ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, id uuid.UUID) (bool, error)

	// ExistsByNameWithAccess checks whether the caller already has a customer with the name
	ExistsByNameWithAccess(ctx context.Context, access shared.AccessContext, name string) (bool, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// SaveAll persists multiple customers in one bulk write
	SaveAll(ctx context.Context, customers []*Customer) error

	// Delete deletes a customer; baskets and items cascade at the database level
	Delete(ctx context.Context, id uuid.UUID) error
}
