package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
	"gorm.io/gorm"
)

// viewRow is the scan target for the flattened customer-basket-item join.
// Basket and item columns come from LEFT JOINs and may be NULL.
type viewRow struct {
	CustomerID       uuid.UUID `gorm:"column:customer_id"`
	CustomerName     string    `gorm:"column:customer_name"`
	CustomerTimezone string    `gorm:"column:customer_timezone"`
	OwnerToken       string    `gorm:"column:owner_token"`
	CustomerCreated  time.Time `gorm:"column:customer_created"`

	BasketID         *uuid.UUID `gorm:"column:basket_id"`
	BasketStatus     *string    `gorm:"column:basket_status"`
	BasketStatusDate *time.Time `gorm:"column:basket_status_date"`
	BasketCreated    *time.Time `gorm:"column:basket_created"`

	ItemID          *uuid.UUID `gorm:"column:item_id"`
	ItemDescription *string    `gorm:"column:item_description"`
	ItemAmount      *int       `gorm:"column:item_amount"`
	ItemCreated     *time.Time `gorm:"column:item_created"`
}

func (r viewRow) toDomain() shop.CustomerBasketItemView {
	return shop.CustomerBasketItemView{
		CustomerID:       r.CustomerID,
		CustomerName:     r.CustomerName,
		CustomerTimezone: r.CustomerTimezone,
		OwnerToken:       r.OwnerToken,
		CustomerCreated:  r.CustomerCreated,
		BasketID:         r.BasketID,
		BasketStatus:     r.BasketStatus,
		BasketStatusDate: r.BasketStatusDate,
		BasketCreated:    r.BasketCreated,
		ItemID:           r.ItemID,
		ItemDescription:  r.ItemDescription,
		ItemAmount:       r.ItemAmount,
		ItemCreated:      r.ItemCreated,
	}
}

const viewColumns = `customers.id AS customer_id,
customers.name AS customer_name,
customers.timezone AS customer_timezone,
customers.owner_token AS owner_token,
customers.created_at AS customer_created,
shopping_baskets.id AS basket_id,
shopping_baskets.status AS basket_status,
shopping_baskets.status_date AS basket_status_date,
shopping_baskets.created_at AS basket_created,
items.id AS item_id,
items.description AS item_description,
items.amount AS item_amount,
items.created_at AS item_created`

// GormViewRepository implements shop.ViewRepository over the live tables.
// Customers without baskets and baskets without items still produce a row,
// so the joins are LEFT JOINs.
type GormViewRepository struct {
	db *gorm.DB
}

// NewGormViewRepository creates a new GormViewRepository
func NewGormViewRepository(db *gorm.DB) *GormViewRepository {
	return &GormViewRepository{db: db}
}

// scoped builds the joined query narrowed to the caller's visible customers
func (r *GormViewRepository) scoped(ctx context.Context, access shared.AccessContext) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("customers").
		Joins("LEFT JOIN shopping_baskets ON shopping_baskets.customer_id = customers.id").
		Joins("LEFT JOIN items ON items.basket_id = shopping_baskets.id")
	if !access.Admin {
		query = query.Where("customers.owner_token = ?", access.Token)
	}
	return query.Session(&gorm.Session{})
}

// FindAllWithAccess finds every visible row without paging
func (r *GormViewRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.CustomerBasketItemView, error) {
	var rows []viewRow
	query := r.scoped(ctx, access).
		Select(viewColumns).
		Order("customer_id ASC, basket_id ASC, item_id ASC")
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toViews(rows), nil
}

// FindPageWithAccess finds one page of visible rows and the total count
func (r *GormViewRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, filter shared.Filter) ([]shop.CustomerBasketItemView, int64, error) {
	base := r.scoped(ctx, access)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, ViewSortFields, "customer_id")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var rows []viewRow
	offset := (filter.Page - 1) * filter.PageSize
	if err := base.
		Select(viewColumns).
		Order(sortField + " " + sortOrder).
		Offset(offset).
		Limit(filter.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toViews(rows), total, nil
}

// FindByCustomerNameWithAccess finds the visible rows of the customers
// carrying the given name
func (r *GormViewRepository) FindByCustomerNameWithAccess(ctx context.Context, access shared.AccessContext, name string) ([]shop.CustomerBasketItemView, error) {
	var rows []viewRow
	query := r.scoped(ctx, access).
		Select(viewColumns).
		Where("customers.name = ?", name).
		Order("customer_id ASC, basket_id ASC, item_id ASC")
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toViews(rows), nil
}

func toViews(rows []viewRow) []shop.CustomerBasketItemView {
	views := make([]shop.CustomerBasketItemView, len(rows))
	for i, row := range rows {
		views[i] = row.toDomain()
	}
	return views
}

// Ensure GormViewRepository implements shop.ViewRepository
var _ shop.ViewRepository = (*GormViewRepository)(nil)
