package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
	"github.com/petshop/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemRepository implements shop.ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// scoped narrows an item query to the caller's visible rows for one basket.
// Visibility runs through the whole ownership chain: item, basket, customer.
func (r *GormItemRepository) scoped(ctx context.Context, access shared.AccessContext, basketID uuid.UUID) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.ItemModel{}).
		Select("items.*").
		Joins("JOIN shopping_baskets ON shopping_baskets.id = items.basket_id").
		Joins("JOIN customers ON customers.id = shopping_baskets.customer_id").
		Where("items.basket_id = ?", basketID)
	if !access.Admin {
		query = query.Where("customers.owner_token = ?", access.Token)
	}
	return query.Session(&gorm.Session{})
}

// FindByIDWithAccess finds an item of the basket visible to the caller
func (r *GormItemRepository) FindByIDWithAccess(ctx context.Context, access shared.AccessContext, basketID, id uuid.UUID) (*shop.Item, error) {
	var model models.ItemModel
	query := r.scoped(ctx, access, basketID).Where("items.id = ?", id)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Item not found")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllWithAccess finds every visible item across all of the caller's
// baskets without paging
func (r *GormItemRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.Item, error) {
	query := r.db.WithContext(ctx).
		Model(&models.ItemModel{}).
		Select("items.*").
		Joins("JOIN shopping_baskets ON shopping_baskets.id = items.basket_id").
		Joins("JOIN customers ON customers.id = shopping_baskets.customer_id").
		Order("items.id ASC")
	if !access.Admin {
		query = query.Where("customers.owner_token = ?", access.Token)
	}

	var itemModels []models.ItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]shop.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// FindPageWithAccess finds one page of the basket's visible items and the total count
func (r *GormItemRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID, filter shared.Filter) ([]shop.Item, int64, error) {
	base := r.scoped(ctx, access, basketID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, ItemSortFields, "id")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var itemModels []models.ItemModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := base.
		Order("items." + sortField + " " + sortOrder).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&itemModels).Error; err != nil {
		return nil, 0, err
	}

	items := make([]shop.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, total, nil
}

// FindByIDsWithAccess finds the visible items of the basket among the given IDs with a single query
func (r *GormItemRepository) FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID, ids []uuid.UUID) ([]shop.Item, error) {
	if len(ids) == 0 {
		return []shop.Item{}, nil
	}

	var itemModels []models.ItemModel
	query := r.scoped(ctx, access, basketID).Where("items.id IN ?", ids)
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]shop.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// StreamAllWithAccess opens a cursor over the basket's visible items
func (r *GormItemRepository) StreamAllWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID) (shared.Cursor[shop.Item], error) {
	rows, err := r.scoped(ctx, access, basketID).Order("items.id ASC").Rows()
	if err != nil {
		return nil, err
	}
	return newRowCursor(r.db, rows, (*models.ItemModel).ToDomain), nil
}

// ExistsByIDWithAccess checks whether a visible item with the ID exists in the basket
func (r *GormItemRepository) ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, basketID, id uuid.UUID) (bool, error) {
	var count int64
	query := r.scoped(ctx, access, basketID).Where("items.id = ?", id)
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *shop.Item) error {
	model := models.ItemModelFromDomain(item)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveAll persists multiple items in one bulk write
func (r *GormItemRepository) SaveAll(ctx context.Context, items []*shop.Item) error {
	if len(items) == 0 {
		return nil
	}
	itemModels := make([]*models.ItemModel, len(items))
	for i, it := range items {
		itemModels[i] = models.ItemModelFromDomain(it)
	}
	return r.db.WithContext(ctx).Save(itemModels).Error
}

// Delete deletes an item
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("NOT_FOUND", "Item not found")
	}
	return nil
}

// Ensure GormItemRepository implements shop.ItemRepository
var _ shop.ItemRepository = (*GormItemRepository)(nil)
