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

// GormBasketRepository implements shop.BasketRepository using GORM
type GormBasketRepository struct {
	db *gorm.DB
}

// NewGormBasketRepository creates a new GormBasketRepository
func NewGormBasketRepository(db *gorm.DB) *GormBasketRepository {
	return &GormBasketRepository{db: db}
}

// scoped narrows a basket query to the caller's visible rows for one
// customer. Visibility comes from the owning customer's token, so non-admin
// queries join through the customers table.
func (r *GormBasketRepository) scoped(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&models.BasketModel{}).
		Select("shopping_baskets.*").
		Joins("JOIN customers ON customers.id = shopping_baskets.customer_id").
		Where("shopping_baskets.customer_id = ?", customerID)
	if !access.Admin {
		query = query.Where("customers.owner_token = ?", access.Token)
	}
	return query.Session(&gorm.Session{})
}

// FindByIDWithAccess finds a basket of the customer visible to the caller
func (r *GormBasketRepository) FindByIDWithAccess(ctx context.Context, access shared.AccessContext, customerID, id uuid.UUID) (*shop.ShoppingBasket, error) {
	var model models.BasketModel
	query := r.scoped(ctx, access, customerID).Where("shopping_baskets.id = ?", id)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Basket not found")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllWithAccess finds every visible basket across all of the caller's
// customers without paging
func (r *GormBasketRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.ShoppingBasket, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BasketModel{}).
		Select("shopping_baskets.*").
		Joins("JOIN customers ON customers.id = shopping_baskets.customer_id").
		Order("shopping_baskets.id ASC")
	if !access.Admin {
		query = query.Where("customers.owner_token = ?", access.Token)
	}

	var basketModels []models.BasketModel
	if err := query.Find(&basketModels).Error; err != nil {
		return nil, err
	}

	baskets := make([]shop.ShoppingBasket, len(basketModels))
	for i, model := range basketModels {
		baskets[i] = *model.ToDomain()
	}
	return baskets, nil
}

// FindPageWithAccess finds one page of the customer's visible baskets and the total count
func (r *GormBasketRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, filter shared.Filter) ([]shop.ShoppingBasket, int64, error) {
	base := r.scoped(ctx, access, customerID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, BasketSortFields, "id")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var basketModels []models.BasketModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := base.
		Order("shopping_baskets." + sortField + " " + sortOrder).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&basketModels).Error; err != nil {
		return nil, 0, err
	}

	baskets := make([]shop.ShoppingBasket, len(basketModels))
	for i, model := range basketModels {
		baskets[i] = *model.ToDomain()
	}
	return baskets, total, nil
}

// FindByIDsWithAccess finds the visible baskets of the customer among the given IDs with a single query
func (r *GormBasketRepository) FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, ids []uuid.UUID) ([]shop.ShoppingBasket, error) {
	if len(ids) == 0 {
		return []shop.ShoppingBasket{}, nil
	}

	var basketModels []models.BasketModel
	query := r.scoped(ctx, access, customerID).Where("shopping_baskets.id IN ?", ids)
	if err := query.Find(&basketModels).Error; err != nil {
		return nil, err
	}

	baskets := make([]shop.ShoppingBasket, len(basketModels))
	for i, model := range basketModels {
		baskets[i] = *model.ToDomain()
	}
	return baskets, nil
}

// StreamAllWithAccess opens a cursor over the customer's visible baskets
func (r *GormBasketRepository) StreamAllWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) (shared.Cursor[shop.ShoppingBasket], error) {
	rows, err := r.scoped(ctx, access, customerID).Order("shopping_baskets.id ASC").Rows()
	if err != nil {
		return nil, err
	}
	return newRowCursor(r.db, rows, (*models.BasketModel).ToDomain), nil
}

// ExistsByIDWithAccess checks whether a visible basket with the ID exists for the customer
func (r *GormBasketRepository) ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, customerID, id uuid.UUID) (bool, error) {
	var count int64
	query := r.scoped(ctx, access, customerID).Where("shopping_baskets.id = ?", id)
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a basket
func (r *GormBasketRepository) Save(ctx context.Context, basket *shop.ShoppingBasket) error {
	model := models.BasketModelFromDomain(basket)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveAll persists multiple baskets in one bulk write
func (r *GormBasketRepository) SaveAll(ctx context.Context, baskets []*shop.ShoppingBasket) error {
	if len(baskets) == 0 {
		return nil
	}
	basketModels := make([]*models.BasketModel, len(baskets))
	for i, b := range baskets {
		basketModels[i] = models.BasketModelFromDomain(b)
	}
	return r.db.WithContext(ctx).Save(basketModels).Error
}

// Delete deletes a basket; items cascade at the database level
func (r *GormBasketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BasketModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("NOT_FOUND", "Basket not found")
	}
	return nil
}

// Ensure GormBasketRepository implements shop.BasketRepository
var _ shop.BasketRepository = (*GormBasketRepository)(nil)
