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

// GormCustomerRepository implements shop.CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// scoped narrows a query to the caller's visible rows. Admin callers see
// everything; tenants only rows carrying their own token.
func (r *GormCustomerRepository) scoped(query *gorm.DB, access shared.AccessContext) *gorm.DB {
	if access.Admin {
		return query
	}
	return query.Where("owner_token = ?", access.Token)
}

// FindByIDWithAccess finds a customer by ID visible to the caller
func (r *GormCustomerRepository) FindByIDWithAccess(ctx context.Context, access shared.AccessContext, id uuid.UUID) (*shop.Customer, error) {
	var model models.CustomerModel
	query := r.scoped(r.db.WithContext(ctx).Where("id = ?", id), access)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllWithAccess finds every visible customer without paging
func (r *GormCustomerRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.Customer, error) {
	var customerModels []models.CustomerModel
	query := r.scoped(r.db.WithContext(ctx).Model(&models.CustomerModel{}), access).Order("id ASC")
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]shop.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// FindPageWithAccess finds one page of visible customers and the total count
func (r *GormCustomerRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, filter shared.Filter) ([]shop.Customer, int64, error) {
	// Session makes the scoped query reusable for both the count and the page.
	base := r.scoped(r.db.WithContext(ctx).Model(&models.CustomerModel{}), access).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, CustomerSortFields, "id")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	var customerModels []models.CustomerModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := base.
		Order(sortField + " " + sortOrder).
		Offset(offset).
		Limit(filter.PageSize).
		Find(&customerModels).Error; err != nil {
		return nil, 0, err
	}

	customers := make([]shop.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, total, nil
}

// FindByIDsWithAccess finds the visible customers among the given IDs with a single query
func (r *GormCustomerRepository) FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, ids []uuid.UUID) ([]shop.Customer, error) {
	if len(ids) == 0 {
		return []shop.Customer{}, nil
	}

	var customerModels []models.CustomerModel
	query := r.scoped(r.db.WithContext(ctx).Where("id IN ?", ids), access)
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]shop.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// StreamAllWithAccess opens a cursor over all visible customers
func (r *GormCustomerRepository) StreamAllWithAccess(ctx context.Context, access shared.AccessContext) (shared.Cursor[shop.Customer], error) {
	query := r.scoped(r.db.WithContext(ctx).Model(&models.CustomerModel{}), access).Order("id ASC")
	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	return newRowCursor(r.db, rows, (*models.CustomerModel).ToDomain), nil
}

// ExistsByIDWithAccess checks whether a visible customer with the ID exists
func (r *GormCustomerRepository) ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, id uuid.UUID) (bool, error) {
	var count int64
	query := r.scoped(r.db.WithContext(ctx).Model(&models.CustomerModel{}).Where("id = ?", id), access)
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByNameWithAccess checks whether the caller already has a customer with the name
func (r *GormCustomerRepository) ExistsByNameWithAccess(ctx context.Context, access shared.AccessContext, name string) (bool, error) {
	var count int64
	query := r.scoped(r.db.WithContext(ctx).Model(&models.CustomerModel{}).Where("name = ?", name), access)
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *shop.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveAll persists multiple customers in one bulk write
func (r *GormCustomerRepository) SaveAll(ctx context.Context, customers []*shop.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	customerModels := make([]*models.CustomerModel, len(customers))
	for i, c := range customers {
		customerModels[i] = models.CustomerModelFromDomain(c)
	}
	return r.db.WithContext(ctx).Save(customerModels).Error
}

// Delete deletes a customer; baskets and items cascade at the database level
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("NOT_FOUND", "Customer not found")
	}
	return nil
}

// Ensure GormCustomerRepository implements shop.CustomerRepository
var _ shop.CustomerRepository = (*GormCustomerRepository)(nil)
