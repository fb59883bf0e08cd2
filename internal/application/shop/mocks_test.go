package shop

import (
	"context"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
	"github.com/stretchr/testify/mock"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockCustomerRepository is a mock implementation of shop.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDWithAccess(ctx context.Context, access shared.AccessContext, id uuid.UUID) (*shop.Customer, error) {
	args := m.Called(ctx, access, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.Customer, error) {
	args := m.Called(ctx, access)
	return args.Get(0).([]shop.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, filter shared.Filter) ([]shop.Customer, int64, error) {
	args := m.Called(ctx, access, filter)
	return args.Get(0).([]shop.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, ids []uuid.UUID) ([]shop.Customer, error) {
	args := m.Called(ctx, access, ids)
	return args.Get(0).([]shop.Customer), args.Error(1)
}

func (m *MockCustomerRepository) StreamAllWithAccess(ctx context.Context, access shared.AccessContext) (shared.Cursor[shop.Customer], error) {
	args := m.Called(ctx, access)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(shared.Cursor[shop.Customer]), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, access, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByNameWithAccess(ctx context.Context, access shared.AccessContext, name string) (bool, error) {
	args := m.Called(ctx, access, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *shop.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveAll(ctx context.Context, customers []*shop.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBasketRepository is a mock implementation of shop.BasketRepository
type MockBasketRepository struct {
	mock.Mock
}

func (m *MockBasketRepository) FindByIDWithAccess(ctx context.Context, access shared.AccessContext, customerID, id uuid.UUID) (*shop.ShoppingBasket, error) {
	args := m.Called(ctx, access, customerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.ShoppingBasket), args.Error(1)
}

func (m *MockBasketRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.ShoppingBasket, error) {
	args := m.Called(ctx, access)
	return args.Get(0).([]shop.ShoppingBasket), args.Error(1)
}

func (m *MockBasketRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, filter shared.Filter) ([]shop.ShoppingBasket, int64, error) {
	args := m.Called(ctx, access, customerID, filter)
	return args.Get(0).([]shop.ShoppingBasket), args.Get(1).(int64), args.Error(2)
}

func (m *MockBasketRepository) FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, ids []uuid.UUID) ([]shop.ShoppingBasket, error) {
	args := m.Called(ctx, access, customerID, ids)
	return args.Get(0).([]shop.ShoppingBasket), args.Error(1)
}

func (m *MockBasketRepository) StreamAllWithAccess(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) (shared.Cursor[shop.ShoppingBasket], error) {
	args := m.Called(ctx, access, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(shared.Cursor[shop.ShoppingBasket]), args.Error(1)
}

func (m *MockBasketRepository) ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, customerID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, access, customerID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBasketRepository) Save(ctx context.Context, basket *shop.ShoppingBasket) error {
	args := m.Called(ctx, basket)
	return args.Error(0)
}

func (m *MockBasketRepository) SaveAll(ctx context.Context, baskets []*shop.ShoppingBasket) error {
	args := m.Called(ctx, baskets)
	return args.Error(0)
}

func (m *MockBasketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemRepository is a mock implementation of shop.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByIDWithAccess(ctx context.Context, access shared.AccessContext, basketID, id uuid.UUID) (*shop.Item, error) {
	args := m.Called(ctx, access, basketID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shop.Item), args.Error(1)
}

func (m *MockItemRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.Item, error) {
	args := m.Called(ctx, access)
	return args.Get(0).([]shop.Item), args.Error(1)
}

func (m *MockItemRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID, filter shared.Filter) ([]shop.Item, int64, error) {
	args := m.Called(ctx, access, basketID, filter)
	return args.Get(0).([]shop.Item), args.Get(1).(int64), args.Error(2)
}

func (m *MockItemRepository) FindByIDsWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID, ids []uuid.UUID) ([]shop.Item, error) {
	args := m.Called(ctx, access, basketID, ids)
	return args.Get(0).([]shop.Item), args.Error(1)
}

func (m *MockItemRepository) StreamAllWithAccess(ctx context.Context, access shared.AccessContext, basketID uuid.UUID) (shared.Cursor[shop.Item], error) {
	args := m.Called(ctx, access, basketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(shared.Cursor[shop.Item]), args.Error(1)
}

func (m *MockItemRepository) ExistsByIDWithAccess(ctx context.Context, access shared.AccessContext, basketID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, access, basketID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *shop.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) SaveAll(ctx context.Context, items []*shop.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockViewRepository is a mock implementation of shop.ViewRepository
type MockViewRepository struct {
	mock.Mock
}

func (m *MockViewRepository) FindAllWithAccess(ctx context.Context, access shared.AccessContext) ([]shop.CustomerBasketItemView, error) {
	args := m.Called(ctx, access)
	return args.Get(0).([]shop.CustomerBasketItemView), args.Error(1)
}

func (m *MockViewRepository) FindPageWithAccess(ctx context.Context, access shared.AccessContext, filter shared.Filter) ([]shop.CustomerBasketItemView, int64, error) {
	args := m.Called(ctx, access, filter)
	return args.Get(0).([]shop.CustomerBasketItemView), args.Get(1).(int64), args.Error(2)
}

func (m *MockViewRepository) FindByCustomerNameWithAccess(ctx context.Context, access shared.AccessContext, name string) ([]shop.CustomerBasketItemView, error) {
	args := m.Called(ctx, access, name)
	return args.Get(0).([]shop.CustomerBasketItemView), args.Error(1)
}

// =============================================================================
// Fake cursor
// =============================================================================

// sliceCursor serves records from a slice and tracks whether it was closed
type sliceCursor[T any] struct {
	records []T
	pos     int
	err     error
	closed  bool
}

func newSliceCursor[T any](records []T) *sliceCursor[T] {
	return &sliceCursor[T]{records: records, pos: -1}
}

func (c *sliceCursor[T]) Next() bool {
	if c.err != nil || c.pos+1 >= len(c.records) {
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor[T]) Value() (*T, error) {
	return &c.records[c.pos], nil
}

func (c *sliceCursor[T]) Err() error {
	return c.err
}

func (c *sliceCursor[T]) Close() error {
	c.closed = true
	return nil
}
