package shop

import (
	"context"

	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
)

// BusinessMetrics carries per-category counters computed over the caller's
// visible data. Admin callers additionally get per-tenant customer counts
// keyed by the owning token.
type BusinessMetrics struct {
	Customers map[string]int64 `json:"customers"`
	Baskets   map[string]int64 `json:"baskets"`
	Items     map[string]int64 `json:"items"`
}

// MetricsService computes business metrics over the caller's visible data
type MetricsService struct {
	customerRepo shop.CustomerRepository
	basketRepo   shop.BasketRepository
	itemRepo     shop.ItemRepository
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(customerRepo shop.CustomerRepository, basketRepo shop.BasketRepository, itemRepo shop.ItemRepository) *MetricsService {
	return &MetricsService{
		customerRepo: customerRepo,
		basketRepo:   basketRepo,
		itemRepo:     itemRepo,
	}
}

// Snapshot computes the current business metrics for the caller's scope
func (s *MetricsService) Snapshot(ctx context.Context, access shared.AccessContext) (*BusinessMetrics, error) {
	customers, err := s.customerRepo.FindAllWithAccess(ctx, access)
	if err != nil {
		return nil, err
	}
	baskets, err := s.basketRepo.FindAllWithAccess(ctx, access)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindAllWithAccess(ctx, access)
	if err != nil {
		return nil, err
	}

	metrics := &BusinessMetrics{
		Customers: map[string]int64{"total": int64(len(customers))},
		Baskets:   map[string]int64{"total": int64(len(baskets))},
		Items:     map[string]int64{"total": int64(len(items))},
	}

	if access.Admin {
		for i := range customers {
			metrics.Customers["tenant:"+customers[i].OwnerToken]++
		}
	}

	for i := range baskets {
		metrics.Baskets["status:"+string(baskets[i].Status)]++
	}

	var units int64
	for i := range items {
		units += int64(items[i].Amount)
	}
	metrics.Items["units"] = units

	return metrics, nil
}
