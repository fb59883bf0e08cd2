package shop

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
)

// BasketService handles shopping basket business operations
type BasketService struct {
	customerRepo shop.CustomerRepository
	basketRepo   shop.BasketRepository
}

// NewBasketService creates a new BasketService
func NewBasketService(customerRepo shop.CustomerRepository, basketRepo shop.BasketRepository) *BasketService {
	return &BasketService{
		customerRepo: customerRepo,
		basketRepo:   basketRepo,
	}
}

// Create creates a new basket in status NEW for a customer visible to the caller
func (s *BasketService) Create(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) (*BasketResponse, error) {
	if err := s.requireCustomer(ctx, access, customerID); err != nil {
		return nil, err
	}

	basket, err := shop.NewShoppingBasket(customerID)
	if err != nil {
		return nil, err
	}

	if err := s.basketRepo.Save(ctx, basket); err != nil {
		return nil, err
	}

	response := ToBasketResponse(basket)
	return &response, nil
}

// GetByID retrieves a basket of the customer visible to the caller
func (s *BasketService) GetByID(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID) (*BasketResponse, error) {
	basket, err := s.basketRepo.FindByIDWithAccess(ctx, access, customerID, basketID)
	if err != nil {
		return nil, err
	}

	response := ToBasketResponse(basket)
	return &response, nil
}

// List retrieves one page of the customer's baskets
func (s *BasketService) List(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, page PageRequest, baseURL string) (*PagedResponse[BasketResponse], error) {
	if err := s.requireCustomer(ctx, access, customerID); err != nil {
		return nil, err
	}
	page.Sanitize()

	baskets, total, err := s.basketRepo.FindPageWithAccess(ctx, access, customerID, page.ToFilter())
	if err != nil {
		return nil, err
	}

	response := NewPagedResponse(ToBasketResponses(baskets), total, page, baseURL)
	return &response, nil
}

// Stream writes all of the customer's baskets to w as newline-delimited JSON
func (s *BasketService) Stream(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, w io.Writer) error {
	if err := s.requireCustomer(ctx, access, customerID); err != nil {
		return err
	}

	cursor, err := s.basketRepo.StreamAllWithAccess(ctx, access, customerID)
	if err != nil {
		return err
	}

	return streamNDJSON(w, cursor, ToBasketResponse)
}

// UpdateStatus advances a basket to the requested status through the
// lifecycle state machine
func (s *BasketService) UpdateStatus(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID, req UpdateBasketRequest) (*BasketResponse, error) {
	basket, err := s.basketRepo.FindByIDWithAccess(ctx, access, customerID, basketID)
	if err != nil {
		return nil, err
	}

	status, err := shop.ParseBasketStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := basket.TransitionTo(status); err != nil {
		return nil, err
	}

	if err := s.basketRepo.Save(ctx, basket); err != nil {
		return nil, err
	}

	response := ToBasketResponse(basket)
	return &response, nil
}

// Patch applies a partial update to a basket. Status is the only mutable
// field, so a present status goes through the state machine.
func (s *BasketService) Patch(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID, req PatchBasketRequest) (*BasketResponse, error) {
	if req.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_REQUEST", "At least one field must be provided")
	}

	return s.UpdateStatus(ctx, access, customerID, basketID, UpdateBasketRequest{Status: *req.Status})
}

// BatchUpdate applies status patches to many baskets with partial success
func (s *BasketService) BatchUpdate(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, elements []BatchElement[PatchBasketRequest]) (*BatchResult[BasketResponse], error) {
	return processBatch(
		elements,
		func(ids []uuid.UUID) ([]shop.ShoppingBasket, error) {
			return s.basketRepo.FindByIDsWithAccess(ctx, access, customerID, ids)
		},
		func(b *shop.ShoppingBasket) uuid.UUID { return b.ID },
		applyBasketPatch,
		func(baskets []*shop.ShoppingBasket) error {
			return s.basketRepo.SaveAll(ctx, baskets)
		},
		func(b *shop.ShoppingBasket) BasketResponse { return ToBasketResponse(b) },
		"Basket not found or access denied",
	)
}

// Delete deletes a basket of the customer visible to the caller. Items go
// with it through database-level cascades.
func (s *BasketService) Delete(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID) error {
	basket, err := s.basketRepo.FindByIDWithAccess(ctx, access, customerID, basketID)
	if err != nil {
		return err
	}

	return s.basketRepo.Delete(ctx, basket.ID)
}

// Exists checks whether a basket visible to the caller exists for the customer
func (s *BasketService) Exists(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID) (bool, error) {
	return s.basketRepo.ExistsByIDWithAccess(ctx, access, customerID, basketID)
}

func (s *BasketService) requireCustomer(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) error {
	_, err := s.customerRepo.FindByIDWithAccess(ctx, access, customerID)
	return err
}

func applyBasketPatch(basket *shop.ShoppingBasket, patch PatchBasketRequest) error {
	status, err := shop.ParseBasketStatus(*patch.Status)
	if err != nil {
		return err
	}
	return basket.TransitionTo(status)
}
