package shop

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
)

// ItemService handles basket item business operations
type ItemService struct {
	basketRepo shop.BasketRepository
	itemRepo   shop.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(basketRepo shop.BasketRepository, itemRepo shop.ItemRepository) *ItemService {
	return &ItemService{
		basketRepo: basketRepo,
		itemRepo:   itemRepo,
	}
}

// Create adds an item to a basket that belongs to the customer and is
// visible to the caller
func (s *ItemService) Create(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID, req CreateItemRequest) (*ItemResponse, error) {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return nil, err
	}

	item, err := shop.NewItem(basketID, req.Description, req.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item of the basket visible to the caller
func (s *ItemService) GetByID(ctx context.Context, access shared.AccessContext, customerID, basketID, itemID uuid.UUID) (*ItemResponse, error) {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByIDWithAccess(ctx, access, basketID, itemID)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves one page of the basket's items
func (s *ItemService) List(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID, page PageRequest, baseURL string) (*PagedResponse[ItemResponse], error) {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return nil, err
	}
	page.Sanitize()

	items, total, err := s.itemRepo.FindPageWithAccess(ctx, access, basketID, page.ToFilter())
	if err != nil {
		return nil, err
	}

	response := NewPagedResponse(ToItemResponses(items), total, page, baseURL)
	return &response, nil
}

// Stream writes all of the basket's items to w as newline-delimited JSON
func (s *ItemService) Stream(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID, w io.Writer) error {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return err
	}

	cursor, err := s.itemRepo.StreamAllWithAccess(ctx, access, basketID)
	if err != nil {
		return err
	}

	return streamNDJSON(w, cursor, ToItemResponse)
}

// Update replaces an item's mutable fields
func (s *ItemService) Update(ctx context.Context, access shared.AccessContext, customerID, basketID, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByIDWithAccess(ctx, access, basketID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.Update(req.Description, req.Amount); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Patch applies a partial update to an item
func (s *ItemService) Patch(ctx context.Context, access shared.AccessContext, customerID, basketID, itemID uuid.UUID, req PatchItemRequest) (*ItemResponse, error) {
	if req.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_REQUEST", "At least one field must be provided")
	}

	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.FindByIDWithAccess(ctx, access, basketID, itemID)
	if err != nil {
		return nil, err
	}

	if err := applyItemPatch(item, req); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// BatchUpdate applies patches to many items of one basket with partial success
func (s *ItemService) BatchUpdate(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID, elements []BatchElement[PatchItemRequest]) (*BatchResult[ItemResponse], error) {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return nil, err
	}

	return processBatch(
		elements,
		func(ids []uuid.UUID) ([]shop.Item, error) {
			return s.itemRepo.FindByIDsWithAccess(ctx, access, basketID, ids)
		},
		func(i *shop.Item) uuid.UUID { return i.ID },
		applyItemPatch,
		func(items []*shop.Item) error {
			return s.itemRepo.SaveAll(ctx, items)
		},
		func(i *shop.Item) ItemResponse { return ToItemResponse(i) },
		"Item not found or access denied",
	)
}

// Delete deletes an item of the basket visible to the caller
func (s *ItemService) Delete(ctx context.Context, access shared.AccessContext, customerID, basketID, itemID uuid.UUID) error {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return err
	}

	item, err := s.itemRepo.FindByIDWithAccess(ctx, access, basketID, itemID)
	if err != nil {
		return err
	}

	return s.itemRepo.Delete(ctx, item.ID)
}

// Exists checks whether an item visible to the caller exists in the basket
func (s *ItemService) Exists(ctx context.Context, access shared.AccessContext, customerID, basketID, itemID uuid.UUID) (bool, error) {
	if err := s.requireBasket(ctx, access, customerID, basketID); err != nil {
		return false, err
	}

	return s.itemRepo.ExistsByIDWithAccess(ctx, access, basketID, itemID)
}

// requireBasket ensures the basket exists, belongs to the customer, and is
// visible to the caller. Absent and forbidden look the same on purpose.
func (s *ItemService) requireBasket(ctx context.Context, access shared.AccessContext, customerID, basketID uuid.UUID) error {
	_, err := s.basketRepo.FindByIDWithAccess(ctx, access, customerID, basketID)
	return err
}

func applyItemPatch(item *shop.Item, patch PatchItemRequest) error {
	if patch.Description != nil {
		if err := item.SetDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Amount != nil {
		if err := item.SetAmount(*patch.Amount); err != nil {
			return err
		}
	}
	return nil
}
