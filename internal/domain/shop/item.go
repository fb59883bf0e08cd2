package shop

import (
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
)

// Item represents a line in a shopping basket
type Item struct {
	shared.BaseEntity
	BasketID    uuid.UUID
	Description string
	Amount      int
}

// NewItem creates a new item in a basket
func NewItem(basketID uuid.UUID, description string, amount int) (*Item, error) {
	if basketID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Basket ID cannot be empty")
	}
	if err := validateItemDescription(description); err != nil {
		return nil, err
	}
	if err := validateItemAmount(amount); err != nil {
		return nil, err
	}

	return &Item{
		BaseEntity:  shared.NewBaseEntity(),
		BasketID:    basketID,
		Description: description,
		Amount:      amount,
	}, nil
}

// Update replaces the item's mutable fields
func (i *Item) Update(description string, amount int) error {
	if err := validateItemDescription(description); err != nil {
		return err
	}
	if err := validateItemAmount(amount); err != nil {
		return err
	}

	i.Description = description
	i.Amount = amount
	i.UpdatedAt = time.Now()

	return nil
}

// SetDescription updates only the item's description
func (i *Item) SetDescription(description string) error {
	if err := validateItemDescription(description); err != nil {
		return err
	}

	i.Description = description
	i.UpdatedAt = time.Now()

	return nil
}

// SetAmount updates only the item's amount
func (i *Item) SetAmount(amount int) error {
	if err := validateItemAmount(amount); err != nil {
		return err
	}

	i.Amount = amount
	i.UpdatedAt = time.Now()

	return nil
}

func validateItemDescription(description string) error {
	if len(description) < 2 {
		return shared.NewDomainError("INVALID_REQUEST", "Item description must be at least 2 characters")
	}
	if len(description) > 255 {
		return shared.NewDomainError("INVALID_REQUEST", "Item description cannot exceed 255 characters")
	}
	return nil
}

func validateItemAmount(amount int) error {
	if amount < 1 {
		return shared.NewDomainError("INVALID_REQUEST", "Item amount must be at least 1")
	}
	return nil
}
