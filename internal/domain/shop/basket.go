package shop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
)

// BasketStatus represents the lifecycle status of a shopping basket
type BasketStatus string

const (
	BasketStatusNew       BasketStatus = "NEW"
	BasketStatusPaid      BasketStatus = "PAID"
	BasketStatusProcessed BasketStatus = "PROCESSED"
	BasketStatusUnknown   BasketStatus = "UNKNOWN"
)

// basketTransitions is the linear status progression. Each status has at most
// one successor; UNKNOWN is terminal. Same-state and backward moves are not
// transitions.
var basketTransitions = map[BasketStatus]BasketStatus{
	BasketStatusNew:       BasketStatusPaid,
	BasketStatusPaid:      BasketStatusProcessed,
	BasketStatusProcessed: BasketStatusUnknown,
}

// ParseBasketStatus parses a status string into a BasketStatus
func ParseBasketStatus(s string) (BasketStatus, error) {
	switch BasketStatus(s) {
	case BasketStatusNew, BasketStatusPaid, BasketStatusProcessed, BasketStatusUnknown:
		return BasketStatus(s), nil
	default:
		return "", shared.NewDomainError("INVALID_REQUEST",
			fmt.Sprintf("Invalid basket status %q", s))
	}
}

// ShoppingBasket represents a customer's shopping basket.
// Its status advances strictly forward through the lifecycle.
type ShoppingBasket struct {
	shared.BaseEntity
	CustomerID uuid.UUID
	Status     BasketStatus
	StatusDate time.Time
}

// NewShoppingBasket creates a new basket for a customer in status NEW
func NewShoppingBasket(customerID uuid.UUID) (*ShoppingBasket, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Customer ID cannot be empty")
	}

	base := shared.NewBaseEntity()
	return &ShoppingBasket{
		BaseEntity: base,
		CustomerID: customerID,
		Status:     BasketStatusNew,
		StatusDate: base.CreatedAt,
	}, nil
}

// CanTransitionTo reports whether next is the direct successor of the current status
func (b *ShoppingBasket) CanTransitionTo(next BasketStatus) bool {
	return basketTransitions[b.Status] == next
}

// TransitionTo advances the basket to the next status and records when the
// change happened. Any move that is not the direct successor fails, including
// same-state moves and anything out of the terminal UNKNOWN status.
func (b *ShoppingBasket) TransitionTo(next BasketStatus) error {
	if _, err := ParseBasketStatus(string(next)); err != nil {
		return err
	}
	if !b.CanTransitionTo(next) {
		return shared.NewDomainError("ILLEGAL_STATE_TRANSITION",
			fmt.Sprintf("Cannot transition basket from %s to %s", b.Status, next))
	}

	now := time.Now()
	b.Status = next
	b.StatusDate = now
	b.UpdatedAt = now

	return nil
}

// IsTerminal returns true when no further transition is possible
func (b *ShoppingBasket) IsTerminal() bool {
	_, ok := basketTransitions[b.Status]
	return !ok
}
