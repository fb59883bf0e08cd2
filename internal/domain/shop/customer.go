package shop

import (
	"time"

	"github.com/petshop/backend/internal/domain/shared"
)

// Customer represents a tenant-owned customer record.
// It is the aggregate root of the basket ownership chain.
type Customer struct {
	shared.BaseEntity
	Name     string
	Timezone string
	// OwnerToken is the tenant token that created the customer.
	// It never changes after creation and is never taken from a payload.
	OwnerToken string
}

// NewCustomer creates a new customer owned by the calling token
func NewCustomer(name, timezone, ownerToken string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if err := validateTimezone(timezone); err != nil {
		return nil, err
	}
	if ownerToken == "" {
		return nil, shared.NewDomainError("INVALID_REQUEST", "Owner token cannot be empty")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Timezone:   timezone,
		OwnerToken: ownerToken,
	}, nil
}

// Update replaces the customer's mutable fields
func (c *Customer) Update(name, timezone string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}
	if err := validateTimezone(timezone); err != nil {
		return err
	}

	c.Name = name
	c.Timezone = timezone
	c.UpdatedAt = time.Now()

	return nil
}

// SetName updates only the customer's name
func (c *Customer) SetName(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()

	return nil
}

// SetTimezone updates only the customer's timezone
func (c *Customer) SetTimezone(timezone string) error {
	if err := validateTimezone(timezone); err != nil {
		return err
	}

	c.Timezone = timezone
	c.UpdatedAt = time.Now()

	return nil
}

func validateCustomerName(name string) error {
	if len(name) < 2 {
		return shared.NewDomainError("INVALID_REQUEST", "Customer name must be at least 2 characters")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_REQUEST", "Customer name cannot exceed 255 characters")
	}
	return nil
}

func validateTimezone(timezone string) error {
	if timezone == "" {
		return shared.NewDomainError("INVALID_REQUEST", "Timezone cannot be empty")
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return shared.NewDomainError("INVALID_REQUEST", "Timezone must be a valid IANA zone identifier")
	}
	return nil
}
