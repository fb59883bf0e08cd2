package shop

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
)

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo shop.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo shop.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// Create creates a new customer owned by the calling token
func (s *CustomerService) Create(ctx context.Context, access shared.AccessContext, req CreateCustomerRequest) (*CustomerResponse, error) {
	exists, err := s.customerRepo.ExistsByNameWithAccess(ctx, access, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Customer with this name already exists")
	}

	// The owner token always comes from the caller's credentials, never
	// from the payload.
	customer, err := shop.NewCustomer(req.Name, req.Timezone, access.Token)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// GetByID retrieves a customer visible to the caller
func (s *CustomerService) GetByID(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDWithAccess(ctx, access, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// List retrieves one page of the caller's customers
func (s *CustomerService) List(ctx context.Context, access shared.AccessContext, page PageRequest, baseURL string) (*PagedResponse[CustomerResponse], error) {
	page.Sanitize()

	customers, total, err := s.customerRepo.FindPageWithAccess(ctx, access, page.ToFilter())
	if err != nil {
		return nil, err
	}

	response := NewPagedResponse(ToCustomerResponses(customers), total, page, baseURL)
	return &response, nil
}

// Stream writes all of the caller's customers to w as newline-delimited JSON
func (s *CustomerService) Stream(ctx context.Context, access shared.AccessContext, w io.Writer) error {
	cursor, err := s.customerRepo.StreamAllWithAccess(ctx, access)
	if err != nil {
		return err
	}

	return streamNDJSON(w, cursor, ToCustomerResponse)
}

// Update replaces a customer's mutable fields
func (s *CustomerService) Update(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDWithAccess(ctx, access, customerID)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Name, req.Timezone); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Patch applies a partial update to a customer
func (s *CustomerService) Patch(ctx context.Context, access shared.AccessContext, customerID uuid.UUID, req PatchCustomerRequest) (*CustomerResponse, error) {
	if req.IsEmpty() {
		return nil, shared.NewDomainError("INVALID_REQUEST", "At least one field must be provided")
	}

	customer, err := s.customerRepo.FindByIDWithAccess(ctx, access, customerID)
	if err != nil {
		return nil, err
	}

	if err := applyCustomerPatch(customer, req); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// BatchUpdate applies patches to many customers with partial success. Each
// element succeeds or fails independently; one bulk save persists all
// successes together.
func (s *CustomerService) BatchUpdate(ctx context.Context, access shared.AccessContext, elements []BatchElement[PatchCustomerRequest]) (*BatchResult[CustomerResponse], error) {
	return processBatch(
		elements,
		func(ids []uuid.UUID) ([]shop.Customer, error) {
			return s.customerRepo.FindByIDsWithAccess(ctx, access, ids)
		},
		func(c *shop.Customer) uuid.UUID { return c.ID },
		applyCustomerPatch,
		func(customers []*shop.Customer) error {
			return s.customerRepo.SaveAll(ctx, customers)
		},
		func(c *shop.Customer) CustomerResponse { return ToCustomerResponse(c) },
		"Customer not found or access denied",
	)
}

// Delete deletes a customer visible to the caller. Baskets and their items
// go with it through database-level cascades.
func (s *CustomerService) Delete(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) error {
	customer, err := s.customerRepo.FindByIDWithAccess(ctx, access, customerID)
	if err != nil {
		return err
	}

	return s.customerRepo.Delete(ctx, customer.ID)
}

// Exists checks whether a customer visible to the caller exists
func (s *CustomerService) Exists(ctx context.Context, access shared.AccessContext, customerID uuid.UUID) (bool, error) {
	return s.customerRepo.ExistsByIDWithAccess(ctx, access, customerID)
}

func applyCustomerPatch(customer *shop.Customer, patch PatchCustomerRequest) error {
	if patch.Name != nil {
		if err := customer.SetName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Timezone != nil {
		if err := customer.SetTimezone(*patch.Timezone); err != nil {
			return err
		}
	}
	return nil
}
