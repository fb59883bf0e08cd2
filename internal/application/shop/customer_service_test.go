package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/petshop/backend/internal/domain/shop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func tenantAccess() shared.AccessContext {
	return shared.AccessContext{Token: "tenant-one"}
}

func mustCustomer(t *testing.T, name, owner string) *shop.Customer {
	t.Helper()
	customer, err := shop.NewCustomer(name, "Europe/Amsterdam", owner)
	require.NoError(t, err)
	return customer
}

func TestCustomerServiceCreate(t *testing.T) {
	ctx := context.Background()
	access := tenantAccess()

	t.Run("creates customer owned by the calling token", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("ExistsByNameWithAccess", ctx, access, "Alice").Return(false, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(c *shop.Customer) bool {
			return c.OwnerToken == "tenant-one"
		})).Return(nil)

		response, err := service.Create(ctx, access, CreateCustomerRequest{
			Name:     "Alice",
			Timezone: "Europe/Amsterdam",
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice", response.Name)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name in scope", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("ExistsByNameWithAccess", ctx, access, "Alice").Return(true, nil)

		response, err := service.Create(ctx, access, CreateCustomerRequest{
			Name:     "Alice",
			Timezone: "Europe/Amsterdam",
		})

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCustomerServicePatch(t *testing.T) {
	ctx := context.Background()
	access := tenantAccess()

	t.Run("rejects empty patch before touching the store", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		response, err := service.Patch(ctx, access, uuid.New(), PatchCustomerRequest{})

		assert.Nil(t, response)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REQUEST", domainErr.Code)
		repo.AssertNotCalled(t, "FindByIDWithAccess", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("applies only present fields", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer := mustCustomer(t, "Alice", "tenant-one")

		repo.On("FindByIDWithAccess", ctx, access, customer.ID).Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		response, err := service.Patch(ctx, access, customer.ID, PatchCustomerRequest{
			Name: strPtr("Alice Jones"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Alice Jones", response.Name)
		assert.Equal(t, "Europe/Amsterdam", response.Timezone)
	})
}

func TestCustomerServiceBatchUpdate(t *testing.T) {
	ctx := context.Background()
	access := tenantAccess()

	t.Run("partial success keeps batch arithmetic intact", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		visible1 := mustCustomer(t, "Alice", "tenant-one")
		visible2 := mustCustomer(t, "Bob", "tenant-one")
		missingID := uuid.New()

		elements := []BatchElement[PatchCustomerRequest]{
			{ID: visible1.ID, Patch: PatchCustomerRequest{Name: strPtr("Alice II")}},
			{ID: missingID, Patch: PatchCustomerRequest{Name: strPtr("Ghost")}},
			{ID: visible2.ID, Patch: PatchCustomerRequest{}},
		}

		repo.On("FindByIDsWithAccess", ctx, access, mock.Anything).
			Return([]shop.Customer{*visible1, *visible2}, nil)
		repo.On("SaveAll", ctx, mock.MatchedBy(func(cs []*shop.Customer) bool {
			return len(cs) == 1 && cs[0].Name == "Alice II"
		})).Return(nil)

		result, err := service.BatchUpdate(ctx, access, elements)

		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 2, result.FailureCount)
		assert.Len(t, result.Successes, 1)
		require.Len(t, result.Failures, 2)
		assert.Equal(t, missingID, result.Failures[0].ID)
		assert.Equal(t, "Customer not found or access denied", result.Failures[0].Error)
		assert.Equal(t, visible2.ID, result.Failures[1].ID)
		assert.Contains(t, result.Failures[1].Error, "At least one field")
	})

	t.Run("duplicate ids collapse into one saved row with the last patch", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer := mustCustomer(t, "Alice", "tenant-one")

		elements := []BatchElement[PatchCustomerRequest]{
			{ID: customer.ID, Patch: PatchCustomerRequest{Name: strPtr("Alice II")}},
			{ID: customer.ID, Patch: PatchCustomerRequest{Name: strPtr("Alice III")}},
		}

		repo.On("FindByIDsWithAccess", ctx, access, mock.Anything).
			Return([]shop.Customer{*customer}, nil)
		// One bulk save may carry each primary key only once, or the
		// multi-row upsert rejects the statement.
		repo.On("SaveAll", ctx, mock.MatchedBy(func(cs []*shop.Customer) bool {
			return len(cs) == 1 && cs[0].Name == "Alice III"
		})).Return(nil)

		result, err := service.BatchUpdate(ctx, access, elements)

		require.NoError(t, err)
		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 0, result.FailureCount)
		require.Len(t, result.Successes, 1)
		assert.Equal(t, "Alice III", result.Successes[0].Name)
		repo.AssertExpectations(t)
	})

	t.Run("bulk save failure aborts the whole batch", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer := mustCustomer(t, "Alice", "tenant-one")

		repo.On("FindByIDsWithAccess", ctx, access, mock.Anything).
			Return([]shop.Customer{*customer}, nil)
		repo.On("SaveAll", ctx, mock.Anything).Return(errors.New("connection lost"))

		result, err := service.BatchUpdate(ctx, access, []BatchElement[PatchCustomerRequest]{
			{ID: customer.ID, Patch: PatchCustomerRequest{Name: strPtr("Alice II")}},
		})

		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("zero counts are omitted from the wire body", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		repo.On("FindByIDsWithAccess", ctx, access, mock.Anything).
			Return([]shop.Customer{}, nil)

		result, err := service.BatchUpdate(ctx, access, []BatchElement[PatchCustomerRequest]{
			{ID: uuid.New(), Patch: PatchCustomerRequest{Name: strPtr("Ghost")}},
		})

		require.NoError(t, err)
		body, err := json.Marshal(result)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "success_count")
		assert.Contains(t, string(body), "failure_count")
	})
}

func TestCustomerServiceStream(t *testing.T) {
	ctx := context.Background()
	access := tenantAccess()

	t.Run("writes one JSON object per line and closes the cursor", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		customers := []shop.Customer{
			*mustCustomer(t, "Alice", "tenant-one"),
			*mustCustomer(t, "Bob", "tenant-one"),
			*mustCustomer(t, "Carol", "tenant-one"),
		}
		cursor := newSliceCursor(customers)
		repo.On("StreamAllWithAccess", ctx, access).Return(cursor, nil)

		var buf bytes.Buffer
		err := service.Stream(ctx, access, &buf)

		require.NoError(t, err)
		assert.True(t, cursor.closed)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		for i, line := range lines {
			var record CustomerResponse
			require.NoError(t, json.Unmarshal([]byte(line), &record))
			assert.Equal(t, customers[i].Name, record.Name)
		}
	})

	t.Run("closes the cursor when the writer fails", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)

		cursor := newSliceCursor([]shop.Customer{*mustCustomer(t, "Alice", "tenant-one")})
		repo.On("StreamAllWithAccess", ctx, access).Return(cursor, nil)

		err := service.Stream(ctx, access, failingWriter{})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "STREAMING_ERROR", domainErr.Code)
		assert.True(t, cursor.closed)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("client went away")
}

func TestCustomerServiceDelete(t *testing.T) {
	ctx := context.Background()
	access := tenantAccess()

	t.Run("deletes visible customer", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		customer := mustCustomer(t, "Alice", "tenant-one")

		repo.On("FindByIDWithAccess", ctx, access, customer.ID).Return(customer, nil)
		repo.On("Delete", ctx, customer.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, access, customer.ID))
		repo.AssertExpectations(t)
	})

	t.Run("invisible customer reads as not found", func(t *testing.T) {
		repo := new(MockCustomerRepository)
		service := NewCustomerService(repo)
		id := uuid.New()

		repo.On("FindByIDWithAccess", ctx, access, id).
			Return(nil, shared.NewDomainError("NOT_FOUND", "Customer not found"))

		err := service.Delete(ctx, access, id)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
