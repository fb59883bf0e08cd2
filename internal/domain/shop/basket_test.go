package shop

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petshop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoppingBasket(t *testing.T) {
	t.Run("creates basket in status NEW", func(t *testing.T) {
		customerID := uuid.New()
		basket, err := NewShoppingBasket(customerID)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, basket.ID)
		assert.Equal(t, customerID, basket.CustomerID)
		assert.Equal(t, BasketStatusNew, basket.Status)
		assert.Equal(t, basket.CreatedAt, basket.StatusDate)
	})

	t.Run("fails with empty customer ID", func(t *testing.T) {
		basket, err := NewShoppingBasket(uuid.Nil)

		assert.Error(t, err)
		assert.Nil(t, basket)
	})
}

func TestShoppingBasketTransitionTo(t *testing.T) {
	allStatuses := []BasketStatus{
		BasketStatusNew, BasketStatusPaid, BasketStatusProcessed, BasketStatusUnknown,
	}
	allowed := map[BasketStatus]BasketStatus{
		BasketStatusNew:       BasketStatusPaid,
		BasketStatusPaid:      BasketStatusProcessed,
		BasketStatusProcessed: BasketStatusUnknown,
	}

	t.Run("full transition matrix", func(t *testing.T) {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				basket, err := NewShoppingBasket(uuid.New())
				require.NoError(t, err)
				basket.Status = from

				err = basket.TransitionTo(to)
				if allowed[from] == to {
					require.NoError(t, err, "%s -> %s should be allowed", from, to)
					assert.Equal(t, to, basket.Status)
				} else {
					require.Error(t, err, "%s -> %s should be rejected", from, to)
					var domainErr *shared.DomainError
					require.ErrorAs(t, err, &domainErr)
					assert.Equal(t, "ILLEGAL_STATE_TRANSITION", domainErr.Code)
					assert.Equal(t, from, basket.Status, "status must not change on rejection")
				}
			}
		}
	})

	t.Run("updates status date on transition", func(t *testing.T) {
		basket, err := NewShoppingBasket(uuid.New())
		require.NoError(t, err)
		created := basket.StatusDate

		time.Sleep(time.Millisecond)
		require.NoError(t, basket.TransitionTo(BasketStatusPaid))

		assert.True(t, basket.StatusDate.After(created))
	})

	t.Run("rejects unknown status value", func(t *testing.T) {
		basket, err := NewShoppingBasket(uuid.New())
		require.NoError(t, err)

		err = basket.TransitionTo(BasketStatus("SHIPPED"))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_REQUEST", domainErr.Code)
	})

	t.Run("walks the full lifecycle", func(t *testing.T) {
		basket, err := NewShoppingBasket(uuid.New())
		require.NoError(t, err)

		require.NoError(t, basket.TransitionTo(BasketStatusPaid))
		require.NoError(t, basket.TransitionTo(BasketStatusProcessed))
		require.NoError(t, basket.TransitionTo(BasketStatusUnknown))

		assert.True(t, basket.IsTerminal())
		assert.Error(t, basket.TransitionTo(BasketStatusNew))
	})
}

func TestParseBasketStatus(t *testing.T) {
	t.Run("accepts all defined statuses", func(t *testing.T) {
		for _, s := range []string{"NEW", "PAID", "PROCESSED", "UNKNOWN"} {
			status, err := ParseBasketStatus(s)
			require.NoError(t, err)
			assert.Equal(t, BasketStatus(s), status)
		}
	})

	t.Run("rejects lowercase and unknown values", func(t *testing.T) {
		for _, s := range []string{"new", "paid", "CANCELLED", ""} {
			_, err := ParseBasketStatus(s)
			assert.Error(t, err, "%q must be rejected", s)
		}
	})
}
