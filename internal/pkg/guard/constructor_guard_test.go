package guard_test

import (
	"errors"
	"testing"

	"orders/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Sku struct {
		value string
		guard guard.ConstructorGuard
	}

	var errSkuNotConstructed = errors.New("Sku must be created via NewSku")

	newSku := func(value string) (Sku, error) {
		if value == "" {
			return Sku{}, errors.New("sku is required")
		}
		return Sku{
			value: value,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateSku := func(s Sku) error {
		return s.guard.Validate(errSkuNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		sku, err := newSku("LAPTOP-001")

		require.NoError(t, err)
		require.NoError(t, validateSku(sku))
		assert.Equal(t, "LAPTOP-001", sku.value)
	})

	t.Run("zero_value_construction_fails_validation", func(t *testing.T) {
		var sku Sku // zero value

		err := validateSku(sku)

		require.Error(t, err)
		assert.Equal(t, errSkuNotConstructed, err)
	})
}
