package kernel_test

import (
	"testing"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyOf(t *testing.T) {
	t.Run("should resolve TWD with two minor digits", func(t *testing.T) {
		c, err := kernel.CurrencyOf("TWD")

		require.NoError(t, err)
		assert.Equal(t, "TWD", c.Code())
		assert.Equal(t, int32(2), c.Digits())
		assert.True(t, c.IsEqual(kernel.TWD))
	})

	t.Run("should ignore case and surrounding spaces", func(t *testing.T) {
		c, err := kernel.CurrencyOf("  jpy ")

		require.NoError(t, err)
		assert.Equal(t, kernel.JPY, c)
		assert.Equal(t, int32(0), c.Digits())
	})

	t.Run("should reject empty code", func(t *testing.T) {
		_, err := kernel.CurrencyOf("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown code", func(t *testing.T) {
		_, err := kernel.CurrencyOf("XYZ")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "XYZ is not a supported currency")
	})
}

func TestCurrency_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var c kernel.Currency

		assert.Equal(t, kernel.ErrCurrencyIsNotConstructed, c.Validate())
	})

	t.Run("should use TWD as system currency", func(t *testing.T) {
		assert.NoError(t, kernel.SystemCurrency.Validate())
		assert.Equal(t, "TWD", kernel.SystemCurrency.String())
	})
}
