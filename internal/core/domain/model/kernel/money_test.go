package kernel_test

import (
	"testing"

	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amount", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.NewFromInt(1500))

		require.NoError(t, err)
		assert.Equal(t, "1500", money.String())
	})

	t.Run("should allow zero", func(t *testing.T) {
		money, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, money.IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal strings", func(t *testing.T) {
		money, err := kernel.NewMoneyFromString("2500.50")

		require.NoError(t, err)
		assert.Equal(t, "2500.5", money.String())
	})

	t.Run("should reject malformed strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("abc")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative strings", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-10")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add should sum amounts", func(t *testing.T) {
		subtotal, _ := kernel.NewMoneyFromString("3000")
		fee, _ := kernel.NewMoneyFromString("500")

		total := subtotal.Add(fee)

		assert.Equal(t, "3500", total.String())
	})

	t.Run("Sub should subtract amounts", func(t *testing.T) {
		total, _ := kernel.NewMoneyFromString("3500")
		discount, _ := kernel.NewMoneyFromString("500")

		result, err := total.Sub(discount)

		require.NoError(t, err)
		assert.Equal(t, "3000", result.String())
	})

	t.Run("Sub should reject a negative result", func(t *testing.T) {
		total, _ := kernel.NewMoneyFromString("100")
		discount, _ := kernel.NewMoneyFromString("500")

		_, err := total.Sub(discount)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare numerically, not textually", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("10.0")
		b, _ := kernel.NewMoneyFromString("10")

		assert.True(t, a.IsEqual(b))
	})
}
