package order_test

import (
	"fmt"
	"testing"

	"resto/internal/core/domain/model/order"
	"resto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodFromString(t *testing.T) {
	t.Run("should parse the three known methods", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.PaymentMethod
		}{
			{"card", order.PaymentCard},
			{"mobile_money", order.PaymentMobileMoney},
			{"cash", order.PaymentCash},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				method, err := order.PaymentMethodFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, method)
			})
		}
	})

	t.Run("should reject unknown methods", func(t *testing.T) {
		for _, input := range []string{"", "paypal", "CARD", "momo"} {
			t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
				_, err := order.PaymentMethodFromString(input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestMobileMoneyProviderFromString(t *testing.T) {
	t.Run("should accept providers case-insensitively and normalize casing", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.MobileMoneyProvider
		}{
			{"mtn", order.ProviderMTN},
			{"MTN", order.ProviderMTN},
			{"Mtn", order.ProviderMTN},
			{"moov", order.ProviderMoov},
			{"Moov", order.ProviderMoov},
			{"MOOV", order.ProviderMoov},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				provider, err := order.MobileMoneyProviderFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, provider)
			})
		}
	})

	t.Run("should reject any other provider", func(t *testing.T) {
		for _, input := range []string{"", "orange", "wave", "mtn "} {
			t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
				_, err := order.MobileMoneyProviderFromString(input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestMobileMoneyNumberFromString(t *testing.T) {
	t.Run("should accept 8 to 10 digits with optional +229 prefix", func(t *testing.T) {
		valid := []string{
			"97000000",
			"22997000000", // bare country code
			"+22997000000",
			"1234567890",
		}

		for _, input := range valid {
			t.Run(input, func(t *testing.T) {
				number, err := order.MobileMoneyNumberFromString(input)

				require.NoError(t, err)
				assert.Equal(t, input, number.String())
			})
		}
	})

	t.Run("should reject values outside the pattern", func(t *testing.T) {
		invalid := []string{
			"123",
			"abc",
			"9700 0000",
			"+33097000000",
			"97000000000",  // 11 digits
			"+229",         // prefix only
			"97-00-00-00",
		}

		for _, input := range invalid {
			t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
				_, err := order.MobileMoneyNumberFromString(input)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}
