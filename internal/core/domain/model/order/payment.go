package order

import (
	"fmt"
	"regexp"
	"strings"

	"resto/internal/pkg/errs"
)

// PaymentMethod identifies how a customer pays for an order.
type PaymentMethod string

const (
	// PaymentCard is an online card payment.
	PaymentCard PaymentMethod = "card"

	// PaymentMobileMoney is a mobile-money wallet payment (MTN or Moov).
	PaymentMobileMoney PaymentMethod = "mobile_money"

	// PaymentCash is paid on handoff.
	PaymentCash PaymentMethod = "cash"
)

// PaymentMethodFromString parses a wire-format payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks if the value is one of the three known payment methods.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCard, PaymentMobileMoney, PaymentCash:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"payment_method", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

// String returns the wire-format name of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// MobileMoneyProvider is the wallet operator for mobile-money payments.
// Stored in canonical casing; parsing is case-insensitive.
type MobileMoneyProvider string

const (
	// ProviderMTN is the MTN Mobile Money wallet.
	ProviderMTN MobileMoneyProvider = "MTN"

	// ProviderMoov is the Moov Money wallet.
	ProviderMoov MobileMoneyProvider = "Moov"
)

// MobileMoneyProviderFromString parses a provider name case-insensitively
// ("mtn", "MTN", "moov", "Moov" all accepted) and normalizes it to the
// canonical casing. Any other string is rejected.
func MobileMoneyProviderFromString(s string) (MobileMoneyProvider, error) {
	switch strings.ToLower(s) {
	case "mtn":
		return ProviderMTN, nil
	case "moov":
		return ProviderMoov, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"mobile_money_provider",
			fmt.Errorf("%q is not a valid mobile money provider", s))
	}
}

// Validate checks if the provider is one of the canonical values.
func (p MobileMoneyProvider) Validate() error {
	switch p {
	case ProviderMTN, ProviderMoov:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"mobile_money_provider",
			fmt.Errorf("%q is not a valid mobile money provider", string(p)))
	}
}

// String returns the canonical provider name.
func (p MobileMoneyProvider) String() string {
	return string(p)
}

// mobileMoneyNumberPattern matches 8 to 10 digits with an optional country-code
// prefix, written as "+229" or bare "229".
var mobileMoneyNumberPattern = regexp.MustCompile(`^(\+?229)?[0-9]{8,10}$`)

// MobileMoneyNumber is a validated mobile-money wallet number.
type MobileMoneyNumber string

// MobileMoneyNumberFromString validates a wallet number: 8 to 10 digits,
// optionally preceded by the Benin country code ("+229" or "229").
// "97000000", "22997000000" and "+22997000000" pass; "123" and "abc" do not.
func MobileMoneyNumberFromString(s string) (MobileMoneyNumber, error) {
	if !mobileMoneyNumberPattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"mobile_money_number",
			fmt.Errorf("%q does not match the expected phone number format", s))
	}
	return MobileMoneyNumber(s), nil
}

// String returns the wallet number as entered (prefix preserved).
func (n MobileMoneyNumber) String() string {
	return string(n)
}
