package kernel

import (
	"errors"
	"fmt"
	"strings"

	"waiter/internal/pkg/errs"
)

// ErrCurrencyIsNotConstructed is returned when validating a zero-value Currency.
var ErrCurrencyIsNotConstructed = errors.New("Currency must be created via CurrencyOf")

// Currency is an ISO 4217 currency together with the number of digits of its minor unit.
type Currency struct {
	code   string
	digits int32
}

var (
	TWD = Currency{code: "TWD", digits: 2}
	USD = Currency{code: "USD", digits: 2}
	EUR = Currency{code: "EUR", digits: 2}
	JPY = Currency{code: "JPY", digits: 0}
)

// SystemCurrency is the single currency prices are kept in.
var SystemCurrency = TWD

func knownCurrencies() map[string]Currency {
	return map[string]Currency{
		TWD.code: TWD,
		USD.code: USD,
		EUR.code: EUR,
		JPY.code: JPY,
	}
}

// CurrencyOf looks up a currency by its (case-insensitive) ISO code.
func CurrencyOf(code string) (Currency, error) {
	if strings.TrimSpace(code) == "" {
		return Currency{}, errs.NewValueIsRequiredError("currency")
	}
	c, ok := knownCurrencies()[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, errs.NewValueIsInvalidErrorWithCause(
			"currency", fmt.Errorf("%s is not a supported currency", code))
	}
	return c, nil
}

// Code returns the ISO 4217 code, e.g. "TWD".
func (c Currency) Code() string {
	return c.code
}

// Digits returns the number of decimal places of the minor unit.
func (c Currency) Digits() int32 {
	return c.digits
}

func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

func (c Currency) Validate() error {
	if c.code == "" {
		return ErrCurrencyIsNotConstructed
	}
	return nil
}

func (c Currency) String() string {
	return c.code
}
