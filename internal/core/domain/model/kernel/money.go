package kernel

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNotConstructed is returned when validating a Money that skipped NewMoney.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or ParseMoney")
	// ErrMoneyOverflow is returned when an operation does not fit into int64 minor units.
	ErrMoneyOverflow = errors.New("money amount overflows int64 minor units")
)

// Money is an exact amount of minor currency units.
//
// Money follows these invariants:
//   - amountMinor is the exact count of minor units (1.20 TWD is 120)
//   - no floating point value is ever produced or consumed
//   - equality and ordering are defined over (currency code, amountMinor)
//
// Example:
//
//	price, err := kernel.NewMoney(kernel.TWD, 120)
//	fmt.Println(price) // TWD 1.20
type Money struct {
	currency    Currency
	amountMinor int64

	guard guard.ConstructorGuard
}

// NewMoney creates Money from a count of minor units.
func NewMoney(currency Currency, amountMinor int64) (Money, error) {
	if err := currency.Validate(); err != nil {
		return Money{}, errs.NewValueIsRequiredErrorWithCause("currency", err)
	}
	return Money{
		currency:    currency,
		amountMinor: amountMinor,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ParseMoney parses a decimal string such as "1.20" into minor units of currency.
// Amounts with more fractional digits than the currency allows are rejected, never rounded.
func ParseMoney(amount string, currency Currency) (Money, error) {
	if err := currency.Validate(); err != nil {
		return Money{}, errs.NewValueIsRequiredErrorWithCause("currency", err)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	minor := d.Shift(currency.Digits())
	if !minor.IsInteger() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than %d decimal places", amount, currency.Digits()))
	}
	if !minor.BigInt().IsInt64() {
		return Money{}, ErrMoneyOverflow
	}
	return NewMoney(currency, minor.IntPart())
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Currency() Currency {
	return m.currency
}

// AmountMinor returns the amount as a count of minor units.
func (m Money) AmountMinor() int64 {
	return m.amountMinor
}

// Decimal returns the amount in major units, exact to the currency's digits.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.amountMinor, -m.currency.Digits())
}

// IsEqual compares currency code and minor amount.
func (m Money) IsEqual(other Money) bool {
	return m.currency.IsEqual(other.currency) && m.amountMinor == other.amountMinor
}

// Compare orders by currency code first, then by minor amount.
func (m Money) Compare(other Money) int {
	if c := cmp.Compare(m.currency.code, other.currency.code); c != 0 {
		return c
	}
	return cmp.Compare(m.amountMinor, other.amountMinor)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amountMinor < 0
}

// Add sums two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	sum := m.amountMinor + other.amountMinor
	if (other.amountMinor > 0 && sum < m.amountMinor) || (other.amountMinor < 0 && sum > m.amountMinor) {
		return Money{}, ErrMoneyOverflow
	}
	return NewMoney(m.currency, sum)
}

// Multiply scales the amount by an integer quantity.
func (m Money) Multiply(quantity int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	product := m.amountMinor * quantity
	if m.amountMinor != 0 &&
		(product/m.amountMinor != quantity || (m.amountMinor == -1 && quantity == math.MinInt64)) {
		return Money{}, ErrMoneyOverflow
	}
	return NewMoney(m.currency, product)
}

// String renders the amount as "TWD 1.20".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.currency.code, m.Decimal().StringFixed(m.currency.Digits()))
}

func (m Money) sameCurrency(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if !m.currency.IsEqual(other.currency) {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%s does not match %s", other.currency, m.currency))
	}
	return nil
}
