package kernel

import (
	"fmt"

	"waiter/internal/pkg/errs"
	"waiter/internal/pkg/guard"
)

// MoneyCodec maps Money to and from a nullable integer column holding minor units.
// The column carries no currency: every stored amount is in the codec's currency,
// so Encode rejects any other currency and Decode always restores that currency.
//
// The two directions are exact inverses for non-nil values:
//
//	Decode(Encode(m)) == m
//	Encode(Decode(n)) == n
//
// nil maps to nil in both directions ("no price").
type MoneyCodec struct {
	currency Currency
}

// NewMoneyCodec creates a codec for the given currency.
func NewMoneyCodec(currency Currency) (MoneyCodec, error) {
	if err := currency.Validate(); err != nil {
		return MoneyCodec{}, errs.NewValueIsRequiredErrorWithCause("currency", err)
	}
	return MoneyCodec{currency: currency}, nil
}

// Currency returns the currency every decoded amount is expressed in.
func (c MoneyCodec) Currency() Currency {
	return c.currency
}

// Encode returns the minor-unit amount to store.
func (c MoneyCodec) Encode(m *Money) (*int64, error) {
	if m == nil {
		return nil, nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if !m.Currency().IsEqual(c.currency) {
		return nil, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%s cannot be stored as %s", m.Currency(), c.currency))
	}
	amount := m.AmountMinor()
	return &amount, nil
}

// Decode rebuilds Money in the codec currency from a stored minor-unit amount.
func (c MoneyCodec) Decode(amountMinor *int64) *Money {
	if amountMinor == nil {
		return nil
	}
	return &Money{
		currency:    c.currency,
		amountMinor: *amountMinor,
		guard:       guard.NewConstructorGuard(),
	}
}
