package coffee

import (
	"errors"
	"math"
	"strings"
	"time"

	"waiter/internal/core/domain/model/kernel"
	"waiter/internal/pkg/errs"
)

// ErrCoffeeIsNotConstructed is returned when a Coffee skipped NewCoffee and RestoreCoffee.
var ErrCoffeeIsNotConstructed = errors.New("Coffee must be created via NewCoffee constructor")

// Coffee is a product on the menu.
//
// Example:
//
//	price, _ := kernel.ParseMoney("1.20", kernel.TWD)
//	latte, err := coffee.NewCoffee(kernel.NewUUID(), "Latte", price, time.Now())
type Coffee struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCoffee creates a menu entry. createdAt and updatedAt are both set to now.
func NewCoffee(id kernel.UUID, name string, price kernel.Money, now time.Time) (*Coffee, error) {
	return RestoreCoffee(id, name, price, now, now)
}

// RestoreCoffee rebuilds a persisted coffee, applying the same validation as NewCoffee.
func RestoreCoffee(
	id kernel.UUID,
	name string,
	price kernel.Money,
	createdAt, updatedAt time.Time,
) (*Coffee, error) {
	c := &Coffee{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPrice(price),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Coffee) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCoffeeIsNotConstructed
	}
	return nil
}

// IsEqual compares coffees by identity.
func (c *Coffee) IsEqual(other *Coffee) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Coffee) ID() kernel.UUID {
	return c.id
}

func (c *Coffee) Name() string {
	return c.name
}

func (c *Coffee) Price() kernel.Money {
	return c.price
}

func (c *Coffee) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Coffee) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Coffee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Coffee) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Coffee) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price.AmountMinor(), 0, int64(math.MaxInt64))
	}
	c.price = price
	return nil
}
