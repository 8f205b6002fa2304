package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/authcorp/strongtypes/strong"
)

// Priority bounds; 1 is the most urgent.
const (
	HighestPriority int32 = 1
	LowestPriority  int32 = 5
)

type priority struct{}

func (priority) BrandName() string { return "priority" }

func (priority) Validate(v int32) error {
	if v < HighestPriority || v > LowestPriority {
		return fmt.Errorf("must be between %d and %d", HighestPriority, LowestPriority)
	}
	return nil
}

// Priority orders work from 1 (highest) to 5 (lowest).
type Priority = strong.Int32[priority]

// NewPriority validates v.
func NewPriority(v int32) (Priority, error) {
	return strong.Create[Priority](v)
}

// MustPriority is NewPriority that panics on invalid input.
func MustPriority(v int32) Priority {
	return must(NewPriority(v))
}

type quantity struct{}

func (quantity) BrandName() string { return "quantity" }

func (quantity) Validate(v int32) error {
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

// Quantity is a non-negative count of items.
type Quantity = strong.Int32[quantity]

// NewQuantity validates v.
func NewQuantity(v int32) (Quantity, error) {
	return strong.Create[Quantity](v)
}

// MustQuantity is NewQuantity that panics on invalid input.
func MustQuantity(v int32) Quantity {
	return must(NewQuantity(v))
}

// maxAmountScale is the number of fractional digits an Amount may carry.
const maxAmountScale = 4

type amount struct{}

func (amount) BrandName() string { return "amount" }

func (amount) Validate(v decimal.Decimal) error {
	if !v.Equal(v.Truncate(maxAmountScale)) {
		return fmt.Errorf("has more than %d fractional digits", maxAmountScale)
	}
	return nil
}

// Amount is a monetary amount without currency. Equality is numeric, so
// 1.5 equals 1.50.
type Amount = strong.Decimal[amount]

// NewAmount validates v.
func NewAmount(v decimal.Decimal) (Amount, error) {
	return strong.Create[Amount](v)
}

// MustAmount is NewAmount that panics on invalid input.
func MustAmount(v decimal.Decimal) Amount {
	return must(NewAmount(v))
}

// ParseAmount parses s, accepting c's separators.
func ParseAmount(s string, c strong.Culture) (Amount, error) {
	a, err := strong.ParseDecimalIn[amount](s, c)
	if err != nil {
		return Amount{}, err
	}
	if err := a.Validate(); err != nil {
		return Amount{}, err
	}
	return a, nil
}

// RoundAmount rounds a half away from zero to the minor unit of currency c.
func RoundAmount(a Amount, c CurrencyCode) Amount {
	return strong.NewDecimal[amount](a.Value().Round(CurrencyDecimals(c)))
}

// AddAmounts returns the sum of amounts; the empty sum is zero.
func AddAmounts(amounts ...Amount) Amount {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a.Value())
	}
	return strong.NewDecimal[amount](sum)
}
