package strong

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Decimal wraps an arbitrary-precision decimal under brand B. Equality is
// numeric, so 1.0 and 1.00 are equal and hash alike.
type Decimal[B any] struct {
	value decimal.Decimal
}

var _ Strong[decimal.Decimal, Decimal[struct{}]] = Decimal[struct{}]{}

// NewDecimal wraps d without validating it.
func NewDecimal[B any](d decimal.Decimal) Decimal[B] {
	return Decimal[B]{value: d}
}

// ParseDecimal parses s with decimal.NewFromString: optional sign, '.'
// as decimal point, optional exponent.
func ParseDecimal[B any](s string) (Decimal[B], error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal[B]{}, parseError[B](s, err)
	}
	return Decimal[B]{value: d}, nil
}

// ParseDecimalIn parses s as written in culture c, e.g. "1.234,5" in German.
func ParseDecimalIn[B any](s string, c Culture) (Decimal[B], error) {
	n, err := c.normalize(s)
	if err != nil {
		return Decimal[B]{}, parseError[B](s, err)
	}
	d, err := decimal.NewFromString(n)
	if err != nil {
		return Decimal[B]{}, parseError[B](s, err)
	}
	return Decimal[B]{value: d}, nil
}

// TryParseDecimal is ParseDecimal reporting failure as false.
func TryParseDecimal[B any](s string) (Decimal[B], bool) {
	d, err := ParseDecimal[B](s)
	return d, err == nil
}

// New wraps v without validating it. The receiver is ignored.
func (Decimal[B]) New(v decimal.Decimal) Decimal[B] {
	return Decimal[B]{value: v}
}

// Parse calls ParseDecimal. The receiver is ignored.
func (Decimal[B]) Parse(s string) (Decimal[B], error) {
	return ParseDecimal[B](s)
}

// Value returns the wrapped decimal.
func (d Decimal[B]) Value() decimal.Decimal {
	return d.value
}

// Underlying returns the wrapped decimal as any.
func (d Decimal[B]) Underlying() any {
	return d.value
}

// String returns the shortest exact representation, without trailing zeros.
func (d Decimal[B]) String() string {
	return d.value.String()
}

// Equal reports numeric equality, so 1.0 equals 1.00.
func (d Decimal[B]) Equal(other Decimal[B]) bool {
	return d.value.Equal(other.value)
}

// EqualAny is Equal for a Decimal[B] or non-nil *Decimal[B]; any other type is unequal.
func (d Decimal[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case Decimal[B]:
		return d.Equal(o)
	case *Decimal[B]:
		return o != nil && d.Equal(*o)
	}
	return false
}

// Compare returns -1, 0 or +1 in the order used by Equal.
func (d Decimal[B]) Compare(other Decimal[B]) int {
	return d.value.Cmp(other.value)
}

// Less reports whether the receiver sorts before other.
func (d Decimal[B]) Less(other Decimal[B]) bool { return d.value.LessThan(other.value) }

// LessOrEqual reports whether the receiver sorts before or equal to other.
func (d Decimal[B]) LessOrEqual(other Decimal[B]) bool { return d.value.LessThanOrEqual(other.value) }

// Greater reports whether the receiver sorts after other.
func (d Decimal[B]) Greater(other Decimal[B]) bool { return d.value.GreaterThan(other.value) }

// GreaterOrEqual reports whether the receiver sorts after or equal to other.
func (d Decimal[B]) GreaterOrEqual(other Decimal[B]) bool {
	return d.value.GreaterThanOrEqual(other.value)
}

// IsZero reports whether the wrapped decimal is the zero value.
func (d Decimal[B]) IsZero() bool {
	return d.value.IsZero()
}

// Sign returns -1, 0 or +1.
func (d Decimal[B]) Sign() int {
	return d.value.Sign()
}

// Hash hashes the trailing-zero-free form so numerically equal values collide.
func (d Decimal[B]) Hash() uint64 {
	return hashString(d.value.String())
}

// Validate runs the brand's Validator, if it has one.
func (d Decimal[B]) Validate() error {
	return validate[B](d.value, d.String)
}

// IsValidFormat reports whether Validate returns nil.
func (d Decimal[B]) IsValidFormat() bool {
	return d.Validate() == nil
}

// MarshalJSON encodes the value as a quoted string, preserving precision.
func (d Decimal[B]) MarshalJSON() ([]byte, error) {
	return d.value.MarshalJSON()
}

// UnmarshalJSON accepts a quoted string or a bare JSON number.
func (d *Decimal[B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v decimal.Decimal
	if err := v.UnmarshalJSON(data); err != nil {
		return parseError[B](string(data), err)
	}
	return d.set(v)
}

// MarshalText returns String.
func (d Decimal[B]) MarshalText() ([]byte, error) {
	return []byte(d.value.String()), nil
}

// UnmarshalText parses data and validates the result.
func (d *Decimal[B]) UnmarshalText(data []byte) error {
	parsed, err := ParseDecimal[B](string(data))
	if err != nil {
		return err
	}
	return d.set(parsed.value)
}

// Scan implements sql.Scanner.
func (d *Decimal[B]) Scan(src any) error {
	if src == nil {
		return fmt.Errorf("strong: cannot scan NULL into %s", BrandName[B]())
	}
	var v decimal.Decimal
	if err := v.Scan(src); err != nil {
		return fmt.Errorf("strong: scan %s: %w", BrandName[B](), err)
	}
	d.value = v
	return nil
}

func (d *Decimal[B]) set(v decimal.Decimal) error {
	next := Decimal[B]{value: v}
	if err := next.Validate(); err != nil {
		return err
	}
	*d = next
	return nil
}
