package strong

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"
)

// Int64 wraps an int64 under brand B.
type Int64[B any] struct {
	value int64
}

var _ Strong[int64, Int64[struct{}]] = Int64[struct{}]{}

// NewInt64 wraps v without validating it.
func NewInt64[B any](v int64) Int64[B] {
	return Int64[B]{value: v}
}

// ParseInt64 parses a base-10 int64 with strconv's rules.
func ParseInt64[B any](s string) (Int64[B], error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Int64[B]{}, parseError[B](s, err)
	}
	return Int64[B]{value: v}, nil
}

// ParseInt64In parses s as written in culture c.
func ParseInt64In[B any](s string, c Culture) (Int64[B], error) {
	n, err := c.normalize(s)
	if err != nil {
		return Int64[B]{}, parseError[B](s, err)
	}
	v, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return Int64[B]{}, parseError[B](s, err)
	}
	return Int64[B]{value: v}, nil
}

// TryParseInt64 is ParseInt64 reporting failure as false.
func TryParseInt64[B any](s string) (Int64[B], bool) {
	v, err := ParseInt64[B](s)
	return v, err == nil
}

// New wraps v without validating it. The receiver is ignored.
func (Int64[B]) New(v int64) Int64[B] {
	return Int64[B]{value: v}
}

// Parse calls ParseInt64. The receiver is ignored.
func (Int64[B]) Parse(s string) (Int64[B], error) {
	return ParseInt64[B](s)
}

// Value returns the wrapped int64.
func (i Int64[B]) Value() int64 {
	return i.value
}

// Underlying returns the wrapped int64 as any.
func (i Int64[B]) Underlying() any {
	return i.value
}

// String returns the base-10 form.
func (i Int64[B]) String() string {
	return strconv.FormatInt(i.value, 10)
}

// Equal reports whether both wrap the same int64.
func (i Int64[B]) Equal(other Int64[B]) bool {
	return i.value == other.value
}

// EqualAny is Equal for a Int64[B] or non-nil *Int64[B]; any other type is unequal.
func (i Int64[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case Int64[B]:
		return i.Equal(o)
	case *Int64[B]:
		return o != nil && i.Equal(*o)
	}
	return false
}

// Compare returns -1, 0 or +1 in the order used by Equal.
func (i Int64[B]) Compare(other Int64[B]) int {
	return cmp.Compare(i.value, other.value)
}

// Less reports whether the receiver sorts before other.
func (i Int64[B]) Less(other Int64[B]) bool { return i.value < other.value }

// LessOrEqual reports whether the receiver sorts before or equal to other.
func (i Int64[B]) LessOrEqual(other Int64[B]) bool { return i.value <= other.value }

// Greater reports whether the receiver sorts after other.
func (i Int64[B]) Greater(other Int64[B]) bool { return i.value > other.value }

// GreaterOrEqual reports whether the receiver sorts after or equal to other.
func (i Int64[B]) GreaterOrEqual(other Int64[B]) bool { return i.value >= other.value }

// IsZero reports whether the wrapped int64 is the zero value.
func (i Int64[B]) IsZero() bool {
	return i.value == 0
}

// Sign returns -1, 0 or +1.
func (i Int64[B]) Sign() int {
	return cmp.Compare(i.value, 0)
}

// Hash is consistent with Equal.
func (i Int64[B]) Hash() uint64 {
	return hashComparable(i.value)
}

// Validate runs the brand's Validator, if it has one.
func (i Int64[B]) Validate() error {
	return validate[B](i.value, i.String)
}

// IsValidFormat reports whether Validate returns nil.
func (i Int64[B]) IsValidFormat() bool {
	return i.Validate() == nil
}

// MarshalJSON encodes the value as a JSON number.
func (i Int64[B]) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted string, then validates.
func (i *Int64[B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return i.UnmarshalText(bytes.Trim(data, `"`))
}

// MarshalText returns String.
func (i Int64[B]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses data and validates the result.
func (i *Int64[B]) UnmarshalText(data []byte) error {
	parsed, err := ParseInt64[B](string(data))
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Scan implements sql.Scanner.
func (i *Int64[B]) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		i.value = v
	case string:
		return i.scanText(v)
	case []byte:
		return i.scanText(string(v))
	case nil:
		return fmt.Errorf("strong: cannot scan NULL into %s", BrandName[B]())
	default:
		return fmt.Errorf("strong: cannot scan %T into %s", src, BrandName[B]())
	}
	return nil
}

func (i *Int64[B]) scanText(s string) error {
	parsed, err := ParseInt64[B](s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
