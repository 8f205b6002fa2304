package strong

import (
	"bytes"
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Int32 wraps an int32 under brand B.
type Int32[B any] struct {
	value int32
}

var _ Strong[int32, Int32[struct{}]] = Int32[struct{}]{}

// NewInt32 wraps v without validating it.
func NewInt32[B any](v int32) Int32[B] {
	return Int32[B]{value: v}
}

// ParseInt32 parses a base-10 int32 with strconv's rules: optional sign,
// no surrounding space, no grouping.
func ParseInt32[B any](s string) (Int32[B], error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return Int32[B]{}, parseError[B](s, err)
	}
	return Int32[B]{value: int32(v)}, nil
}

// ParseInt32In parses s as written in culture c: surrounding space and
// group separators are accepted.
func ParseInt32In[B any](s string, c Culture) (Int32[B], error) {
	n, err := c.normalize(s)
	if err != nil {
		return Int32[B]{}, parseError[B](s, err)
	}
	v, err := strconv.ParseInt(n, 10, 32)
	if err != nil {
		return Int32[B]{}, parseError[B](s, err)
	}
	return Int32[B]{value: int32(v)}, nil
}

// TryParseInt32 is ParseInt32 reporting failure as false.
func TryParseInt32[B any](s string) (Int32[B], bool) {
	v, err := ParseInt32[B](s)
	return v, err == nil
}

// New wraps v without validating it. The receiver is ignored.
func (Int32[B]) New(v int32) Int32[B] {
	return Int32[B]{value: v}
}

// Parse calls ParseInt32. The receiver is ignored.
func (Int32[B]) Parse(s string) (Int32[B], error) {
	return ParseInt32[B](s)
}

// Value returns the wrapped int32.
func (i Int32[B]) Value() int32 {
	return i.value
}

// Underlying returns the wrapped int32 as any.
func (i Int32[B]) Underlying() any {
	return i.value
}

// String returns the base-10 form.
func (i Int32[B]) String() string {
	return strconv.FormatInt(int64(i.value), 10)
}

// Equal reports whether both wrap the same int32.
func (i Int32[B]) Equal(other Int32[B]) bool {
	return i.value == other.value
}

// EqualAny is Equal for a Int32[B] or non-nil *Int32[B]; any other type is unequal.
func (i Int32[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case Int32[B]:
		return i.Equal(o)
	case *Int32[B]:
		return o != nil && i.Equal(*o)
	}
	return false
}

// Compare returns -1, 0 or +1 in the order used by Equal.
func (i Int32[B]) Compare(other Int32[B]) int {
	return cmp.Compare(i.value, other.value)
}

// Less reports whether the receiver sorts before other.
func (i Int32[B]) Less(other Int32[B]) bool { return i.value < other.value }

// LessOrEqual reports whether the receiver sorts before or equal to other.
func (i Int32[B]) LessOrEqual(other Int32[B]) bool { return i.value <= other.value }

// Greater reports whether the receiver sorts after other.
func (i Int32[B]) Greater(other Int32[B]) bool { return i.value > other.value }

// GreaterOrEqual reports whether the receiver sorts after or equal to other.
func (i Int32[B]) GreaterOrEqual(other Int32[B]) bool { return i.value >= other.value }

// IsZero reports whether the wrapped int32 is the zero value.
func (i Int32[B]) IsZero() bool {
	return i.value == 0
}

// Sign returns -1, 0 or +1.
func (i Int32[B]) Sign() int {
	return cmp.Compare(i.value, 0)
}

// Hash is consistent with Equal.
func (i Int32[B]) Hash() uint64 {
	return hashComparable(i.value)
}

// Validate runs the brand's Validator, if it has one.
func (i Int32[B]) Validate() error {
	return validate[B](i.value, i.String)
}

// IsValidFormat reports whether Validate returns nil.
func (i Int32[B]) IsValidFormat() bool {
	return i.Validate() == nil
}

// MarshalJSON encodes the value as a JSON number.
func (i Int32[B]) MarshalJSON() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (i *Int32[B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return i.UnmarshalText(bytes.Trim(data, `"`))
}

// MarshalText returns String.
func (i Int32[B]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText parses data and validates the result.
func (i *Int32[B]) UnmarshalText(data []byte) error {
	parsed, err := ParseInt32[B](string(data))
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
func (i *Int32[B]) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return fmt.Errorf("strong: %d overflows %s", v, BrandName[B]())
		}
		i.value = int32(v)
	case int32:
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

func (i *Int32[B]) scanText(s string) error {
	parsed, err := ParseInt32[B](s)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
