package strong

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var errNotOneRune = errors.New("must be exactly one character")

// Char wraps a single Unicode code point under brand B.
type Char[B any] struct {
	value rune
}

var _ Strong[rune, Char[struct{}]] = Char[struct{}]{}

// NewChar wraps r without validating it.
func NewChar[B any](r rune) Char[B] {
	return Char[B]{value: r}
}

// ParseChar accepts a string holding exactly one valid UTF-8 encoded rune.
func ParseChar[B any](s string) (Char[B], error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || (r == utf8.RuneError && size == 1) {
		return Char[B]{}, parseError[B](s, errNotOneRune)
	}
	return Char[B]{value: r}, nil
}

// TryParseChar is ParseChar reporting failure as false.
func TryParseChar[B any](s string) (Char[B], bool) {
	c, err := ParseChar[B](s)
	return c, err == nil
}

// New wraps v without validating it. The receiver is ignored.
func (Char[B]) New(v rune) Char[B] {
	return Char[B]{value: v}
}

// Parse calls ParseChar. The receiver is ignored.
func (Char[B]) Parse(s string) (Char[B], error) {
	return ParseChar[B](s)
}

// Value returns the wrapped rune.
func (c Char[B]) Value() rune {
	return c.value
}

// Underlying returns the wrapped rune as any.
func (c Char[B]) Underlying() any {
	return c.value
}

// String returns the rune as a one-character string.
func (c Char[B]) String() string {
	return string(c.value)
}

// Equal reports whether both wrap the same rune.
func (c Char[B]) Equal(other Char[B]) bool {
	return c.value == other.value
}

// EqualAny is Equal for a Char[B] or non-nil *Char[B]; any other type is unequal.
func (c Char[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case Char[B]:
		return c.Equal(o)
	case *Char[B]:
		return o != nil && c.Equal(*o)
	}
	return false
}

// Compare orders by code point.
func (c Char[B]) Compare(other Char[B]) int {
	return cmp.Compare(c.value, other.value)
}

// Less reports whether the receiver sorts before other.
func (c Char[B]) Less(other Char[B]) bool { return c.value < other.value }

// IsLetter reports whether the rune is a Unicode letter.
func (c Char[B]) IsLetter() bool { return unicode.IsLetter(c.value) }

// IsDigit reports whether the rune is a Unicode decimal digit.
func (c Char[B]) IsDigit() bool { return unicode.IsDigit(c.value) }

// IsSpace reports whether the rune is Unicode white space.
func (c Char[B]) IsSpace() bool { return unicode.IsSpace(c.value) }

// Hash is consistent with Equal.
func (c Char[B]) Hash() uint64 {
	return hashComparable(c.value)
}

// Validate runs the brand's Validator, if it has one.
func (c Char[B]) Validate() error {
	return validate[B](c.value, c.String)
}

// IsValidFormat reports whether Validate returns nil.
func (c Char[B]) IsValidFormat() bool {
	return c.Validate() == nil
}

// MarshalJSON encodes String as a JSON string.
func (c Char[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c.value))
}

// UnmarshalJSON decodes a JSON string and validates the result. null is a no-op.
func (c *Char[B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return c.UnmarshalText([]byte(s))
}

// MarshalText returns String.
func (c Char[B]) MarshalText() ([]byte, error) {
	return []byte(string(c.value)), nil
}

// UnmarshalText parses data and validates the result.
func (c *Char[B]) UnmarshalText(data []byte) error {
	parsed, err := ParseChar[B](string(data))
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Scan accepts one-character text or an integer code point.
func (c *Char[B]) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return c.scanText(v)
	case []byte:
		return c.scanText(string(v))
	case int64:
		if !utf8.ValidRune(rune(v)) || int64(rune(v)) != v {
			return fmt.Errorf("strong: %d is not a valid code point for %s", v, BrandName[B]())
		}
		c.value = rune(v)
	case nil:
		return fmt.Errorf("strong: cannot scan NULL into %s", BrandName[B]())
	default:
		return fmt.Errorf("strong: cannot scan %T into %s", src, BrandName[B]())
	}
	return nil
}

func (c *Char[B]) scanText(s string) error {
	parsed, err := ParseChar[B](s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
