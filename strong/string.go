package strong

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// String wraps a string under brand B. Equality and ordering are ordinal:
// byte-for-byte, independent of locale and case.
type String[B any] struct {
	value string
}

var _ Strong[string, String[struct{}]] = String[struct{}]{}

// NewString wraps s under brand B.
func NewString[B any](s string) String[B] {
	return String[B]{value: s}
}

// ParseString wraps s. Every string parses; it exists for symmetry with
// the other specializations.
func ParseString[B any](s string) (String[B], error) {
	return String[B]{value: s}, nil
}

// New wraps v under the receiver's brand.
func (String[B]) New(v string) String[B] {
	return String[B]{value: v}
}

// Parse wraps s under the receiver's brand.
func (String[B]) Parse(s string) (String[B], error) {
	return ParseString[B](s)
}

// Value returns the wrapped string.
func (s String[B]) Value() string {
	return s.value
}

// Underlying returns the wrapped string as an interface value.
func (s String[B]) Underlying() any {
	return s.value
}

// String returns the wrapped string.
func (s String[B]) String() string {
	return s.value
}

// Equal reports ordinal equality.
func (s String[B]) Equal(other String[B]) bool {
	return s.value == other.value
}

// EqualAny reports whether other is a String[B] (or non-nil pointer to one)
// ordinally equal to s.
func (s String[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case String[B]:
		return s.Equal(o)
	case *String[B]:
		return o != nil && s.Equal(*o)
	}
	return false
}

// EqualFold reports equality under Unicode case folding. Equal never folds.
func (s String[B]) EqualFold(other String[B]) bool {
	return strings.EqualFold(s.value, other.value)
}

// Compare orders ordinally.
func (s String[B]) Compare(other String[B]) int {
	return strings.Compare(s.value, other.value)
}

// Less reports whether the receiver sorts before other.
func (s String[B]) Less(other String[B]) bool { return s.value < other.value }

// Hash is consistent with Equal.
func (s String[B]) Hash() uint64 {
	return hashString(s.value)
}

// IsEmpty reports whether the wrapped string has zero length.
func (s String[B]) IsEmpty() bool {
	return s.value == ""
}

// IsBlank reports whether the wrapped string is empty or only whitespace.
func (s String[B]) IsBlank() bool {
	return strings.TrimSpace(s.value) == ""
}

// HasValue reports whether the wrapped string has non-whitespace content.
func (s String[B]) HasValue() bool {
	return !s.IsBlank()
}

// Len returns the length in runes.
func (s String[B]) Len() int {
	return utf8.RuneCountInString(s.value)
}

// Validate runs B's validator, if any.
func (s String[B]) Validate() error {
	return validate[B](s.value, s.String)
}

// IsValidFormat reports whether Validate accepts the value.
func (s String[B]) IsValidFormat() bool {
	return s.Validate() == nil
}

// MarshalJSON implements json.Marshaler.
func (s String[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *String[B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return s.set(raw)
}

// MarshalText implements encoding.TextMarshaler.
func (s String[B]) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *String[B]) UnmarshalText(data []byte) error {
	return s.set(string(data))
}

// Scan implements sql.Scanner.
func (s *String[B]) Scan(src any) error {
	switch v := src.(type) {
	case string:
		s.value = v
	case []byte:
		s.value = string(v)
	case nil:
		return fmt.Errorf("strong: cannot scan NULL into %s", BrandName[B]())
	default:
		return fmt.Errorf("strong: cannot scan %T into %s", src, BrandName[B]())
	}
	return nil
}

func (s *String[B]) set(raw string) error {
	next := String[B]{value: raw}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}
