package strong

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// GUID wraps a 128-bit UUID under brand B.
type GUID[B any] struct {
	value uuid.UUID
}

var _ Strong[uuid.UUID, GUID[struct{}]] = GUID[struct{}]{}

// NewGUID wraps u under brand B.
func NewGUID[B any](u uuid.UUID) GUID[B] {
	return GUID[B]{value: u}
}

// NewRandomGUID returns a random (version 4) GUID.
func NewRandomGUID[B any]() GUID[B] {
	return GUID[B]{value: uuid.New()}
}

// NewTimeOrderedGUID returns a time-ordered (version 7) GUID. It falls
// back to version 4 if the random source fails.
func NewTimeOrderedGUID[B any]() GUID[B] {
	u, err := uuid.NewV7()
	if err != nil {
		logger().Warn("strong: uuid v7 generation failed, using v4", "error", err)
		return NewRandomGUID[B]()
	}
	return GUID[B]{value: u}
}

// ParseGUID parses s with uuid.Parse, which accepts the canonical form,
// the urn:uuid: prefix, braces and the 32-digit form.
func ParseGUID[B any](s string) (GUID[B], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return GUID[B]{}, parseError[B](s, err)
	}
	return GUID[B]{value: u}, nil
}

// ParseGUIDBytes is ParseGUID over a byte slice, without converting it to a string.
func ParseGUIDBytes[B any](b []byte) (GUID[B], error) {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return GUID[B]{}, parseError[B](string(b), err)
	}
	return GUID[B]{value: u}, nil
}

// TryParseGUID is ParseGUID reporting failure as false.
func TryParseGUID[B any](s string) (GUID[B], bool) {
	g, err := ParseGUID[B](s)
	return g, err == nil
}

// New wraps v without validating it. The receiver is ignored.
func (GUID[B]) New(v uuid.UUID) GUID[B] {
	return GUID[B]{value: v}
}

// Parse calls ParseGUID. The receiver is ignored.
func (GUID[B]) Parse(s string) (GUID[B], error) {
	return ParseGUID[B](s)
}

// Value returns the wrapped UUID.
func (g GUID[B]) Value() uuid.UUID {
	return g.value
}

// Underlying returns the wrapped UUID as any.
func (g GUID[B]) Underlying() any {
	return g.value
}

// String returns the canonical lowercase hyphenated form.
func (g GUID[B]) String() string {
	return g.value.String()
}

// Equal reports whether both wrap the same UUID.
func (g GUID[B]) Equal(other GUID[B]) bool {
	return g.value == other.value
}

// EqualAny is Equal for a GUID[B] or non-nil *GUID[B]; any other type is unequal.
func (g GUID[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case GUID[B]:
		return g.Equal(o)
	case *GUID[B]:
		return o != nil && g.Equal(*o)
	}
	return false
}

// Compare orders by the 16 bytes, most significant first.
func (g GUID[B]) Compare(other GUID[B]) int {
	return bytes.Compare(g.value[:], other.value[:])
}

// Hash is consistent with Equal.
func (g GUID[B]) Hash() uint64 {
	return hashBytes(g.value[:])
}

// Bytes returns a copy of the 16 raw bytes.
func (g GUID[B]) Bytes() []byte {
	b := g.value
	return b[:]
}

// IsNil reports whether g is the all-zero UUID.
func (g GUID[B]) IsNil() bool {
	return g.value == uuid.Nil
}

// Validate runs the brand's Validator, if it has one.
func (g GUID[B]) Validate() error {
	return validate[B](g.value, g.String)
}

// IsValidFormat reports whether Validate returns nil.
func (g GUID[B]) IsValidFormat() bool {
	return g.Validate() == nil
}

// MarshalJSON encodes String as a JSON string.
func (g GUID[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

// UnmarshalJSON decodes a JSON string and validates the result. null is a no-op.
func (g *GUID[B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return g.UnmarshalText([]byte(s))
}

// MarshalText returns String.
func (g GUID[B]) MarshalText() ([]byte, error) {
	return g.value.MarshalText()
}

// UnmarshalText parses data and validates the result.
func (g *GUID[B]) UnmarshalText(data []byte) error {
	parsed, err := ParseGUIDBytes[B](data)
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Scan implements sql.Scanner for string, []byte and 16-byte binary columns.
func (g *GUID[B]) Scan(src any) error {
	if src == nil {
		return fmt.Errorf("strong: cannot scan NULL into %s", BrandName[B]())
	}
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return fmt.Errorf("strong: scan %s: %w", BrandName[B](), err)
	}
	g.value = u
	return nil
}
