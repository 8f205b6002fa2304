package strong

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeOffset wraps a point in time under brand B. Equality and
// ordering compare instants: 12:00Z equals 14:00+02:00.
type DateTimeOffset[B any] struct {
	value time.Time
}

var _ Strong[time.Time, DateTimeOffset[struct{}]] = DateTimeOffset[struct{}]{}

// NewDateTimeOffset wraps t without validating it.
func NewDateTimeOffset[B any](t time.Time) DateTimeOffset[B] {
	return DateTimeOffset[B]{value: t}
}

// NowOffset returns the current time in UTC.
func NowOffset[B any]() DateTimeOffset[B] {
	return DateTimeOffset[B]{value: time.Now().UTC()}
}

// ParseDateTimeOffset accepts RFC 3339; zone-less ISO 8601 input is read as UTC.
func ParseDateTimeOffset[B any](s string) (DateTimeOffset[B], error) {
	t, err := parseTime(s)
	if err != nil {
		return DateTimeOffset[B]{}, parseError[B](s, err)
	}
	return DateTimeOffset[B]{value: t}, nil
}

// TryParseDateTimeOffset is ParseDateTimeOffset reporting failure as false.
func TryParseDateTimeOffset[B any](s string) (DateTimeOffset[B], bool) {
	d, err := ParseDateTimeOffset[B](s)
	return d, err == nil
}

// New wraps v without validating it. The receiver is ignored.
func (DateTimeOffset[B]) New(v time.Time) DateTimeOffset[B] {
	return DateTimeOffset[B]{value: v}
}

// Parse calls ParseDateTimeOffset. The receiver is ignored.
func (DateTimeOffset[B]) Parse(s string) (DateTimeOffset[B], error) {
	return ParseDateTimeOffset[B](s)
}

// Value returns the wrapped time.
func (d DateTimeOffset[B]) Value() time.Time {
	return d.value
}

// Underlying returns the wrapped time as any.
func (d DateTimeOffset[B]) Underlying() any {
	return d.value
}

// String returns RFC 3339 with nanoseconds and the original offset. An
// offset that is not a whole number of minutes keeps its seconds
// (-00:44:30), so the string always parses back to the same instant.
func (d DateTimeOffset[B]) String() string {
	if _, offset := d.value.Zone(); offset%60 != 0 {
		return d.value.Format(offsetSecondsLayout)
	}
	return d.value.Format(time.RFC3339Nano)
}

// ISO8601 is String.
func (d DateTimeOffset[B]) ISO8601() string {
	return d.String()
}

// Format formats the wrapped time with layout.
func (d DateTimeOffset[B]) Format(layout string) string {
	return d.value.Format(layout)
}

// UTC returns the same instant expressed in UTC.
func (d DateTimeOffset[B]) UTC() DateTimeOffset[B] {
	return DateTimeOffset[B]{value: d.value.UTC()}
}

// Unix returns the seconds since the Unix epoch.
func (d DateTimeOffset[B]) Unix() int64 {
	return d.value.Unix()
}

// Equal reports whether both denote the same instant, whatever their offsets.
func (d DateTimeOffset[B]) Equal(other DateTimeOffset[B]) bool {
	return d.value.Equal(other.value)
}

// EqualAny is Equal for a DateTimeOffset[B] or non-nil *DateTimeOffset[B]; any other type is unequal.
func (d DateTimeOffset[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case DateTimeOffset[B]:
		return d.Equal(o)
	case *DateTimeOffset[B]:
		return o != nil && d.Equal(*o)
	}
	return false
}

// Compare returns -1, 0 or +1 in the order used by Equal.
func (d DateTimeOffset[B]) Compare(other DateTimeOffset[B]) int {
	return d.value.Compare(other.value)
}

// Before reports whether the receiver is earlier than other.
func (d DateTimeOffset[B]) Before(other DateTimeOffset[B]) bool { return d.value.Before(other.value) }

// After reports whether the receiver is later than other.
func (d DateTimeOffset[B]) After(other DateTimeOffset[B]) bool { return d.value.After(other.value) }

// Add returns d shifted by dur under the same brand.
func (d DateTimeOffset[B]) Add(dur time.Duration) DateTimeOffset[B] {
	return DateTimeOffset[B]{value: d.value.Add(dur)}
}

// Sub returns d - other.
func (d DateTimeOffset[B]) Sub(other DateTimeOffset[B]) time.Duration {
	return d.value.Sub(other.value)
}

// IsZero reports whether the wrapped time is the zero value.
func (d DateTimeOffset[B]) IsZero() bool {
	return d.value.IsZero()
}

// Hash is consistent with Equal.
func (d DateTimeOffset[B]) Hash() uint64 {
	return hashInstant(d.value)
}

// Validate runs the brand's Validator, if it has one.
func (d DateTimeOffset[B]) Validate() error {
	return validate[B](d.value, d.String)
}

// IsValidFormat reports whether Validate returns nil.
func (d DateTimeOffset[B]) IsValidFormat() bool {
	return d.Validate() == nil
}

// MarshalJSON encodes String as a JSON string.
func (d DateTimeOffset[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a JSON string and validates the result. null is a no-op.
func (d *DateTimeOffset[B]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

// MarshalText returns String.
func (d DateTimeOffset[B]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses data and validates the result.
func (d *DateTimeOffset[B]) UnmarshalText(data []byte) error {
	parsed, err := ParseDateTimeOffset[B](string(data))
	if err != nil {
		return err
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner.
func (d *DateTimeOffset[B]) Scan(src any) error {
	t, err := scanTime(src)
	if err != nil {
		return fmt.Errorf("strong: scan %s: %w", BrandName[B](), err)
	}
	d.value = t
	return nil
}
