package strong

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Layouts tried in order when parsing date/times. The space-separated
// forms with an offset are what SQL drivers commonly write for time.Time.
var timeFormats = []string{
	time.RFC3339Nano,
	offsetSecondsLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// offsetSecondsLayout is RFC 3339 with a seconds field in the UTC offset,
// needed for historical zones such as Africa/Monrovia before 1972 (-00:44:30).
const offsetSecondsLayout = "2006-01-02T15:04:05.999999999Z07:00:00"

// dateTimeLayout is the zone-less ISO 8601 form DateTime formats with.
const dateTimeLayout = "2006-01-02T15:04:05.999999999"

var errUnknownLayout = errors.New("not an ISO 8601 date/time")

// parseTime tries each layout; zone-less input is read as UTC.
func parseTime(s string) (time.Time, error) {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errUnknownLayout
}

// wall drops the location, keeping the clock reading.
func wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// DateTime wraps a civil date/time under brand B. Equality and ordering
// compare the wall clock to the nanosecond and ignore the location, so
// 10:00 in Paris equals 10:00 in Tokyo. Use DateTimeOffset to compare instants.
type DateTime[B any] struct {
	value time.Time
}

var _ Strong[time.Time, DateTime[struct{}]] = DateTime[struct{}]{}

// NewDateTime wraps t without validating it.
func NewDateTime[B any](t time.Time) DateTime[B] {
	return DateTime[B]{value: t}
}

// ParseDateTime accepts RFC 3339 (offset kept, then ignored for equality)
// and the zone-less ISO 8601 layouts.
func ParseDateTime[B any](s string) (DateTime[B], error) {
	t, err := parseTime(s)
	if err != nil {
		return DateTime[B]{}, parseError[B](s, err)
	}
	return DateTime[B]{value: t}, nil
}

// ParseDateTimeLayout parses s with an explicit time layout.
func ParseDateTimeLayout[B any](layout, s string) (DateTime[B], error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return DateTime[B]{}, parseError[B](s, err)
	}
	return DateTime[B]{value: t}, nil
}

// TryParseDateTime is ParseDateTime reporting failure as false.
func TryParseDateTime[B any](s string) (DateTime[B], bool) {
	d, err := ParseDateTime[B](s)
	return d, err == nil
}

// New wraps v without validating it. The receiver is ignored.
func (DateTime[B]) New(v time.Time) DateTime[B] {
	return DateTime[B]{value: v}
}

// Parse calls ParseDateTime. The receiver is ignored.
func (DateTime[B]) Parse(s string) (DateTime[B], error) {
	return ParseDateTime[B](s)
}

// Value returns the time as constructed, location included.
func (d DateTime[B]) Value() time.Time {
	return d.value
}

// Underlying returns the wrapped time as any.
func (d DateTime[B]) Underlying() any {
	return d.value
}

// String returns the zone-less ISO 8601 form, e.g. 2024-03-01T10:30:00.5.
func (d DateTime[B]) String() string {
	return d.value.Format(dateTimeLayout)
}

// ISO8601 is String; it parses back to an equal DateTime.
func (d DateTime[B]) ISO8601() string {
	return d.String()
}

// Format formats the wrapped time with layout.
func (d DateTime[B]) Format(layout string) string {
	return d.value.Format(layout)
}

// Equal reports whether both hold the same wall-clock time, ignoring location.
func (d DateTime[B]) Equal(other DateTime[B]) bool {
	return wall(d.value).Equal(wall(other.value))
}

// EqualAny is Equal for a DateTime[B] or non-nil *DateTime[B]; any other type is unequal.
func (d DateTime[B]) EqualAny(other any) bool {
	switch o := other.(type) {
	case DateTime[B]:
		return d.Equal(o)
	case *DateTime[B]:
		return o != nil && d.Equal(*o)
	}
	return false
}

// Compare returns -1, 0 or +1 in the order used by Equal.
func (d DateTime[B]) Compare(other DateTime[B]) int {
	return wall(d.value).Compare(wall(other.value))
}

// Before reports whether the receiver is earlier than other.
func (d DateTime[B]) Before(other DateTime[B]) bool { return d.Compare(other) < 0 }

// After reports whether the receiver is later than other.
func (d DateTime[B]) After(other DateTime[B]) bool { return d.Compare(other) > 0 }

// IsZero reports whether the wrapped time is the zero value.
func (d DateTime[B]) IsZero() bool {
	return d.value.IsZero()
}

// Hash is consistent with Equal.
func (d DateTime[B]) Hash() uint64 {
	return hashInstant(wall(d.value))
}

// Validate runs the brand's Validator, if it has one.
func (d DateTime[B]) Validate() error {
	return validate[B](d.value, d.String)
}

// IsValidFormat reports whether Validate returns nil.
func (d DateTime[B]) IsValidFormat() bool {
	return d.Validate() == nil
}

// MarshalJSON encodes String as a JSON string.
func (d DateTime[B]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a JSON string and validates the result. null is a no-op.
func (d *DateTime[B]) UnmarshalJSON(data []byte) error {
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
func (d DateTime[B]) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses data and validates the result.
func (d *DateTime[B]) UnmarshalText(data []byte) error {
	parsed, err := ParseDateTime[B](string(data))
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
func (d *DateTime[B]) Scan(src any) error {
	t, err := scanTime(src)
	if err != nil {
		return fmt.Errorf("strong: scan %s: %w", BrandName[B](), err)
	}
	d.value = t
	return nil
}

func scanTime(src any) (time.Time, error) {
	switch v := src.(type) {
	case time.Time:
		return v, nil
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	case nil:
		return time.Time{}, errors.New("cannot scan NULL")
	}
	return time.Time{}, fmt.Errorf("cannot scan %T", src)
}
