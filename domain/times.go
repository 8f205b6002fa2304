package domain

import (
	"errors"
	"time"

	"github.com/authcorp/strongtypes/strong"
)

type timestamp struct{}

func (timestamp) BrandName() string { return "timestamp" }

func (timestamp) Validate(v time.Time) error {
	if v.IsZero() {
		return errors.New("must not be the zero time")
	}
	return nil
}

// Timestamp is an instant. Two timestamps are equal when they denote the
// same moment, whatever their offsets.
type Timestamp = strong.DateTimeOffset[timestamp]

// NewTimestamp validates t.
func NewTimestamp(t time.Time) (Timestamp, error) {
	return strong.Create[Timestamp](t)
}

// Now returns the current time in UTC truncated to microseconds, the
// precision most databases store.
func Now() Timestamp {
	return strong.NewDateTimeOffset[timestamp](time.Now().UTC().Truncate(time.Microsecond))
}

// FromUnix returns the timestamp sec seconds after the Unix epoch, in UTC.
func FromUnix(sec int64) Timestamp {
	return strong.NewDateTimeOffset[timestamp](time.Unix(sec, 0).UTC())
}

// FromUnixMilli returns the timestamp ms milliseconds after the Unix epoch, in UTC.
func FromUnixMilli(ms int64) Timestamp {
	return strong.NewDateTimeOffset[timestamp](time.UnixMilli(ms).UTC())
}

var earliestBirthDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

type birthDate struct{}

func (birthDate) BrandName() string { return "birthdate" }

func (birthDate) Validate(v time.Time) error {
	day := time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	switch {
	case day.Before(earliestBirthDate):
		return errors.New("must not be before 1900-01-01")
	case day.After(time.Now().UTC()):
		return errors.New("must not be in the future")
	}
	return nil
}

// BirthDate is a civil date of birth. The time of day is dropped on
// construction through NewBirthDate.
type BirthDate = strong.DateTime[birthDate]

// NewBirthDate keeps the calendar date of t and validates it.
func NewBirthDate(t time.Time) (BirthDate, error) {
	return strong.Create[BirthDate](time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// MustBirthDate is NewBirthDate that panics on invalid input.
func MustBirthDate(t time.Time) BirthDate {
	return must(NewBirthDate(t))
}

// Age returns the number of whole years between b and on.
func Age(b BirthDate, on time.Time) int {
	born := b.Value()
	years := on.Year() - born.Year()
	if on.Month() < born.Month() || (on.Month() == born.Month() && on.Day() < born.Day()) {
		years--
	}
	return years
}
