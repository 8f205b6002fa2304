package validation

import (
	"fmt"
	"regexp"

	"github.com/authcorp/strongtypes/strong"
)

type equaler[T any] interface {
	Equal(T) bool
}

type ordered[T any] interface {
	strong.Comparer[T]
	fmt.Stringer
}

// Required rejects values equal to the zero value of T: the empty string,
// the nil GUID, zero numbers and the zero time.
func Required[T equaler[T]]() Validator[T] {
	return func(v T) *FieldError {
		var zero T
		if v.Equal(zero) {
			return &FieldError{Message: "is required", Code: "required"}
		}
		return nil
	}
}

// Range requires min <= v <= max.
func Range[T ordered[T]](min, max T) Validator[T] {
	return func(v T) *FieldError {
		if v.Compare(min) < 0 || v.Compare(max) > 0 {
			return &FieldError{
				Message: fmt.Sprintf("must be between %s and %s", min, max),
				Code:    "range",
				Value:   v.String(),
			}
		}
		return nil
	}
}

// Min requires v >= min.
func Min[T ordered[T]](min T) Validator[T] {
	return func(v T) *FieldError {
		if v.Compare(min) < 0 {
			return &FieldError{Message: fmt.Sprintf("must be at least %s", min), Code: "min", Value: v.String()}
		}
		return nil
	}
}

// Max requires v <= max.
func Max[T ordered[T]](max T) Validator[T] {
	return func(v T) *FieldError {
		if v.Compare(max) > 0 {
			return &FieldError{Message: fmt.Sprintf("must be at most %s", max), Code: "max", Value: v.String()}
		}
		return nil
	}
}

// EqualTo requires v to equal other, e.g. a password confirmation.
func EqualTo[T interface {
	equaler[T]
	fmt.Stringer
}](other T) Validator[T] {
	return func(v T) *FieldError {
		if !v.Equal(other) {
			return &FieldError{Message: fmt.Sprintf("must equal %s", other), Code: "equal_to"}
		}
		return nil
	}
}

// OneOf requires v to equal one of allowed.
func OneOf[T equaler[T]](allowed ...T) Validator[T] {
	return func(v T) *FieldError {
		for _, a := range allowed {
			if v.Equal(a) {
				return nil
			}
		}
		return &FieldError{Message: "is not an allowed value", Code: "one_of"}
	}
}

// ValidFormat runs the brand's own format check.
func ValidFormat[T interface{ Validate() error }]() Validator[T] {
	return func(v T) *FieldError {
		if err := v.Validate(); err != nil {
			return &FieldError{Message: err.Error(), Code: "format"}
		}
		return nil
	}
}

// MinLength checks a string's length in characters.
func MinLength[B any](min int) Validator[strong.String[B]] {
	return func(s strong.String[B]) *FieldError {
		if s.Len() < min {
			return &FieldError{
				Message: fmt.Sprintf("must be at least %d characters", min),
				Code:    "min_length",
			}
		}
		return nil
	}
}

// MaxLength checks a string's length in characters.
func MaxLength[B any](max int) Validator[strong.String[B]] {
	return func(s strong.String[B]) *FieldError {
		if s.Len() > max {
			return &FieldError{
				Message: fmt.Sprintf("must be at most %d characters", max),
				Code:    "max_length",
			}
		}
		return nil
	}
}

// Matches checks a string against pattern.
func Matches[B any](pattern *regexp.Regexp, message string) Validator[strong.String[B]] {
	return func(s strong.String[B]) *FieldError {
		if !pattern.MatchString(s.Value()) {
			return &FieldError{Message: message, Code: "pattern"}
		}
		return nil
	}
}
