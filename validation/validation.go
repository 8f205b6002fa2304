// Package validation provides composable validation with error accumulation
// for strong values, and a bridge that lets go-playground/validator struct
// tags see through strong types.
package validation

import (
	"fmt"
	"strings"

	"github.com/authcorp/strongtypes/strong"
)

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string `json:"field"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
}

// Key is Path when set and Field otherwise.
func (e FieldError) Key() string {
	if e.Path != "" {
		return e.Path
	}
	return e.Field
}

// Error prefixes the message with the field path, when there is one.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Key(), e.Message)
}

// Errors is the error form of an invalid Result. errors.Is matches it
// against strong.ErrValidation, so HTTP layers treat it like a failed
// brand validation.
type Errors []FieldError

// Error joins every message.
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return "validation: " + strings.Join(msgs, "; ")
}

// Is matches strong.ErrValidation.
func (e Errors) Is(target error) bool {
	return target == strong.ErrValidation
}

// Result accumulates field errors.
type Result struct {
	errors []FieldError
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{}
}

// AddError records err and returns r for chaining.
func (r *Result) AddError(err FieldError) *Result {
	r.errors = append(r.errors, err)
	return r
}

// Merge appends the errors of others, skipping nil results.
func (r *Result) Merge(others ...*Result) *Result {
	for _, other := range others {
		if other != nil {
			r.errors = append(r.errors, other.errors...)
		}
	}
	return r
}

// IsValid reports whether no error was recorded.
func (r *Result) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns the recorded errors in order.
func (r *Result) Errors() []FieldError {
	return r.errors
}

// ErrorMap returns messages grouped by Key.
func (r *Result) ErrorMap() map[string][]string {
	m := make(map[string][]string)
	for _, e := range r.errors {
		m[e.Key()] = append(m[e.Key()], e.Message)
	}
	return m
}

// Err returns the errors as Errors, or nil when the result is valid.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return Errors(append([]FieldError(nil), r.errors...))
}

// Validator checks one value and returns nil when it passes.
type Validator[T any] func(T) *FieldError

// And runs validators in order and stops at the first failure.
func And[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *FieldError {
		for _, check := range validators {
			if err := check(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Or passes when any validator passes and otherwise reports the last failure.
func Or[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *FieldError {
		var last *FieldError
		for _, check := range validators {
			if last = check(v); last == nil {
				return nil
			}
		}
		return last
	}
}

// Not fails with message and code when validator passes.
func Not[T any](validator Validator[T], message, code string) Validator[T] {
	return func(v T) *FieldError {
		if validator(v) == nil {
			return &FieldError{Message: message, Code: code}
		}
		return nil
	}
}

// Field runs every validator against value and records failures under field.
func Field[T any](field string, value T, validators ...Validator[T]) *Result {
	return NestedField("", field, value, validators...)
}

// NestedField is Field with the path parent.field.
func NestedField[T any](parent, field string, value T, validators ...Validator[T]) *Result {
	path := field
	if parent != "" {
		path = parent + "." + field
	}
	result := NewResult()
	for _, check := range validators {
		if err := check(value); err != nil {
			err.Field, err.Path = field, path
			result.AddError(*err)
		}
	}
	return result
}

// ValidateAll runs every validator against value without field names.
func ValidateAll[T any](value T, validators ...Validator[T]) *Result {
	return Field("", value, validators...)
}

// Custom turns a predicate into a validator.
func Custom[T any](check func(T) bool, message, code string) Validator[T] {
	return func(v T) *FieldError {
		if check(v) {
			return nil
		}
		return &FieldError{Message: message, Code: code, Value: v}
	}
}
