package strong

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidFormat is matched by every parse failure.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrValidation is matched by every brand validation failure.
	ErrValidation = errors.New("validation failed")
	// ErrNoConstructor is matched when no constructor can be resolved for a type.
	ErrNoConstructor = errors.New("no constructor")
)

// ParseError reports raw input that the underlying primitive could not parse.
type ParseError struct {
	Kind  string
	Input string
	Err   error
}

// Error names the input and the target type.
func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("strong: cannot parse %q as %s", e.Input, e.Kind)
	}
	return fmt.Sprintf("strong: cannot parse %q as %s: %v", e.Input, e.Kind, e.Err)
}

// Unwrap exposes both ErrInvalidFormat and the primitive parser's error.
func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidFormat}
	}
	return []error{ErrInvalidFormat, e.Err}
}

// ValidationError reports a value rejected by its brand's Validator.
type ValidationError struct {
	Kind  string
	Value string
	Err   error
}

// Error names the brand, the value and the reason.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("strong: invalid %s %q: %v", e.Kind, e.Value, e.Err)
}

// Unwrap exposes ErrValidation and the brand's error.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// ConstructionError reports a type From cannot build. It signals a
// programming error, never bad data.
type ConstructionError struct {
	Type      reflect.Type
	Primitive reflect.Type
}

// Error suggests the missing constructor.
func (e *ConstructionError) Error() string {
	return fmt.Sprintf("strong: no constructor for %v from %v; implement New(%v) %v or call Register",
		e.Type, e.Primitive, e.Primitive, e.Type)
}

// Unwrap returns ErrNoConstructor.
func (e *ConstructionError) Unwrap() error {
	return ErrNoConstructor
}

// AsType is a generic errors.As.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

func parseError[B any](input string, err error) error {
	return &ParseError{Kind: BrandName[B](), Input: input, Err: err}
}
