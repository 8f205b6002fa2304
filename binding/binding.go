// Package binding reads strong values out of HTTP requests: chi and
// gorilla/mux path parameters, query strings, headers and JSON bodies.
package binding

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/mux"

	"github.com/authcorp/strongtypes/codec"
	"github.com/authcorp/strongtypes/strong"
	"github.com/authcorp/strongtypes/validation"
)

var (
	// ErrMissing is matched when a parameter is absent or empty.
	ErrMissing = errors.New("missing parameter")
	// ErrBody is matched when a request body is not valid JSON for its target.
	ErrBody = errors.New("malformed request body")
)

// maxBodyBytes caps the bodies BindJSON reads.
const maxBodyBytes = 1 << 20

// Source looks up a raw parameter by name.
type Source interface {
	Name() string
	Lookup(name string) (string, bool)
}

type source struct {
	name   string
	lookup func(string) (string, bool)
}

// Name identifies the source in errors, e.g. "query".
func (s source) Name() string { return s.name }

// Lookup returns the raw value for name.
func (s source) Lookup(name string) (string, bool) { return s.lookup(name) }

// ChiParam reads URL parameters routed by chi.
func ChiParam(r *http.Request) Source {
	return source{name: "path", lookup: func(name string) (string, bool) {
		v := chi.URLParam(r, name)
		return v, v != ""
	}}
}

// MuxVar reads route variables routed by gorilla/mux.
func MuxVar(r *http.Request) Source {
	vars := mux.Vars(r)
	return source{name: "path", lookup: func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok && v != ""
	}}
}

// Query reads the first value of a query parameter.
func Query(r *http.Request) Source {
	q := r.URL.Query()
	return source{name: "query", lookup: func(name string) (string, bool) {
		v := q.Get(name)
		return v, v != ""
	}}
}

// Header reads the first value of a request header.
func Header(r *http.Request) Source {
	return source{name: "header", lookup: func(name string) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}}
}

// Error reports which parameter failed to bind.
type Error struct {
	Source string
	Name   string
	Err    error
}

// Error names the source and, when known, the parameter.
func (e *Error) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("binding: %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("binding: %s parameter %q: %v", e.Source, e.Name, e.Err)
}

// Unwrap returns the parse or validation failure.
func (e *Error) Unwrap() error {
	return e.Err
}

// Bind parses the parameter name from src into T and runs T's validation
// when it has one.
func Bind[T strong.Parser[T]](src Source, name string) (T, error) {
	var zero T
	raw, ok := src.Lookup(name)
	if !ok {
		return zero, &Error{Source: src.Name(), Name: name, Err: ErrMissing}
	}
	v, err := strong.Parse[T](raw)
	if err != nil {
		return zero, &Error{Source: src.Name(), Name: name, Err: err}
	}
	if vd, ok := any(v).(interface{ Validate() error }); ok {
		if err := vd.Validate(); err != nil {
			return zero, &Error{Source: src.Name(), Name: name, Err: err}
		}
	}
	return v, nil
}

// BindOptional is Bind where an absent parameter yields def and no error.
func BindOptional[T strong.Parser[T]](src Source, name string, def T) (T, error) {
	if _, ok := src.Lookup(name); !ok {
		return def, nil
	}
	return Bind[T](src, name)
}

// BindValid is Bind followed by validators, whose failures are returned as
// validation.Errors keyed by name.
func BindValid[T strong.Parser[T]](src Source, name string, validators ...validation.Validator[T]) (T, error) {
	v, err := Bind[T](src, name)
	if err != nil {
		return v, err
	}
	if err := validation.Field(name, v, validators...).Err(); err != nil {
		var zero T
		return zero, &Error{Source: src.Name(), Name: name, Err: err}
	}
	return v, nil
}

// BindJSON decodes the request body into T. Strong fields parse and
// validate themselves, so their errors keep strong.ErrInvalidFormat or
// strong.ErrValidation; any other decoding failure matches ErrBody.
func BindJSON[T any](r *http.Request) (T, error) {
	var zero T
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBody, err)
	}
	v, err := codec.DecodeJSON[T](data)
	if err != nil {
		if errors.Is(err, strong.ErrValidation) || errors.Is(err, strong.ErrInvalidFormat) {
			return zero, &Error{Source: "body", Err: err}
		}
		return zero, fmt.Errorf("%w: %w", ErrBody, err)
	}
	return v, nil
}
