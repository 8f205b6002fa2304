// Package codec encodes and decodes values, strong types included, as JSON,
// YAML or base64. Strong types round-trip through JSON and YAML because they
// implement the JSON and text marshaling interfaces; decoding runs their
// brand validation.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/authcorp/strongtypes/strong"
)

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// TypedCodec provides type-safe encoding/decoding operations.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// Format names accepted by ForFormat.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ForFormat returns the codec for a format name ("json", "yaml" or "yml").
func ForFormat(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case FormatJSON:
		return NewJSONCodec(), nil
	case FormatYAML, "yml":
		return NewYAMLCodec(), nil
	}
	return nil, fmt.Errorf("codec: unknown format %q", name)
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec returns a compact JSON codec.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Encode marshals v, indented with Indent when Pretty is set.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON into v. Errors from a strong type's validation are
// wrapped, so errors.Is(err, strong.ErrValidation) holds.
func (c *JSONCodec) Decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: decode json: %w", err)
	}
	return nil
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// WithIndent sets the pretty-print indent and returns c.
func (c *JSONCodec) WithIndent(indent string) *JSONCodec {
	c.Indent = indent
	return c
}

// TypedJSONCodec provides type-safe JSON encoding/decoding.
type TypedJSONCodec[T any] struct {
	JSONCodec
}

// NewTypedJSONCodec returns a JSON codec bound to T.
func NewTypedJSONCodec[T any]() *TypedJSONCodec[T] {
	return &TypedJSONCodec[T]{JSONCodec: JSONCodec{Indent: "  "}}
}

// Encode marshals v.
func (c *TypedJSONCodec[T]) Encode(v T) ([]byte, error) {
	return c.JSONCodec.Encode(v)
}

// Decode unmarshals data into a new T.
func (c *TypedJSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := c.JSONCodec.Decode(data, &v)
	return v, err
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec returns a YAML codec with two-space indentation.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// Encode encodes v as YAML. Strong types are written through MarshalText,
// so numeric ones appear as quoted scalars.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode unmarshals data into v.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("codec: decode yaml: %w", err)
	}
	return nil
}

// WithIndent sets the indent width in spaces and returns c.
func (c *YAMLCodec) WithIndent(indent int) *YAMLCodec {
	c.Indent = indent
	return c
}

// TypedYAMLCodec provides type-safe YAML encoding/decoding.
type TypedYAMLCodec[T any] struct {
	YAMLCodec
}

// NewTypedYAMLCodec returns a YAML codec bound to T.
func NewTypedYAMLCodec[T any]() *TypedYAMLCodec[T] {
	return &TypedYAMLCodec[T]{YAMLCodec: YAMLCodec{Indent: 2}}
}

// Encode marshals v.
func (c *TypedYAMLCodec[T]) Encode(v T) ([]byte, error) {
	return c.YAMLCodec.Encode(v)
}

// Decode unmarshals data into a new T.
func (c *TypedYAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := c.YAMLCodec.Decode(data, &v)
	return v, err
}

// Base64Codec encodes/decodes using Base64.
type Base64Codec struct {
	URLSafe bool
	Padding bool
}

// NewBase64Codec returns a codec using standard base64.
func NewBase64Codec() *Base64Codec {
	return &Base64Codec{Padding: true}
}

// Encode encodes data with the configured alphabet and padding.
func (c *Base64Codec) Encode(data []byte) string {
	return c.encoding().EncodeToString(data)
}

// Decode reverses Encode.
func (c *Base64Codec) Decode(s string) ([]byte, error) {
	return c.encoding().DecodeString(s)
}

// WithURLSafe enables URL-safe encoding.
func (c *Base64Codec) WithURLSafe() *Base64Codec {
	c.URLSafe = true
	return c
}

// WithoutPadding disables padding.
func (c *Base64Codec) WithoutPadding() *Base64Codec {
	c.Padding = false
	return c
}

func (c *Base64Codec) encoding() *base64.Encoding {
	enc := base64.StdEncoding
	if c.URLSafe {
		enc = base64.URLEncoding
	}
	if !c.Padding {
		enc = enc.WithPadding(base64.NoPadding)
	}
	return enc
}

var compactGUID = NewBase64Codec().WithURLSafe().WithoutPadding()

// CompactGUID encodes g's 16 bytes as 22 URL-safe base64 characters.
func CompactGUID[B any](g strong.GUID[B]) string {
	return compactGUID.Encode(g.Bytes())
}

// ParseCompactGUID reverses CompactGUID.
func ParseCompactGUID[B any](s string) (strong.GUID[B], error) {
	raw, err := compactGUID.Decode(s)
	if err != nil {
		return strong.GUID[B]{}, &strong.ParseError{Kind: strong.BrandName[B](), Input: s, Err: err}
	}
	u, err := uuid.FromBytes(raw)
	if err != nil {
		return strong.GUID[B]{}, &strong.ParseError{Kind: strong.BrandName[B](), Input: s, Err: err}
	}
	return strong.NewGUID[B](u), nil
}

// DecodeJSON decodes data into a new T.
func DecodeJSON[T any](data []byte) (T, error) {
	return NewTypedJSONCodec[T]().Decode(data)
}
