package validation

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/authcorp/strongtypes/strong"
)

// FormatTag runs a strong value's IsValidFormat from a struct tag.
const FormatTag = "strong_format"

type formatChecker interface {
	IsValidFormat() bool
}

// NewValidator returns a validator with samples' types registered.
func NewValidator(samples ...any) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterTypes(v, samples...); err != nil {
		return nil, err
	}
	return v, nil
}

// RegisterTypes teaches v to see each sample's strong type as its primitive,
// so standard tags such as required, min, max and email apply, and registers
// the strong_format tag.
//
// GUIDs are presented as their canonical string, or "" when nil, decimals as
// float64 and every other primitive as itself.
func RegisterTypes(v *validator.Validate, samples ...any) error {
	if len(samples) > 0 {
		v.RegisterCustomTypeFunc(primitive, samples...)
	}
	return v.RegisterValidation(FormatTag, validFormat)
}

func primitive(field reflect.Value) any {
	u, ok := field.Interface().(strong.Underlier)
	if !ok {
		return nil
	}
	switch p := u.Underlying().(type) {
	case uuid.UUID:
		if p == uuid.Nil {
			return ""
		}
		return p.String()
	case decimal.Decimal:
		return p.InexactFloat64()
	default:
		return p
	}
}

// validFormat finds the strong value behind the field, which the custom
// type func may already have replaced with its primitive.
func validFormat(fl validator.FieldLevel) bool {
	if c, ok := asChecker(fl.Field()); ok {
		return c.IsValidFormat()
	}
	if f, ok := structField(fl); ok {
		if c, ok := asChecker(f); ok {
			return c.IsValidFormat()
		}
	}
	return false
}

func asChecker(v reflect.Value) (formatChecker, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	c, ok := v.Interface().(formatChecker)
	return c, ok
}

// structField resolves fl back to the field on its parent struct, following
// a trailing slice index such as "Tags[2]".
func structField(fl validator.FieldLevel) (reflect.Value, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	name := fl.StructFieldName()
	index := -1
	if i := strings.IndexByte(name, '['); i >= 0 && strings.HasSuffix(name, "]") {
		n, err := strconv.Atoi(name[i+1 : len(name)-1])
		if err != nil {
			return reflect.Value{}, false
		}
		name, index = name[:i], n
	}
	f := parent.FieldByName(name)
	if !f.IsValid() {
		return reflect.Value{}, false
	}
	if index >= 0 {
		if (f.Kind() != reflect.Slice && f.Kind() != reflect.Array) || index >= f.Len() {
			return reflect.Value{}, false
		}
		f = f.Index(index)
	}
	return f, true
}

// FromValidator converts the error of validator.Struct into a Result.
// Errors that are not validator.ValidationErrors are recorded under the
// empty field with code "invalid".
func FromValidator(err error) *Result {
	result := NewResult()
	if err == nil {
		return result
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return result.AddError(FieldError{Message: err.Error(), Code: "invalid"})
	}
	for _, fe := range fieldErrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		result.AddError(FieldError{
			Field:   fe.Field(),
			Path:    path,
			Message: message(fe),
			Code:    fe.Tag(),
			Value:   fe.Value(),
		})
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case FormatTag:
		return "has an invalid format"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	}
	if fe.Param() != "" {
		return "failed " + fe.Tag() + "=" + fe.Param()
	}
	return "failed " + fe.Tag()
}
