package validation_test

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/authcorp/strongtypes/domain"
	"github.com/authcorp/strongtypes/strong"
	"github.com/authcorp/strongtypes/validation"
)

type name struct{}

type Name = strong.String[name]

func TestCombinators(t *testing.T) {
	low := domain.MustPriority(1)
	high := domain.MustPriority(3)
	inRange := validation.Range(low, high)

	assert.Nil(t, inRange(domain.MustPriority(2)))
	err := inRange(domain.MustPriority(5))
	require.NotNil(t, err)
	assert.Equal(t, "range", err.Code)
	assert.Equal(t, "must be between 1 and 3", err.Message)

	either := validation.Or(
		validation.EqualTo(domain.MustPriority(1)),
		validation.EqualTo(domain.MustPriority(5)),
	)
	assert.Nil(t, either(domain.MustPriority(5)))
	assert.NotNil(t, either(domain.MustPriority(4)))

	notOne := validation.Not(validation.EqualTo(low), "must not be 1", "not_one")
	assert.NotNil(t, notOne(low))
	assert.Nil(t, notOne(high))

	both := validation.And(validation.Min(low), validation.Max(high))
	assert.Equal(t, "max", both(domain.MustPriority(4)).Code)
}

func TestRequiredUsesZeroValue(t *testing.T) {
	assert.NotNil(t, validation.Required[domain.Email]()(domain.Email{}))
	assert.Nil(t, validation.Required[domain.Email]()(domain.MustEmail("a@b.com")))
	assert.NotNil(t, validation.Required[domain.UserID]()(domain.UserID{}))
	assert.Nil(t, validation.Required[domain.UserID]()(domain.GenerateUserID()))
	assert.NotNil(t, validation.Required[domain.Amount]()(domain.Amount{}))
	assert.NotNil(t, validation.Required[domain.Timestamp]()(domain.Timestamp{}))
}

func TestFieldAccumulatesErrors(t *testing.T) {
	n := strong.NewString[name]("x")
	result := validation.NewResult().Merge(
		validation.Field("name", n,
			validation.MinLength[name](2),
			validation.Matches[name](regexp.MustCompile(`^[A-Z]`), "must start upper-case"),
		),
		validation.NestedField("customer", "email", strong.From[domain.Email]("bad"),
			validation.ValidFormat[domain.Email](),
		),
		validation.Field("grade", domain.MustGrade('A'),
			validation.OneOf(domain.MustGrade('A'), domain.MustGrade('B')),
		),
	)

	assert.False(t, result.IsValid())
	require.Len(t, result.Errors(), 3)
	assert.Equal(t, []string{"must be at least 2 characters", "must start upper-case"}, result.ErrorMap()["name"])
	assert.Equal(t, "customer.email", result.Errors()[2].Path)
	assert.Equal(t, "format", result.Errors()[2].Code)

	err := result.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, strong.ErrValidation)
	var fields validation.Errors
	require.True(t, errors.As(err, &fields))
	assert.Len(t, fields, 3)
	assert.Equal(t, "name: must be at least 2 characters", fields[0].Error())
	assert.Contains(t, err.Error(), "customer.email: ")

	// Err copies, so later additions do not leak into a returned error.
	result.AddError(validation.FieldError{Field: "late", Message: "added after Err"})
	assert.Len(t, fields, 3)

	assert.NoError(t, validation.NewResult().Err())
}

func TestValidateAllAndCustom(t *testing.T) {
	short := validation.MaxLength[name](3)
	noSpaces := validation.Custom(func(n Name) bool { return !n.IsBlank() }, "must not be blank", "blank")

	result := validation.ValidateAll(strong.NewString[name]("    "), short, noSpaces)
	assert.Len(t, result.Errors(), 2)
	assert.Equal(t, "blank", result.Errors()[1].Code)
}

func TestPropertyRangeAgreesWithPrimitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Int32Range(1, 5).Draw(t, "lo")
		hi := rapid.Int32Range(lo, 5).Draw(t, "hi")
		v := rapid.Int32Range(1, 5).Draw(t, "v")

		err := validation.Range(domain.MustPriority(lo), domain.MustPriority(hi))(domain.MustPriority(v))
		if (err == nil) != (lo <= v && v <= hi) {
			t.Fatalf("Range(%d, %d)(%d) = %v", lo, hi, v, err)
		}
	})
}
