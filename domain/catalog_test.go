package domain_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authcorp/strongtypes/domain"
	"github.com/authcorp/strongtypes/strong"
)

func TestKindsAreSortedAndComplete(t *testing.T) {
	kinds := domain.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name
	}

	assert.True(t, sort.StringsAreSorted(names))
	for _, want := range []string{
		"email", "url", "phone", "ip", "isbn", "sku", "slug", "hexcolor",
		"country", "currency", "ulid", "firstname", "lastname", "fullname",
		"userid", "orderid", "tenantid", "priority", "quantity", "amount",
		"timestamp", "birthdate", "grade",
	} {
		assert.Contains(t, names, want)
	}
}

func TestLookupChecksRawInput(t *testing.T) {
	tests := []struct {
		kind      string
		raw       string
		canonical string
		wantErr   error
	}{
		{"email", " A@B.com ", "a@b.com", nil},
		{"EMAIL", "a@b.com", "a@b.com", nil},
		{"email", "nope", "", strong.ErrValidation},
		{"priority", "3", "3", nil},
		{"priority", "9", "", strong.ErrValidation},
		{"priority", "x", "", strong.ErrInvalidFormat},
		{"userid", "11111111-1111-1111-1111-111111111111", "11111111-1111-1111-1111-111111111111", nil},
		{"amount", "19.990", "19.99", nil},
		{"grade", "A", "A", nil},
		{"timestamp", "2024-03-01T11:00:00+01:00", "2024-03-01T11:00:00+01:00", nil},
		{"birthdate", "1990-05-17", "1990-05-17T00:00:00", nil},
		{"isbn", "0-306-40615-2", "0-306-40615-2", nil},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.raw, func(t *testing.T) {
			k, ok := domain.Lookup(tt.kind)
			require.True(t, ok)

			got, err := k.Check(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, got)
		})
	}
}

func TestLookupUnknownKind(t *testing.T) {
	_, ok := domain.Lookup("no-such-kind")
	assert.False(t, ok)

	_, err := domain.Kind{Name: "bare"}.Check("x")
	assert.Error(t, err)
}
