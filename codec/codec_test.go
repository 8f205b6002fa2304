package codec_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/authcorp/strongtypes/codec"
	"github.com/authcorp/strongtypes/domain"
	"github.com/authcorp/strongtypes/strong"
	"github.com/authcorp/strongtypes/strongtest"
)

type order struct {
	ID       domain.OrderID   `json:"id" yaml:"id"`
	Customer domain.Email     `json:"customer" yaml:"customer"`
	Priority domain.Priority  `json:"priority" yaml:"priority"`
	Total    domain.Amount    `json:"total" yaml:"total"`
	Grade    domain.Grade     `json:"grade" yaml:"grade"`
	PlacedAt domain.Timestamp `json:"placed_at" yaml:"placed_at"`
	Tags     []domain.Slug    `json:"tags" yaml:"tags"`
}

func sampleOrder() order {
	return order{
		ID:       domain.MustOrderID(uuid.MustParse("11111111-1111-1111-1111-111111111111")),
		Customer: domain.MustEmail("a@b.com"),
		Priority: domain.MustPriority(2),
		Total:    domain.MustAmount(decimal.RequireFromString("19.99")),
		Grade:    domain.MustGrade('A'),
		PlacedAt: domain.FromUnix(1709287200),
		Tags:     []domain.Slug{domain.MustSlug("gift"), domain.MustSlug("express")},
	}
}

func assertSameOrder(t *testing.T, want, got order) {
	t.Helper()
	assert.True(t, want.ID.Equal(got.ID))
	assert.True(t, want.Customer.Equal(got.Customer))
	assert.True(t, want.Priority.Equal(got.Priority))
	assert.True(t, want.Total.Equal(got.Total))
	assert.True(t, want.Grade.Equal(got.Grade))
	assert.True(t, want.PlacedAt.Equal(got.PlacedAt))
	assert.Equal(t, want.Tags, got.Tags)
}

func TestJSONRoundTripOfStrongTypes(t *testing.T) {
	c := codec.NewTypedJSONCodec[order]()
	data, err := c.Encode(sampleOrder())
	require.NoError(t, err)

	got, err := c.Decode(data)
	require.NoError(t, err)
	assertSameOrder(t, sampleOrder(), got)
}

func TestYAMLRoundTripOfStrongTypes(t *testing.T) {
	c := codec.NewTypedYAMLCodec[order]()
	data, err := c.Encode(sampleOrder())
	require.NoError(t, err)
	assert.Contains(t, string(data), "customer: a@b.com")

	got, err := c.Decode(data)
	require.NoError(t, err)
	assertSameOrder(t, sampleOrder(), got)
}

func TestDecodeRunsBrandValidation(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
	}{
		{"json email", codec.FormatJSON, `{"customer": "not-an-email"}`},
		{"json priority", codec.FormatJSON, `{"priority": 9}`},
		{"yaml email", codec.FormatYAML, "customer: not-an-email\n"},
		{"yaml priority", codec.FormatYAML, "priority: 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.ForFormat(tt.format)
			require.NoError(t, err)

			var o order
			err = c.Decode([]byte(tt.data), &o)
			assert.ErrorIs(t, err, strong.ErrValidation)
		})
	}
}

func TestDecodeReportsParseFailures(t *testing.T) {
	_, err := codec.DecodeJSON[order]([]byte(`{"id": "nope"}`))
	assert.ErrorIs(t, err, strong.ErrInvalidFormat)

	_, err = codec.NewTypedYAMLCodec[order]().Decode([]byte("placed_at: yesterday\n"))
	assert.ErrorIs(t, err, strong.ErrInvalidFormat)
}

func TestForFormat(t *testing.T) {
	for _, name := range []string{"json", "JSON", "yaml", "yml"} {
		_, err := codec.ForFormat(name)
		assert.NoError(t, err, name)
	}
	_, err := codec.ForFormat("toml")
	assert.Error(t, err)
}

func TestPrettyJSON(t *testing.T) {
	data, err := codec.NewJSONCodec().WithPretty().WithIndent("\t").Encode(map[string]domain.Quantity{
		"qty": domain.MustQuantity(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"qty\": 3\n}", string(data))
}

func TestTypedCodecs(t *testing.T) {
	jc := codec.NewTypedJSONCodec[domain.SKU]()
	data, err := jc.Encode(domain.MustSKU("ABC-1"))
	require.NoError(t, err)
	assert.Equal(t, `"ABC-1"`, string(data))
	got, err := jc.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "ABC-1", got.Value())
	_, err = jc.Decode([]byte(`"a b"`))
	assert.ErrorIs(t, err, strong.ErrValidation)

	yc := codec.NewTypedYAMLCodec[domain.SKU]()
	data, err = yc.Encode(domain.MustSKU("XYZ-9"))
	require.NoError(t, err)
	got, err = yc.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "XYZ-9", got.Value())
}

func TestCompactGUID(t *testing.T) {
	id := domain.MustUserID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))
	s := codec.CompactGUID(id)
	assert.Len(t, s, 22)

	back, err := codec.ParseCompactGUID[struct{}](s)
	require.NoError(t, err)
	assert.Equal(t, id.Value(), back.Value())

	_, err = codec.ParseCompactGUID[struct{}]("short")
	assert.ErrorIs(t, err, strong.ErrInvalidFormat)
}

func TestPropertyJSONRoundTrip(t *testing.T) {
	type row struct {
		ID    strong.GUID[struct{}]           `json:"id"`
		Name  strong.String[struct{}]         `json:"name"`
		Seq   strong.Int64[struct{}]          `json:"seq"`
		Price strong.Decimal[struct{}]        `json:"price"`
		At    strong.DateTimeOffset[struct{}] `json:"at"`
	}

	rapid.Check(t, func(t *rapid.T) {
		original := row{
			ID:    strongtest.GUIDGen[struct{}]().Draw(t, "id"),
			Name:  strongtest.StringGen[struct{}]().Draw(t, "name"),
			Seq:   strongtest.Int64Gen[struct{}]().Draw(t, "seq"),
			Price: strongtest.DecimalValueGen[struct{}]().Draw(t, "price"),
			At:    strongtest.DateTimeOffsetGen[struct{}]().Draw(t, "at"),
		}

		data, err := codec.NewJSONCodec().Encode(original)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		got, err := codec.DecodeJSON[row](data)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !got.ID.Equal(original.ID) || !got.Seq.Equal(original.Seq) ||
			!got.Price.Equal(original.Price) || !got.At.Equal(original.At) {
			t.Fatalf("round-trip failed: got %+v, want %+v", got, original)
		}
		if got.Name.Value() != original.Name.Value() {
			t.Fatalf("name round-trip failed: got %q, want %q", got.Name, original.Name)
		}
	})
}

func TestPropertyYAMLRoundTrip(t *testing.T) {
	type row struct {
		Name strong.String[struct{}]   `yaml:"name"`
		N    strong.Int32[struct{}]    `yaml:"n"`
		When strong.DateTime[struct{}] `yaml:"when"`
	}

	rapid.Check(t, func(t *rapid.T) {
		original := row{
			Name: strong.NewString[struct{}](rapid.StringMatching(`[a-zA-Z0-9]{0,20}`).Draw(t, "name")),
			N:    strongtest.Int32Gen[struct{}]().Draw(t, "n"),
			When: strongtest.DateTimeGen[struct{}]().Draw(t, "when"),
		}

		yc := codec.NewTypedYAMLCodec[row]()
		data, err := yc.Encode(original)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		got, err := yc.Decode(data)
		if err != nil {
			t.Fatalf("decode failed: %v\n%s", err, data)
		}
		if got.Name != original.Name || !got.N.Equal(original.N) || !got.When.Equal(original.When) {
			t.Fatalf("round-trip failed: got %+v, want %+v", got, original)
		}
	})
}

func TestBase64RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		original := []byte(rapid.String().Draw(t, "data"))
		for _, c := range []*codec.Base64Codec{
			codec.NewBase64Codec(),
			codec.NewBase64Codec().WithURLSafe(),
			codec.NewBase64Codec().WithoutPadding(),
		} {
			decoded, err := c.Decode(c.Encode(original))
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if string(decoded) != string(original) {
				t.Fatalf("round-trip failed: got %q, want %q", decoded, original)
			}
		}
	})
}
