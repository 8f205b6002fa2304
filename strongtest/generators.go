// Package strongtest provides rapid generators for strong types and for
// raw inputs that satisfy the domain catalog's formats.
package strongtest

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/authcorp/strongtypes/strong"
)

var (
	minTime = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC).Unix()
	maxTime = time.Date(2200, 12, 31, 23, 59, 59, 0, time.UTC).Unix()
)

// UUIDGen generates arbitrary UUIDs, including non-RFC variants.
func UUIDGen() *rapid.Generator[uuid.UUID] {
	return rapid.Custom(func(t *rapid.T) uuid.UUID {
		var u uuid.UUID
		copy(u[:], rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "bytes"))
		return u
	})
}

// DecimalGen generates decimals with up to 10 digits either side of the point.
func DecimalGen() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		coefficient := rapid.Int64().Draw(t, "coefficient")
		exp := rapid.Int32Range(-10, 10).Draw(t, "exp")
		return decimal.New(coefficient, exp)
	})
}

// RuneGen generates valid Unicode code points.
func RuneGen() *rapid.Generator[rune] {
	return rapid.Rune().Filter(utf8.ValidRune)
}

// TimeGen generates times between 1900 and 2200 at UTC offsets of up to
// 14 hours, to the second.
func TimeGen() *rapid.Generator[time.Time] {
	return rapid.Custom(func(t *rapid.T) time.Time {
		sec := rapid.Int64Range(minTime, maxTime).Draw(t, "sec")
		nsec := rapid.Int64Range(0, 999_999_999).Draw(t, "nsec")
		offset := rapid.IntRange(-14*3600, 14*3600).Draw(t, "offsetSeconds")
		return time.Unix(sec, nsec).In(time.FixedZone("", offset))
	})
}

// StringGen draws strings under brand B.
func StringGen[B any]() *rapid.Generator[strong.String[B]] {
	return rapid.Map(rapid.String(), strong.NewString[B])
}

// GUIDGen draws random UUIDs under brand B.
func GUIDGen[B any]() *rapid.Generator[strong.GUID[B]] {
	return rapid.Map(UUIDGen(), strong.NewGUID[B])
}

// Int32Gen draws any int32 under brand B.
func Int32Gen[B any]() *rapid.Generator[strong.Int32[B]] {
	return rapid.Map(rapid.Int32(), strong.NewInt32[B])
}

// Int64Gen draws any int64 under brand B.
func Int64Gen[B any]() *rapid.Generator[strong.Int64[B]] {
	return rapid.Map(rapid.Int64(), strong.NewInt64[B])
}

// DecimalValueGen draws decimals under brand B.
func DecimalValueGen[B any]() *rapid.Generator[strong.Decimal[B]] {
	return rapid.Map(DecimalGen(), strong.NewDecimal[B])
}

// CharGen draws valid runes under brand B.
func CharGen[B any]() *rapid.Generator[strong.Char[B]] {
	return rapid.Map(RuneGen(), strong.NewChar[B])
}

// DateTimeGen draws wall-clock times under brand B.
func DateTimeGen[B any]() *rapid.Generator[strong.DateTime[B]] {
	return rapid.Map(TimeGen(), strong.NewDateTime[B])
}

// DateTimeOffsetGen draws instants with second-granular offsets under brand B.
func DateTimeOffsetGen[B any]() *rapid.Generator[strong.DateTimeOffset[B]] {
	return rapid.Map(TimeGen(), strong.NewDateTimeOffset[B])
}

// EmailGen generates valid email addresses.
func EmailGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		local := rapid.StringMatching(`[a-z][a-z0-9]{2,10}`).Draw(t, "local")
		domain := rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "domain")
		tld := rapid.SampledFrom([]string{"com", "org", "net", "io", "dev"}).Draw(t, "tld")
		return fmt.Sprintf("%s@%s.%s", local, domain, tld)
	})
}

// PhoneNumberGen generates E.164 phone numbers.
func PhoneNumberGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		countryCode := rapid.SampledFrom([]string{"1", "44", "49", "33", "81"}).Draw(t, "country")
		number := rapid.StringMatching(`[0-9]{10}`).Draw(t, "number")
		return fmt.Sprintf("+%s%s", countryCode, number)
	})
}

// ULIDGen generates ULID strings in Crockford's Base32 with a timestamp
// that fits 48 bits.
func ULIDGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		chars := "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
		var b strings.Builder
		b.WriteByte(chars[rapid.IntRange(0, 7).Draw(t, "head")])
		for i := 1; i < 26; i++ {
			b.WriteByte(chars[rapid.IntRange(0, 31).Draw(t, "char")])
		}
		return b.String()
	})
}

// ISBN13Gen generates ISBN-13 numbers with a correct check digit.
func ISBN13Gen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		prefix := rapid.SampledFrom([]string{"978", "979"}).Draw(t, "prefix")
		body := prefix + rapid.StringMatching(`[0-9]{9}`).Draw(t, "body")
		sum := 0
		for i, c := range body {
			d := int(c - '0')
			if i%2 == 1 {
				d *= 3
			}
			sum += d
		}
		return fmt.Sprintf("%s%d", body, (10-sum%10)%10)
	})
}
