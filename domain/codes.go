package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/authcorp/strongtypes/strong"
)

type isbn struct{}

func (isbn) BrandName() string { return "isbn" }

func (isbn) Validate(v string) error {
	return checkTag(v, "isbn", "an ISBN")
}

// ISBN is an ISBN-10 or ISBN-13 with a valid check digit. Up to four
// hyphens and four spaces are allowed as separators.
type ISBN = strong.String[isbn]

// NewISBN trims and upper-cases raw (for the X check digit), then validates it.
func NewISBN(raw string) (ISBN, error) {
	return strong.Create[ISBN](strings.ToUpper(strings.TrimSpace(raw)))
}

// MustISBN is NewISBN that panics on invalid input.
func MustISBN(raw string) ISBN {
	return must(NewISBN(raw))
}

// ISBNCanonical returns the 13-digit form without separators. ISBN-10
// values are converted with the 978 prefix. It returns "" for an invalid ISBN.
func ISBNCanonical(i ISBN) string {
	if i.Validate() != nil {
		return ""
	}
	digits := isbnDigits(i.Value())
	if len(digits) == 13 {
		return digits
	}
	body := "978" + digits[:9]
	return body + string(rune('0'+isbn13Check(body)))
}

func isbnDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '-' || r == ' ':
		case r == 'x':
			b.WriteRune('X')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isbn13Check computes the check digit of a 12-digit body.
func isbn13Check(body string) int {
	sum := 0
	for i := range 12 {
		n := int(body[i] - '0')
		if i%2 == 1 {
			n *= 3
		}
		sum += n
	}
	return (10 - sum%10) % 10
}

var skuPattern = regexp.MustCompile(`^[A-Z0-9]+(?:-[A-Z0-9]+)*$`)

const maxSKULength = 32

type sku struct{}

func (sku) BrandName() string { return "sku" }

func (sku) Validate(v string) error {
	if len(v) < 3 || len(v) > maxSKULength {
		return errors.New("must be 3 to 32 characters")
	}
	if !skuPattern.MatchString(v) {
		return errors.New("must be upper-case alphanumeric segments joined by '-'")
	}
	return nil
}

// SKU is a stock keeping unit such as ABC-123.
type SKU = strong.String[sku]

// NewSKU trims and upper-cases raw, then validates it.
func NewSKU(raw string) (SKU, error) {
	return strong.Create[SKU](strings.ToUpper(strings.TrimSpace(raw)))
}

// MustSKU is NewSKU that panics on invalid input.
func MustSKU(raw string) SKU {
	return must(NewSKU(raw))
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type slug struct{}

func (slug) BrandName() string { return "slug" }

func (slug) Validate(v string) error {
	if !slugPattern.MatchString(v) {
		return errors.New("must be lower-case alphanumeric words joined by '-'")
	}
	return nil
}

// Slug is a URL path segment such as "hello-world".
type Slug = strong.String[slug]

// NewSlug trims raw, then validates it.
func NewSlug(raw string) (Slug, error) {
	return strong.Create[Slug](strings.TrimSpace(raw))
}

// MustSlug is NewSlug that panics on invalid input.
func MustSlug(raw string) Slug {
	return must(NewSlug(raw))
}

// Slugify derives a slug from free text: ASCII letters and digits are kept
// lower-cased and every other run of characters becomes a single '-'.
func Slugify(text string) (Slug, error) {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return NewSlug(b.String())
}

type hexColor struct{}

func (hexColor) BrandName() string { return "hexcolor" }

func (hexColor) Validate(v string) error {
	if err := checkTag(v, "hexcolor", "a hex color"); err != nil {
		return err
	}
	if v != strings.ToLower(v) {
		return errors.New("must be lower case")
	}
	return nil
}

// HexColor is a CSS hex color in lower case.
type HexColor = strong.String[hexColor]

// NewHexColor trims and lower-cases raw, then validates it.
func NewHexColor(raw string) (HexColor, error) {
	return strong.Create[HexColor](strings.ToLower(strings.TrimSpace(raw)))
}

// MustHexColor is NewHexColor that panics on invalid input.
func MustHexColor(raw string) HexColor {
	return must(NewHexColor(raw))
}

type country struct{}

func (country) BrandName() string { return "country" }

func (country) Validate(v string) error {
	return checkTag(v, "iso3166_1_alpha2", "an ISO 3166-1 alpha-2 country code")
}

// CountryCode is an ISO 3166-1 alpha-2 code.
type CountryCode = strong.String[country]

// NewCountryCode trims and upper-cases raw, then validates it.
func NewCountryCode(raw string) (CountryCode, error) {
	return strong.Create[CountryCode](strings.ToUpper(strings.TrimSpace(raw)))
}

// MustCountryCode is NewCountryCode that panics on invalid input.
func MustCountryCode(raw string) CountryCode {
	return must(NewCountryCode(raw))
}

type currency struct{}

func (currency) BrandName() string { return "currency" }

func (currency) Validate(v string) error {
	return checkTag(v, "iso4217", "an ISO 4217 currency code")
}

// CurrencyCode is an ISO 4217 code.
type CurrencyCode = strong.String[currency]

// NewCurrencyCode trims and upper-cases raw, then validates it.
func NewCurrencyCode(raw string) (CurrencyCode, error) {
	return strong.Create[CurrencyCode](strings.ToUpper(strings.TrimSpace(raw)))
}

// MustCurrencyCode is NewCurrencyCode that panics on invalid input.
func MustCurrencyCode(raw string) CurrencyCode {
	return must(NewCurrencyCode(raw))
}

// Common currency codes.
var (
	USD = MustCurrencyCode("USD")
	EUR = MustCurrencyCode("EUR")
	GBP = MustCurrencyCode("GBP")
	JPY = MustCurrencyCode("JPY")
	BRL = MustCurrencyCode("BRL")
	CHF = MustCurrencyCode("CHF")
)

// minorUnits maps currencies whose minor unit is not 2 digits.
var minorUnits = map[string]int32{
	"JPY": 0, "KRW": 0, "CLP": 0, "ISK": 0, "VND": 0,
	"BHD": 3, "KWD": 3, "OMR": 3, "TND": 3, "JOD": 3,
}

// CurrencyDecimals returns the number of minor-unit digits of c, 2 unless
// the currency is known to differ.
func CurrencyDecimals(c CurrencyCode) int32 {
	if d, ok := minorUnits[c.Value()]; ok {
		return d
	}
	return 2
}

type grade struct{}

func (grade) BrandName() string { return "grade" }

func (grade) Validate(v rune) error {
	if v < 'A' || v > 'F' {
		return errors.New("must be a letter from A to F")
	}
	return nil
}

// Grade is a letter grade from A to F.
type Grade = strong.Char[grade]

// NewGrade upper-cases r, then validates it.
func NewGrade(r rune) (Grade, error) {
	return strong.Create[Grade](unicode.ToUpper(r))
}

// MustGrade is NewGrade that panics on invalid input.
func MustGrade(r rune) Grade {
	return must(NewGrade(r))
}
