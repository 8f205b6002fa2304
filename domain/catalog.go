package domain

import (
	"fmt"
	"strings"

	"github.com/authcorp/strongtypes/internal/registry"
	"github.com/authcorp/strongtypes/strong"
)

// Kind describes one catalog entry by name.
type Kind struct {
	Name        string `json:"name" yaml:"name"`
	Primitive   string `json:"primitive" yaml:"primitive"`
	Description string `json:"description" yaml:"description"`

	check func(string) (string, error)
}

// Check parses and validates raw as this kind and returns its canonical text.
func (k Kind) Check(raw string) (string, error) {
	if k.check == nil {
		return "", fmt.Errorf("domain: kind %q has no checker", k.Name)
	}
	return k.check(raw)
}

var catalog = registry.New[string, Kind]()

// Lookup returns the kind registered under name, ignoring case.
func Lookup(name string) (Kind, bool) {
	return catalog.Get(strings.ToLower(strings.TrimSpace(name)))
}

// Kinds returns every kind ordered by name.
func Kinds() []Kind {
	return catalog.Values(func(a, b string) bool { return a < b })
}

func kind[T fmt.Stringer](name, primitive, description string, parse func(string) (T, error)) Kind {
	return Kind{
		Name:        name,
		Primitive:   primitive,
		Description: description,
		check: func(raw string) (string, error) {
			v, err := parse(raw)
			if err != nil {
				return "", err
			}
			return v.String(), nil
		},
	}
}

type checked[T any] interface {
	strong.Parser[T]
	Validate() error
}

// parseValid parses trimmed text into T and runs T's validation.
func parseValid[T checked[T]](raw string) (T, error) {
	v, err := strong.Parse[T](strings.TrimSpace(raw))
	if err != nil {
		return v, err
	}
	if err := v.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func init() {
	for _, k := range []Kind{
		kind("email", "string", "RFC 5322 email address, lower-cased", NewEmail),
		kind("url", "string", "absolute http, https, ftp or ftps URL with a host", NewURL),
		kind("phone", "string", "E.164 phone number", NewPhoneNumber),
		kind("ip", "string", "IPv4 or IPv6 address", NewIPAddress),
		kind("isbn", "string", "ISBN-10 or ISBN-13 (978/979) with a valid check digit", NewISBN),
		kind("sku", "string", "stock keeping unit: upper-case alphanumeric segments joined by '-'", NewSKU),
		kind("slug", "string", "lower-case alphanumeric words joined by '-'", NewSlug),
		kind("hexcolor", "string", "#rgb, #rgba, #rrggbb or #rrggbbaa color in lower case", NewHexColor),
		kind("country", "string", "ISO 3166-1 alpha-2 country code", NewCountryCode),
		kind("currency", "string", "ISO 4217 currency code", NewCurrencyCode),
		kind("ulid", "string", "26-character Crockford base32 ULID", NewULID),
		kind("firstname", "string", "given name", NewFirstName),
		kind("lastname", "string", "family name", NewLastName),
		kind("fullname", "string", "given and family names", NewFullNameText),
		kind("userid", "uuid", "non-nil user identifier", parseValid[UserID]),
		kind("orderid", "uuid", "non-nil order identifier", parseValid[OrderID]),
		kind("tenantid", "uuid", "non-nil tenant identifier", parseValid[TenantID]),
		kind("priority", "int32", "priority from 1 (highest) to 5", parseValid[Priority]),
		kind("quantity", "int32", "non-negative quantity", parseValid[Quantity]),
		kind("amount", "decimal", "amount with at most 4 fractional digits", parseValid[Amount]),
		kind("timestamp", "time", "non-zero RFC 3339 instant", parseValid[Timestamp]),
		kind("birthdate", "time", "date of birth between 1900-01-01 and today", parseValid[BirthDate]),
		kind("grade", "rune", "letter grade A to F", parseValid[Grade]),
	} {
		catalog.Register(k.Name, k)
	}
}
