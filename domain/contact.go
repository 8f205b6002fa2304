package domain

import (
	"errors"
	"fmt"
	"net/netip"
	"net/url"
	"strings"

	"github.com/authcorp/strongtypes/strong"
)

var errEmpty = errors.New("cannot be empty")

const maxEmailLength = 254

var emailTag = fmt.Sprintf("max=%d,email", maxEmailLength)

type email struct{}

func (email) BrandName() string { return "email" }

func (email) Validate(v string) error {
	return checkTag(v, emailTag, "an email address")
}

// Email is an email address. NewEmail trims and lower-cases its input, but
// strong.From keeps the text verbatim and Equal is ordinal, so
// From("a@b.com") and From("A@B.com") are different values.
type Email = strong.String[email]

// NewEmail trims and lower-cases raw, then validates it.
func NewEmail(raw string) (Email, error) {
	return strong.Create[Email](strings.ToLower(strings.TrimSpace(raw)))
}

// MustEmail is NewEmail that panics on invalid input.
func MustEmail(raw string) Email {
	return must(NewEmail(raw))
}

// EmailLocalPart returns the part before '@'.
func EmailLocalPart(e Email) string {
	local, _, _ := strings.Cut(e.Value(), "@")
	return local
}

// EmailDomain returns the part after '@', or "" when there is none.
func EmailDomain(e Email) string {
	_, domain, _ := strings.Cut(e.Value(), "@")
	return domain
}

// AllowedSchemes lists the URL schemes a URL accepts.
var AllowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ftps":  true,
}

type link struct{}

func (link) BrandName() string { return "url" }

func (link) Validate(v string) error {
	_, err := parseURL(v)
	return err
}

func parseURL(v string) (*url.URL, error) {
	if err := checkTag(v, "url", "a URL"); err != nil {
		return nil, err
	}
	parsed, err := url.Parse(v)
	if err != nil {
		return nil, err
	}
	if !AllowedSchemes[strings.ToLower(parsed.Scheme)] {
		return nil, fmt.Errorf("unsupported scheme %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("must have a host")
	}
	return parsed, nil
}

// URL is an absolute URL with an allowed scheme and a host.
type URL = strong.String[link]

// NewURL trims raw, then validates it.
func NewURL(raw string) (URL, error) {
	return strong.Create[URL](strings.TrimSpace(raw))
}

// MustURL is NewURL that panics on invalid input.
func MustURL(raw string) URL {
	return must(NewURL(raw))
}

// URLHost returns the host, port included, or "" when u does not parse.
func URLHost(u URL) string {
	parsed, err := parseURL(u.Value())
	if err != nil {
		return ""
	}
	return parsed.Host
}

// URLScheme returns the lower-cased scheme, or "" when u does not parse.
func URLScheme(u URL) string {
	parsed, err := parseURL(u.Value())
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Scheme)
}

// URLIsSecure reports whether u uses https or ftps.
func URLIsSecure(u URL) bool {
	scheme := URLScheme(u)
	return scheme == "https" || scheme == "ftps"
}

// e164Tag rejects a leading zero, which the e164 tag alone lets through.
const e164Tag = "e164,startsnotwith=+0"

type phone struct{}

func (phone) BrandName() string { return "phone" }

func (phone) Validate(v string) error {
	return checkTag(v, e164Tag, "an E.164 number")
}

// PhoneNumber is an E.164 phone number such as +4930123456.
type PhoneNumber = strong.String[phone]

// NewPhoneNumber drops everything but digits and '+', then validates.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	return strong.Create[PhoneNumber](normalizePhone(raw))
}

// MustPhoneNumber is NewPhoneNumber that panics on invalid input.
func MustPhoneNumber(raw string) PhoneNumber {
	return must(NewPhoneNumber(raw))
}

func normalizePhone(value string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, value)
}

// Two-digit ITU calling codes; 1 and 7 are the only one-digit codes and
// everything else uses three digits.
var twoDigitCallingCodes = map[string]bool{
	"20": true, "27": true, "30": true, "31": true, "32": true, "33": true,
	"34": true, "36": true, "39": true, "40": true, "41": true, "43": true,
	"44": true, "45": true, "46": true, "47": true, "48": true, "49": true,
	"51": true, "52": true, "53": true, "54": true, "55": true, "56": true,
	"57": true, "58": true, "60": true, "61": true, "62": true, "63": true,
	"64": true, "65": true, "66": true, "81": true, "82": true, "84": true,
	"86": true, "90": true, "91": true, "92": true, "93": true, "94": true,
	"95": true, "98": true,
}

// PhoneCountryCode returns the ITU calling code without '+', or "" when p
// is not a valid E.164 number.
func PhoneCountryCode(p PhoneNumber) string {
	v := p.Value()
	if p.Validate() != nil {
		return ""
	}
	digits := v[1:]
	switch {
	case digits[0] == '1' || digits[0] == '7':
		return digits[:1]
	case twoDigitCallingCodes[digits[:2]]:
		return digits[:2]
	case len(digits) >= 3:
		return digits[:3]
	}
	return digits
}

type ip struct{}

func (ip) BrandName() string { return "ip" }

func (ip) Validate(v string) error {
	return checkTag(v, "ip", "an IP address")
}

// IPAddress is an IPv4 or IPv6 address in text form.
type IPAddress = strong.String[ip]

// NewIPAddress validates raw and stores the address in canonical form.
func NewIPAddress(raw string) (IPAddress, error) {
	raw = strings.TrimSpace(raw)
	if addr, err := netip.ParseAddr(raw); err == nil {
		raw = addr.String()
	}
	return strong.Create[IPAddress](raw)
}

// MustIPAddress is NewIPAddress that panics on invalid input.
func MustIPAddress(raw string) IPAddress {
	return must(NewIPAddress(raw))
}

// IPAddressIs4 reports whether a is an IPv4 address.
func IPAddressIs4(a IPAddress) bool {
	addr, err := netip.ParseAddr(a.Value())
	return err == nil && addr.Is4()
}
