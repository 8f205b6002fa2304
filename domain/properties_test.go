package domain_test

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/authcorp/strongtypes/domain"
	"github.com/authcorp/strongtypes/strongtest"
)

func TestPropertyGeneratedEmailsAreValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := strongtest.EmailGen().Draw(t, "email")
		e, err := domain.NewEmail(raw)
		if err != nil {
			t.Fatalf("NewEmail(%q): %v", raw, err)
		}
		if domain.EmailLocalPart(e)+"@"+domain.EmailDomain(e) != raw {
			t.Fatalf("local and domain parts of %q do not rebuild it", raw)
		}
	})
}

func TestPropertyGeneratedPhoneNumbersAreValid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := strongtest.PhoneNumberGen().Draw(t, "phone")
		p, err := domain.NewPhoneNumber(raw)
		if err != nil {
			t.Fatalf("NewPhoneNumber(%q): %v", raw, err)
		}
		if code := domain.PhoneCountryCode(p); code == "" || raw[1:1+len(code)] != code {
			t.Fatalf("country code %q is not a prefix of %q", code, raw)
		}
	})
}

func TestPropertyISBN13CanonicalIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := strongtest.ISBN13Gen().Draw(t, "isbn")
		i, err := domain.NewISBN(raw)
		if err != nil {
			t.Fatalf("NewISBN(%q): %v", raw, err)
		}
		if got := domain.ISBNCanonical(i); got != raw {
			t.Fatalf("ISBNCanonical(%q) = %q", raw, got)
		}
	})
}

func TestPropertyULIDsParseAndKeepTime(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := strongtest.ULIDGen().Draw(t, "ulid")
		if _, err := domain.NewULID(raw); err != nil {
			t.Fatalf("NewULID(%q): %v", raw, err)
		}

		ms := rapid.Int64Range(0, 1<<48-1).Draw(t, "ms")
		at := time.UnixMilli(ms)
		u, err := domain.NewULIDGenerator(nil).Generate(at)
		if err != nil {
			t.Fatal(err)
		}
		if !u.IsValidFormat() {
			t.Fatalf("generated ULID %s is invalid", u)
		}
		if got := domain.ULIDTime(u); !got.Equal(at) {
			t.Fatalf("ULIDTime = %s, want %s", got, at)
		}
	})
}

func TestPropertyGeneratedULIDsStrictlyIncrease(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := domain.NewULIDGenerator(nil)
		base := rapid.Int64Range(1<<40, 1<<44).Draw(t, "base")
		steps := rapid.SliceOfN(rapid.Int64Range(-50, 50), 1, 40).Draw(t, "steps")

		prev, err := gen.Generate(time.UnixMilli(base))
		if err != nil {
			t.Fatal(err)
		}
		for _, step := range steps {
			next, err := gen.Generate(time.UnixMilli(base + step))
			if err != nil {
				t.Fatal(err)
			}
			if !prev.Less(next) {
				t.Fatalf("%s is not after %s", next, prev)
			}
			prev = next
		}
	})
}

func TestPropertySlugifyYieldsValidSlugs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		s, err := domain.Slugify(text)
		if err == nil && !s.IsValidFormat() {
			t.Fatalf("Slugify(%q) = %q is not a valid slug", text, s)
		}
	})
}
