package strong_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"pgregory.net/rapid"

	"github.com/authcorp/strongtypes/strong"
	"github.com/authcorp/strongtypes/strongtest"
)

func TestPropertyFromRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := strongtest.UUIDGen().Draw(t, "uuid")
		if strong.From[UserID](raw).Value() != raw {
			t.Fatal("GUID value changed in construction")
		}
		n := rapid.Int32().Draw(t, "int32")
		if strong.From[Priority](n).Value() != n {
			t.Fatal("Int32 value changed in construction")
		}
		s := rapid.String().Draw(t, "string")
		if strong.From[Email](s).Value() != s {
			t.Fatal("String value changed in construction")
		}
	})
}

func TestPropertyEqualMatchesValueEquality(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64().Draw(t, "a")
		b := rapid.Int64().Draw(t, "b")
		x, y := strong.NewInt64[sequence](a), strong.NewInt64[sequence](b)

		if x.Equal(y) != (a == b) {
			t.Fatalf("Equal(%d, %d) disagrees with ==", a, b)
		}
		if x.Equal(y) && x.Hash() != y.Hash() {
			t.Fatal("equal values hash differently")
		}
	})
}

func TestPropertyCompareMatchesPrimitive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int32().Draw(t, "a")
		b := rapid.Int32().Draw(t, "b")
		got := strong.NewInt32[priority](a).Compare(strong.NewInt32[priority](b))

		switch {
		case a < b && got >= 0, a > b && got <= 0, a == b && got != 0:
			t.Fatalf("Compare(%d, %d) = %d", a, b, got)
		}
	})
}

func TestPropertyCompareIsAntisymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := strongtest.StringGen[label]().Draw(t, "a")
		b := strongtest.StringGen[label]().Draw(t, "b")
		if sign(a.Compare(b)) != -sign(b.Compare(a)) {
			t.Fatalf("Compare not antisymmetric for %q, %q", a, b)
		}
	})
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

func TestPropertyParseStringRoundTrip(t *testing.T) {
	t.Run("guid", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			g := strongtest.GUIDGen[userID]().Draw(t, "guid")
			back, err := strong.Parse[UserID](g.String())
			if err != nil || !back.Equal(g) {
				t.Fatalf("round trip of %s failed: %v", g, err)
			}
		})
	})

	t.Run("int64", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := strongtest.Int64Gen[sequence]().Draw(t, "int64")
			back, err := strong.Parse[Sequence](v.String())
			if err != nil || !back.Equal(v) {
				t.Fatalf("round trip of %s failed: %v", v, err)
			}
		})
	})

	t.Run("decimal", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := strongtest.DecimalValueGen[amount]().Draw(t, "decimal")
			back, err := strong.Parse[Amount](v.String())
			if err != nil || !back.Equal(v) || back.Hash() != v.Hash() {
				t.Fatalf("round trip of %s failed: %v", v, err)
			}
		})
	})

	t.Run("char", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := strongtest.CharGen[grade]().Draw(t, "char")
			back, err := strong.Parse[Grade](v.String())
			if err != nil || !back.Equal(v) {
				t.Fatalf("round trip of %U failed: %v", v.Value(), err)
			}
		})
	})

	t.Run("datetime", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := strongtest.DateTimeGen[born]().Draw(t, "datetime")
			back, err := strong.Parse[BirthDate](v.String())
			if err != nil || !back.Equal(v) || back.Hash() != v.Hash() {
				t.Fatalf("round trip of %s failed: %v", v, err)
			}
		})
	})

	t.Run("datetimeoffset", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := strongtest.DateTimeOffsetGen[seen]().Draw(t, "offset")
			back, err := strong.Parse[SeenAt](v.String())
			if err != nil || !back.Equal(v) {
				t.Fatalf("round trip of %s failed: %v", v, err)
			}
		})
	})
}

func TestPropertyDateTimeOffsetHashFollowsInstant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := strongtest.DateTimeOffsetGen[seen]().Draw(t, "offset")
		zone := time.FixedZone("", rapid.IntRange(-12, 12).Draw(t, "hours")*3600)
		moved := strong.NewDateTimeOffset[seen](v.Value().In(zone))

		if !v.Equal(moved) || v.Hash() != moved.Hash() {
			t.Fatalf("%s and %s should be the same instant", v, moved)
		}
	})
}

func TestPropertyFromSlicePreservesOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOf(strongtest.UUIDGen()).Draw(t, "uuids")
		got := strong.FromSlice[UserID](raw)
		if len(got) != len(raw) {
			t.Fatalf("len %d, want %d", len(got), len(raw))
		}
		for i := range raw {
			if got[i].Value() != raw[i] {
				t.Fatalf("index %d: %s, want %s", i, got[i], raw[i])
			}
		}
	})
}

func TestPropertySortIsOrdered(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(strongtest.Int32Gen[priority]()).Draw(t, "priorities")
		strong.Sort(xs)
		for i := 1; i < len(xs); i++ {
			if xs[i-1].Greater(xs[i]) {
				t.Fatalf("not sorted at %d: %s > %s", i, xs[i-1], xs[i])
			}
		}
	})
}

func TestPropertyTryParseNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "input")
		if g, ok := strong.TryParse[UserID](s); !ok && g != (UserID{}) {
			t.Fatal("failed parse returned a non-zero GUID")
		}
		_, err := uuid.Parse(s)
		if _, ok := strong.TryParseGUID[userID](s); ok != (err == nil) {
			t.Fatalf("TryParseGUID(%q) = %v, uuid.Parse error %v", s, ok, err)
		}
	})
}
