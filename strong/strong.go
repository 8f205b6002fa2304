package strong

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Wrapper exposes the wrapped primitive.
type Wrapper[P any] interface {
	Value() P
}

// Underlier exposes the wrapped primitive without its static type.
// Adapters that only see values through reflection or interfaces use it.
type Underlier interface {
	Underlying() any
}

// Factory builds a T from its primitive. The receiver is ignored.
type Factory[P, T any] interface {
	New(P) T
}

// Parser parses a T from text. The receiver is ignored.
type Parser[T any] interface {
	Parse(string) (T, error)
}

// Comparer orders values of the same type.
type Comparer[T any] interface {
	Compare(T) int
}

// Namer lets a brand choose the name used in errors and tooling.
type Namer interface {
	BrandName() string
}

// Validator lets a brand check the format of its values.
type Validator[P any] interface {
	Validate(P) error
}

// Strong is the contract shared by every specialization.
type Strong[P, T any] interface {
	Wrapper[P]
	Underlier
	Factory[P, T]
	Parser[T]
	Comparer[T]
	fmt.Stringer
	Equal(T) bool
	EqualAny(any) bool
	Hash() uint64
	Validate() error
	IsValidFormat() bool
}

// BrandName returns the display name of brand B: its BrandName method when
// it implements Namer, otherwise its Go type name.
func BrandName[B any]() string {
	var b B
	if n, ok := any(b).(Namer); ok {
		return n.BrandName()
	}
	if name := reflect.TypeFor[B]().Name(); name != "" {
		return name
	}
	return "value"
}

func validate[B, P any](v P, show func() string) error {
	var b B
	vd, ok := any(b).(Validator[P])
	if !ok {
		return nil
	}
	if err := vd.Validate(v); err != nil {
		return &ValidationError{Kind: BrandName[B](), Value: show(), Err: err}
	}
	return nil
}

// Parse parses s into T using T's own parser.
func Parse[T Parser[T]](s string) (T, error) {
	var zero T
	return zero.Parse(s)
}

// TryParse is Parse reporting failure as false. On failure the zero T is returned.
func TryParse[T Parser[T]](s string) (T, bool) {
	t, err := Parse[T](s)
	if err != nil {
		var zero T
		return zero, false
	}
	return t, true
}

// TryCreate constructs a T from v only when pred accepts v.
func TryCreate[T, P any](v P, pred func(P) bool) (T, bool) {
	if pred == nil || !pred(v) {
		var zero T
		return zero, false
	}
	return From[T](v), true
}

// Create constructs a T from v and runs its brand validation, if any.
func Create[T, P any](v P) (T, error) {
	t, err := Construct[T](v)
	if err != nil {
		return t, err
	}
	if vd, ok := any(t).(interface{ Validate() error }); ok {
		if err := vd.Validate(); err != nil {
			var zero T
			return zero, err
		}
	}
	return t, nil
}

// FromSlice wraps each primitive in values, preserving order and length.
// A nil slice yields nil.
func FromSlice[T, P any](values []P) []T {
	if values == nil {
		return nil
	}
	build := mustFactory[T, P]()
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = build(v)
	}
	return out
}

// FromSeq wraps every primitive produced by seq, in order. A nil sequence
// yields nil; an empty one yields an empty, non-nil slice.
func FromSeq[T, P any](seq iter.Seq[P]) []T {
	if seq == nil {
		return nil
	}
	build := mustFactory[T, P]()
	out := []T{}
	for v := range seq {
		out = append(out, build(v))
	}
	return out
}

// ComparePtr compares through pointers. A nil pointer sorts after every
// non-nil one and two nils compare equal.
func ComparePtr[T Comparer[T]](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return (*a).Compare(*b)
}

// Sort sorts xs in place by Compare. Equal elements keep their order.
func Sort[T Comparer[T]](xs []T) {
	slices.SortStableFunc(xs, func(a, b T) int { return a.Compare(b) })
}

// Min returns the smallest element of xs by Compare, the first one on ties.
// It reports false for an empty slice.
func Min[T Comparer[T]](xs []T) (T, bool) {
	return pick(xs, func(c int) bool { return c < 0 })
}

// Max returns the largest element of xs by Compare, the first one on ties.
// It reports false for an empty slice.
func Max[T Comparer[T]](xs []T) (T, bool) {
	return pick(xs, func(c int) bool { return c > 0 })
}

func pick[T Comparer[T]](xs []T, better func(int) bool) (T, bool) {
	var best T
	if len(xs) == 0 {
		return best, false
	}
	best = xs[0]
	for _, x := range xs[1:] {
		if better(x.Compare(best)) {
			best = x
		}
	}
	return best, true
}
