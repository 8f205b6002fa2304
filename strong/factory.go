package strong

import (
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/authcorp/strongtypes/internal/registry"
)

type factoryKey struct {
	typ  reflect.Type
	prim reflect.Type
}

type factory struct {
	build any // func(P) T
	via   string
	err   error
}

// factories caches one constructor per (T, P) pair, failures included.
var factories = registry.New[factoryKey, factory]()

// shape is a specialization used as a conversion source for defined types
// declared over it, e.g. `type Legacy strong.Int32[legacy]`.
type shape struct {
	typ  reflect.Type
	wrap func(any) any
}

func shapeOf[S Factory[P, S], P any]() shape {
	var s S
	return shape{
		typ:  reflect.TypeFor[S](),
		wrap: func(v any) any { return s.New(v.(P)) },
	}
}

// Char shares int32's layout, so Int32 covers both.
var shapes = map[reflect.Type]shape{
	reflect.TypeFor[string]():          shapeOf[String[struct{}], string](),
	reflect.TypeFor[uuid.UUID]():       shapeOf[GUID[struct{}], uuid.UUID](),
	reflect.TypeFor[int32]():           shapeOf[Int32[struct{}], int32](),
	reflect.TypeFor[int64]():           shapeOf[Int64[struct{}], int64](),
	reflect.TypeFor[decimal.Decimal](): shapeOf[Decimal[struct{}], decimal.Decimal](),
	reflect.TypeFor[time.Time]():       shapeOf[DateTimeOffset[struct{}], time.Time](),
}

// From constructs a T from v through the cached constructor for T.
// It panics with a *ConstructionError when T has no usable constructor.
func From[T, P any](v P) T {
	return mustFactory[T, P]()(v)
}

// Construct is From returning the construction error instead of panicking.
func Construct[T, P any](v P) (T, error) {
	build, err := factoryFor[T, P]()
	if err != nil {
		var zero T
		return zero, err
	}
	return build(v), nil
}

// Register installs build as the constructor of T from P, replacing any
// cached one. Use it for types that neither implement Factory nor wrap a
// specialization directly.
func Register[T, P any](build func(P) T) {
	key := keyOf[T, P]()
	factories.Register(key, factory{build: build, via: "registered"})
	logger().Debug("strong: constructor registered", "type", key.typ.String(), "primitive", key.prim.String())
}

// Cached reports whether a constructor for T from P has been resolved or registered.
func Cached[T, P any]() bool {
	return factories.Has(keyOf[T, P]())
}

func keyOf[T, P any]() factoryKey {
	return factoryKey{typ: reflect.TypeFor[T](), prim: reflect.TypeFor[P]()}
}

func mustFactory[T, P any]() func(P) T {
	build, err := factoryFor[T, P]()
	if err != nil {
		panic(err)
	}
	return build
}

func factoryFor[T, P any]() (func(P) T, error) {
	key := keyOf[T, P]()
	f := factories.ComputeIfAbsent(key, func() factory {
		return resolve[T, P](key)
	})
	if f.err != nil {
		return nil, f.err
	}
	return f.build.(func(P) T), nil
}

func resolve[T, P any](key factoryKey) factory {
	var f factory
	var zero T
	if fac, ok := any(zero).(Factory[P, T]); ok {
		f = factory{build: func(v P) T { return fac.New(v) }, via: "method"}
	} else if build, ok := conversion[T, P](key); ok {
		f = factory{build: build, via: "conversion"}
	} else {
		f = factory{err: &ConstructionError{Type: key.typ, Primitive: key.prim}}
		logger().Debug("strong: no constructor", "type", key.typ.String(), "primitive", key.prim.String())
		return f
	}
	logger().Debug("strong: constructor cached", "type", key.typ.String(), "primitive", key.prim.String(), "via", f.via)
	return f
}

func conversion[T, P any](key factoryKey) (func(P) T, bool) {
	sh, ok := shapes[key.prim]
	if !ok || key.typ == sh.typ || !sh.typ.ConvertibleTo(key.typ) {
		return nil, false
	}
	typ := key.typ
	return func(v P) T {
		return reflect.ValueOf(sh.wrap(v)).Convert(typ).Interface().(T)
	}, true
}
