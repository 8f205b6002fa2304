// Package persist passes strong values to and from database/sql.
//
// Strong types implement sql.Scanner, so they can be scanned directly or
// used as struct fields with sqlx. For query arguments, wrap them with Arg,
// or use Exec, Get and Select, which wrap every strong argument themselves.
package persist

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/authcorp/strongtypes/strong"
)

type arg struct {
	v strong.Underlier
}

// Arg returns x as a driver.Valuer. GUIDs and decimals are written as text,
// 32-bit integers and runes widen to int64, and strings, int64 and time.Time
// pass through.
func Arg(x strong.Underlier) driver.Valuer {
	return arg{v: x}
}

// Value implements driver.Valuer.
func (a arg) Value() (driver.Value, error) {
	switch p := a.v.Underlying().(type) {
	case string:
		return p, nil
	case uuid.UUID:
		return p.String(), nil
	case int32:
		return int64(p), nil
	case int64:
		return p, nil
	case decimal.Decimal:
		return p.String(), nil
	case time.Time:
		return p, nil
	default:
		return nil, fmt.Errorf("persist: unsupported primitive %T", p)
	}
}

// Args wraps every strong value in args with Arg and leaves the rest alone.
func Args(args ...any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		if u, ok := a.(strong.Underlier); ok {
			out[i] = Arg(u)
			continue
		}
		out[i] = a
	}
	return out
}

// Exec runs query with strong arguments wrapped.
func Exec(ctx context.Context, db sqlx.ExecerContext, query string, args ...any) (sql.Result, error) {
	res, err := db.ExecContext(ctx, query, Args(args...)...)
	if err != nil {
		return nil, fmt.Errorf("persist: exec: %w", err)
	}
	return res, nil
}

// Get scans a single row into T, which may be a strong type or a struct
// with db tags. sql.ErrNoRows is returned wrapped when there is no row.
func Get[T any](ctx context.Context, db sqlx.QueryerContext, query string, args ...any) (T, error) {
	var v T
	if err := sqlx.GetContext(ctx, db, &v, query, Args(args...)...); err != nil {
		return v, fmt.Errorf("persist: get: %w", err)
	}
	return v, nil
}

// Select scans every row into a slice of T.
func Select[T any](ctx context.Context, db sqlx.QueryerContext, query string, args ...any) ([]T, error) {
	var vs []T
	if err := sqlx.SelectContext(ctx, db, &vs, query, Args(args...)...); err != nil {
		return nil, fmt.Errorf("persist: select: %w", err)
	}
	return vs, nil
}
