package persist_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/authcorp/strongtypes/domain"
	"github.com/authcorp/strongtypes/persist"
	"github.com/authcorp/strongtypes/strong"
)

const schema = `
CREATE TABLE users (
	id         TEXT PRIMARY KEY,
	email      TEXT NOT NULL,
	priority   INTEGER NOT NULL,
	balance    TEXT NOT NULL,
	grade      INTEGER NOT NULL,
	created_at TEXT NOT NULL,
	born       TEXT NOT NULL
)`

type userRow struct {
	ID        domain.UserID    `db:"id"`
	Email     domain.Email     `db:"email"`
	Priority  domain.Priority  `db:"priority"`
	Balance   domain.Amount    `db:"balance"`
	Grade     domain.Grade     `db:"grade"`
	CreatedAt domain.Timestamp `db:"created_at"`
	Born      domain.BirthDate `db:"born"`
}

func openDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: gets its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func insert(t *testing.T, db *sqlx.DB, u userRow) {
	t.Helper()
	_, err := persist.Exec(context.Background(), db,
		`INSERT INTO users (id, email, priority, balance, grade, created_at, born) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Priority, u.Balance, u.Grade, u.CreatedAt, u.Born,
	)
	require.NoError(t, err)
}

func sampleUser(email string) userRow {
	return userRow{
		ID:        domain.GenerateUserID(),
		Email:     domain.MustEmail(email),
		Priority:  domain.MustPriority(2),
		Balance:   domain.MustAmount(decimal.RequireFromString("12.50")),
		Grade:     domain.MustGrade('B'),
		CreatedAt: domain.FromUnix(1709287200),
		Born:      domain.MustBirthDate(time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)),
	}
}

func TestRoundTripThroughSQLite(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	want := sampleUser("ada@example.com")
	insert(t, db, want)

	got, err := persist.Get[userRow](ctx, db, `SELECT * FROM users WHERE id = ?`, want.ID)
	require.NoError(t, err)

	assert.True(t, want.ID.Equal(got.ID))
	assert.True(t, want.Email.Equal(got.Email))
	assert.True(t, want.Priority.Equal(got.Priority))
	assert.True(t, want.Balance.Equal(got.Balance))
	assert.True(t, want.Grade.Equal(got.Grade))
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "%s != %s", want.CreatedAt, got.CreatedAt)
	assert.True(t, want.Born.Equal(got.Born), "%s != %s", want.Born, got.Born)
}

func TestSelectScansStrongColumns(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	b := sampleUser("b@example.com")
	a := sampleUser("a@example.com")
	insert(t, db, b)
	insert(t, db, a)

	ids, err := persist.Select[domain.UserID](ctx, db, `SELECT id FROM users ORDER BY email`)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.True(t, ids[0].Equal(a.ID))
	assert.True(t, ids[1].Equal(b.ID))

	email, err := persist.Get[domain.Email](ctx, db, `SELECT email FROM users WHERE id = ?`, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", email.Value())
}

func TestGetNoRows(t *testing.T) {
	db := openDB(t)
	_, err := persist.Get[userRow](context.Background(), db, `SELECT * FROM users WHERE id = ?`, domain.GenerateUserID())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestArgValues(t *testing.T) {
	id := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   strong.Underlier
		want any
	}{
		{"guid", strong.NewGUID[struct{}](id), "11111111-1111-1111-1111-111111111111"},
		{"string", strong.NewString[struct{}]("x"), "x"},
		{"int32", strong.NewInt32[struct{}](7), int64(7)},
		{"int64", strong.NewInt64[struct{}](-7), int64(-7)},
		{"char", strong.NewChar[struct{}]('é'), int64('é')},
		{"decimal", strong.NewDecimal[struct{}](decimal.RequireFromString("1.50")), "1.5"},
		{"time", strong.NewDateTimeOffset[struct{}](at), at},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := persist.Arg(tt.in).Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgsLeavesPlainValues(t *testing.T) {
	args := persist.Args("plain", 3, domain.MustPriority(1))
	assert.Equal(t, "plain", args[0])
	assert.Equal(t, 3, args[1])
	valuer, ok := args[2].(driver.Valuer)
	require.True(t, ok)
	v, err := valuer.Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}
