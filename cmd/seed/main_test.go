package main

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bakhaar/internal/core/id"
	"bakhaar/pkg/logger"
)

type dbCall struct {
	sql  string
	args []any
}

// fakeDB implements postgres.Querier and records every statement with its
// arguments so tests can check the query shape without a database.
type fakeDB struct {
	existingUsers map[string]id.ID
	calls         []dbCall
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.calls = append(f.calls, dbCall{sql: sql, args: args})

	if len(args) == 1 {
		if username, ok := args[0].(string); ok {
			if existing, ok := f.existingUsers[username]; ok {
				return scanFunc(func(dest ...any) error {
					*(dest[0].(*id.ID)) = existing
					return nil
				})
			}
		}
	}
	return scanFunc(func(...any) error { return pgx.ErrNoRows })
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, dbCall{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected Query call")
}

type scanFunc func(dest ...any) error

func (fn scanFunc) Scan(dest ...any) error { return fn(dest...) }

func (c dbCall) inserts(table string) bool {
	return regexp.MustCompile(`INSERT INTO ` + table + `\b`).MatchString(c.sql)
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Development: true})
	require.NoError(t, err)
	return log
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// requireArgsMatchPlaceholders fails when a statement binds a different number
// of arguments than it has placeholders. pgx rejects such statements at query
// time, so a mismatch would make seeding fail on a live database.
func requireArgsMatchPlaceholders(t *testing.T, calls []dbCall) {
	t.Helper()
	for _, call := range calls {
		highest := 0
		for _, m := range placeholderRe.FindAllStringSubmatch(call.sql, -1) {
			n, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			if n > highest {
				highest = n
			}
		}
		require.Len(t, call.args, highest, "statement %q", call.sql)
	}
}

func TestSeedUsersCreatesMissingAccounts(t *testing.T) {
	db := &fakeDB{}

	err := seedUsers(context.Background(), db, testLogger(t))
	require.NoError(t, err)
	requireArgsMatchPlaceholders(t, db.calls)

	var inserted []dbCall
	for _, call := range db.calls {
		if call.inserts("wh_users") {
			inserted = append(inserted, call)
		}
	}
	require.Len(t, inserted, 4)

	// username -> plaintext password the account must authenticate with
	passwords := map[string]string{
		"maxamed": "maxamed123",
		"abdinur": "abdinur123",
		"salah":   "salah123",
		"admin":   "admin123",
	}
	roles := map[string]string{
		"maxamed": "wasiir",
		"abdinur": "agaasime",
		"salah":   "storekeeper",
		"admin":   "wasiir",
	}

	for _, call := range inserted {
		username := call.args[1].(string)
		hash := call.args[2].(string)

		password, ok := passwords[username]
		require.True(t, ok, "unexpected user %q", username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)))
		assert.Equal(t, roles[username], call.args[4])
		delete(passwords, username)
	}
	assert.Empty(t, passwords, "every account should be inserted exactly once")
}

func TestSeedUsersSkipsExisting(t *testing.T) {
	db := &fakeDB{existingUsers: map[string]id.ID{
		"maxamed": id.New(),
		"admin":   id.New(),
	}}

	err := seedUsers(context.Background(), db, testLogger(t))
	require.NoError(t, err)

	var insertedUsers []string
	for _, call := range db.calls {
		if call.inserts("wh_users") {
			insertedUsers = append(insertedUsers, call.args[1].(string))
		}
	}
	assert.ElementsMatch(t, []string{"abdinur", "salah"}, insertedUsers)
}

func TestSeedDemoDataStatementShape(t *testing.T) {
	db := &fakeDB{}

	err := seedDemoData(context.Background(), db, testLogger(t))
	require.NoError(t, err)
	requireArgsMatchPlaceholders(t, db.calls)

	items, activities := 0, 0
	for _, call := range db.calls {
		switch {
		case call.inserts("items"):
			items++
		case call.inserts("activities"):
			activities++
		}
	}
	assert.Equal(t, 3, items)
	assert.Equal(t, 4, activities)
}
