// Package sqlite is an alternative ledger backend on an embedded SQLite
// database. The default DSN is ":memory:", so records still live only for
// the process lifetime; a file path merely changes the engine, not the
// product's durability promise.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"grana/internal/core"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// A ":memory:" DSN gives every pool connection its own empty database;
	// pin the pool to one connection so all queries see the same data.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const maxIDAttempts = 10

func (s *Store) Append(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	var lastErr error
	for i := 0; i < maxIDAttempts; i++ {
		t.ID = core.NewID()
		if err := t.Validate(); err != nil {
			return core.Transaction{}, err
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO transactions (id, description, amount, kind, category, date, settled)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Description, t.Amount.Amount.String(), string(t.Kind),
			string(t.Category), t.Date.Format(dateLayout), t.Settled)
		if err == nil {
			slog.InfoContext(ctx, "Transaction saved",
				"id", t.ID, "kind", string(t.Kind), "amount", t.Amount.Amount.String())
			return t, nil
		}
		if !isUniqueViolation(err) {
			return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
		}
		lastErr = err
	}
	return core.Transaction{}, fmt.Errorf("%w: %v", core.ErrIDExhausted, lastErr)
}

const dateLayout = "2006-01-02"

func isUniqueViolation(err error) bool {
	// modernc/sqlite surfaces constraint failures through the error text;
	// there is no exported sentinel for SQLITE_CONSTRAINT_PRIMARYKEY.
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "constraint")
}

func (s *Store) Find(ctx context.Context, id string) (core.Transaction, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, description, amount, kind, category, date, settled
		 FROM transactions WHERE id = ?`, core.NormalizeID(id))
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, false, nil
	}
	if err != nil {
		return core.Transaction{}, false, fmt.Errorf("find transaction: %w", err)
	}
	return t, true, nil
}

func (s *Store) Delete(ctx context.Context, id string) (core.Transaction, bool, error) {
	t, ok, err := s.Find(ctx, id)
	if err != nil || !ok {
		return core.Transaction{}, false, err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, t.ID); err != nil {
		return core.Transaction{}, false, fmt.Errorf("delete transaction: %w", err)
	}
	return t, true, nil
}

func (s *Store) Recent(ctx context.Context, n int) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount, kind, category, date, settled
		 FROM transactions ORDER BY seq DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query recent transactions: %w", err)
	}
	defer rows.Close()
	return collect(rows, nil)
}

func (s *Store) Filter(ctx context.Context, pred func(core.Transaction) bool) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, description, amount, kind, category, date, settled
		 FROM transactions ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()
	return collect(rows, pred)
}

func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(r rowScanner) (core.Transaction, error) {
	var (
		t        core.Transaction
		amount   string
		kind     string
		category string
		date     string
	)
	if err := r.Scan(&t.ID, &t.Description, &amount, &kind, &category, &date, &t.Settled); err != nil {
		return core.Transaction{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}
	t.Amount = core.NewMoney(d)
	t.Kind = core.Kind(kind)
	t.Category = core.Category(category)
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("parse stored date %q: %w", date, err)
	}
	t.Date = day
	return t, nil
}

func collect(rows *sql.Rows, pred func(core.Transaction) bool) ([]core.Transaction, error) {
	var out []core.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(t) {
			out = append(out, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}
