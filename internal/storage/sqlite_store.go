package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/portfolio-matching/internal/domain"
	"github.com/denisok6893-rgb/portfolio-matching/internal/matching"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("not found")

// SQLiteStore keeps listings and requests as JSON documents with a few
// indexed columns. Attribute values keep their original shape (number or
// text) so the matching engine sees them as they were written.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set journal mode: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Ping checks the connection.
func (s *SQLiteStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS listings (
  id TEXT PRIMARY KEY,
  city_key TEXT NOT NULL DEFAULT '',
  is_published INTEGER NOT NULL DEFAULT 1,
  doc_json TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS requests (
  id TEXT PRIMARY KEY,
  city_key TEXT NOT NULL DEFAULT '',
  doc_json TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_listings_city ON listings(city_key);`,
		`CREATE INDEX IF NOT EXISTS idx_requests_city ON requests(city_key);`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// ---- listings ----

func (s *SQLiteStore) CountListings(ctx context.Context) (int, error) {
	return s.count(ctx, "listings")
}

// UpsertListings inserts a seed dataset without duplicating by id.
func (s *SQLiteStore) UpsertListings(ctx context.Context, items []domain.Listing) error {
	return s.insertMany(ctx, len(items), `
INSERT OR IGNORE INTO listings (id, city_key, is_published, doc_json, created_at)
VALUES (?, ?, ?, ?, ?)`, func(i int) ([]any, error) {
		return listingRow(prepareListing(items[i]))
	})
}

func (s *SQLiteStore) CreateListing(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	l = prepareListing(l)
	args, err := listingRow(l)
	if err != nil {
		return domain.Listing{}, err
	}
	if _, err := s.db.ExecContext(ctx, `
INSERT INTO listings (id, city_key, is_published, doc_json, created_at)
VALUES (?, ?, ?, ?, ?)`, args...); err != nil {
		return domain.Listing{}, fmt.Errorf("insert listing: %w", err)
	}
	return l, nil
}

func (s *SQLiteStore) GetListing(ctx context.Context, id string) (domain.Listing, error) {
	var l domain.Listing
	if err := s.get(ctx, "listings", id, &l); err != nil {
		return domain.Listing{}, err
	}
	return l, nil
}

func (s *SQLiteStore) DeleteListing(ctx context.Context, id string) error {
	return s.delete(ctx, "listings", id)
}

// ListListings pages through listings ordered by creation time. A non-empty
// city is compared after text normalization.
func (s *SQLiteStore) ListListings(ctx context.Context, limit, offset int, city string) ([]domain.Listing, int, error) {
	var out []domain.Listing
	total, err := s.list(ctx, "listings", limit, offset, city, func(doc []byte) error {
		var l domain.Listing
		if err := json.Unmarshal(doc, &l); err != nil {
			return err
		}
		out = append(out, l)
		return nil
	})
	return out, total, err
}

// AllListings returns every listing, the candidate set for matching.
func (s *SQLiteStore) AllListings(ctx context.Context) ([]domain.Listing, error) {
	out, _, err := s.ListListings(ctx, -1, 0, "")
	return out, err
}

// ---- requests ----

func (s *SQLiteStore) CountRequests(ctx context.Context) (int, error) {
	return s.count(ctx, "requests")
}

func (s *SQLiteStore) UpsertRequests(ctx context.Context, items []domain.Request) error {
	return s.insertMany(ctx, len(items), `
INSERT OR IGNORE INTO requests (id, city_key, doc_json, created_at)
VALUES (?, ?, ?, ?)`, func(i int) ([]any, error) {
		return requestRow(prepareRequest(items[i]))
	})
}

func (s *SQLiteStore) CreateRequest(ctx context.Context, r domain.Request) (domain.Request, error) {
	r = prepareRequest(r)
	args, err := requestRow(r)
	if err != nil {
		return domain.Request{}, err
	}
	if _, err := s.db.ExecContext(ctx, `
INSERT INTO requests (id, city_key, doc_json, created_at)
VALUES (?, ?, ?, ?)`, args...); err != nil {
		return domain.Request{}, fmt.Errorf("insert request: %w", err)
	}
	return r, nil
}

func (s *SQLiteStore) GetRequest(ctx context.Context, id string) (domain.Request, error) {
	var r domain.Request
	if err := s.get(ctx, "requests", id, &r); err != nil {
		return domain.Request{}, err
	}
	return r, nil
}

func (s *SQLiteStore) DeleteRequest(ctx context.Context, id string) error {
	return s.delete(ctx, "requests", id)
}

func (s *SQLiteStore) ListRequests(ctx context.Context, limit, offset int, city string) ([]domain.Request, int, error) {
	var out []domain.Request
	total, err := s.list(ctx, "requests", limit, offset, city, func(doc []byte) error {
		var r domain.Request
		if err := json.Unmarshal(doc, &r); err != nil {
			return err
		}
		out = append(out, r)
		return nil
	})
	return out, total, err
}

func (s *SQLiteStore) AllRequests(ctx context.Context) ([]domain.Request, error) {
	out, _, err := s.ListRequests(ctx, -1, 0, "")
	return out, err
}

// ---- shared helpers ----

func prepareListing(l domain.Listing) domain.Listing {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return l
}

func prepareRequest(r domain.Request) domain.Request {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return r
}

func listingRow(l domain.Listing) ([]any, error) {
	doc, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal listing %s: %w", l.ID, err)
	}
	return []any{l.ID, matching.Normalize(l.City), l.Published(), string(doc), l.CreatedAt}, nil
}

func requestRow(r domain.Request) ([]any, error) {
	doc, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal request %s: %w", r.ID, err)
	}
	return []any{r.ID, matching.Normalize(r.City), string(doc), r.CreatedAt}, nil
}

func (s *SQLiteStore) insertMany(ctx context.Context, n int, query string, row func(i int) ([]any, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		args, err := row(i)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// table names below are package constants, never user input.

func (s *SQLiteStore) count(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

func (s *SQLiteStore) get(ctx context.Context, table, id string, dst any) error {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc_json FROM `+table+` WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("get %s %s: %w", table, id, err)
	}
	if err := json.Unmarshal([]byte(doc), dst); err != nil {
		return fmt.Errorf("decode %s %s: %w", table, id, err)
	}
	return nil
}

func (s *SQLiteStore) delete(ctx context.Context, table, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", table, id, err)
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return fmt.Errorf("%s %s: %w", table, id, ErrNotFound)
	}
	return nil
}

// list runs a paged query; limit < 0 means no limit.
func (s *SQLiteStore) list(ctx context.Context, table string, limit, offset int, city string, scan func([]byte) error) (int, error) {
	if offset < 0 {
		offset = 0
	}

	whereSQL := ""
	var args []any
	if key := matching.Normalize(city); key != "" {
		whereSQL = "WHERE city_key = ?"
		args = append(args, key)
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" "+whereSQL, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}

	rowsSQL := "SELECT doc_json FROM " + table + " " + whereSQL + "\nORDER BY created_at, id\nLIMIT ? OFFSET ?"
	rowsArgs := append(append([]any{}, args...), limit, offset)

	rows, err := s.db.QueryContext(ctx, rowsSQL, rowsArgs...)
	if err != nil {
		return 0, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return 0, fmt.Errorf("scan %s: %w", table, err)
		}
		if err := scan([]byte(doc)); err != nil {
			return 0, fmt.Errorf("decode %s row: %w", table, err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate %s: %w", table, err)
	}
	return total, nil
}
