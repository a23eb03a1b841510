package responsecache

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/pokelookup/internal/errors"
	"github.com/KirkDiggler/pokelookup/internal/pkg/clock"
)

// DatabaseFile is the file name used inside the cache directory
const DatabaseFile = "responses.db"

const schema = `
CREATE TABLE IF NOT EXISTS responses (
	url        TEXT PRIMARY KEY,
	body       BLOB NOT NULL,
	expires_at INTEGER NOT NULL
)`

type sqliteRepository struct {
	db    *sql.DB
	ttl   time.Duration
	clock clock.Clock
}

// SQLiteConfig contains configuration for the on-disk response cache
type SQLiteConfig struct {
	// Dir is created if missing; the database lives at Dir/DatabaseFile
	Dir string
	// TTL defaults to DefaultTTL when zero
	TTL   time.Duration
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", cfg.Dir, vb)
	if cfg.TTL < 0 {
		vb.Field("ttl", "cannot be negative")
	}
	if cfg.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

// NewSQLite opens (creating if needed) the on-disk response cache
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.Dir, 0o750); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory %s", cfg.Dir)
	}

	db, err := sql.Open("sqlite", filepath.Join(cfg.Dir, DatabaseFile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open cache database")
	}

	// PRAGMAs are per connection, so keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := setup(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &sqliteRepository{
		db:    db,
		ttl:   ttl,
		clock: cfg.Clock,
	}, nil
}

func setup(db *sql.DB) error {
	if err := db.Ping(); err != nil {
		return errors.Wrap(err, "failed to ping cache database")
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return errors.Wrap(err, "failed to set WAL mode")
	}
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to create cache schema")
	}
	return nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	var body []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT body FROM responses WHERE url = ? AND expires_at > ?`,
		input.Key, r.clock.Now().Unix(),
	).Scan(&body)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("no cached response for %s", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get cached response for %s", input.Key)
	}

	return &GetOutput{Body: body}, nil
}

func (r *sqliteRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	expiresAt := r.clock.Now().Add(r.ttl).Unix()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO responses (url, body, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET body = excluded.body, expires_at = excluded.expires_at`,
		input.Key, input.Body, expiresAt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to cache response for %s", input.Key)
	}

	return &SetOutput{}, nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}
