package merchant

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore persists reputation records in PostgreSQL.
//
// Uniqueness is enforced by the primary key on handle: concurrent first
// sightings of the same handle race on the INSERT and exactly one wins,
// which is the only synchronization the classifier relies on.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new PostgreSQL-backed registry.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

var _ Store = (*PostgresStore)(nil)

func (p *PostgresStore) Create(ctx context.Context, m *Merchant) error {
	if err := m.Validate(); err != nil {
		return err
	}

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO merchants (handle, legal_name, trust_score, category, verified)
		VALUES ($1, $2, $3, $4, $5)`,
		CanonicalHandle(m.Handle), m.LegalName, m.TrustScore, m.Category, m.Verified,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrMerchantExists
		}
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

func (p *PostgresStore) Get(ctx context.Context, handle string) (*Merchant, error) {
	m := &Merchant{}
	err := p.db.QueryRowContext(ctx, `
		SELECT handle, legal_name, trust_score, category, verified, created_at
		FROM merchants WHERE handle = $1`,
		CanonicalHandle(handle),
	).Scan(&m.Handle, &m.LegalName, &m.TrustScore, &m.Category, &m.Verified, &m.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMerchantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get merchant: %w", err)
	}
	return m, nil
}

func (p *PostgresStore) ListRecent(ctx context.Context, limit int) ([]*Merchant, error) {
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT handle, legal_name, trust_score, category, verified, created_at
		FROM merchants ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Merchant
	for rows.Next() {
		m := &Merchant{}
		if err := rows.Scan(&m.Handle, &m.LegalName, &m.TrustScore, &m.Category, &m.Verified, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

func (p *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM merchants`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count merchants: %w", err)
	}
	return count, nil
}

// Migrate creates the merchants table (used in dev/test; prod uses migration files).
func (p *PostgresStore) Migrate(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS merchants (
			id          BIGSERIAL,
			handle      TEXT PRIMARY KEY,
			legal_name  TEXT NOT NULL,
			trust_score INTEGER NOT NULL CHECK (trust_score BETWEEN 0 AND 100),
			category    TEXT NOT NULL,
			verified    BOOLEAN NOT NULL DEFAULT FALSE,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_merchants_id ON merchants(id DESC);
	`)
	return err
}
