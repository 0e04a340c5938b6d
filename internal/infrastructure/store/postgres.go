package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/listingcraft/backend/internal/domain"
)

// PostgresStore persists generated listings to PostgreSQL. It satisfies
// domain.ListingStore; callers treat writes as best-effort.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use store.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 10; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ping failed after retries: %v", domain.ErrStoreUnavailable, err)
	}

	ps := &PostgresStore{db: db}
	if err := ps.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ps, nil
}

func (ps *PostgresStore) migrate() error {
	_, err := ps.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id           SERIAL PRIMARY KEY,
			product_name TEXT        NOT NULL,
			category     TEXT        NOT NULL,
			title        TEXT        NOT NULL,
			description  TEXT        NOT NULL DEFAULT '',
			keywords     TEXT        NOT NULL DEFAULT '',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS listing_bullets (
			listing_id INT  NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
			position   INT  NOT NULL,
			text       TEXT NOT NULL,
			PRIMARY KEY (listing_id, position)
		);

		CREATE TABLE IF NOT EXISTS listing_competitors (
			listing_id INT  NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
			position   INT  NOT NULL,
			url        TEXT NOT NULL,
			title      TEXT NOT NULL,
			PRIMARY KEY (listing_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_listings_category ON listings(category);
		CREATE INDEX IF NOT EXISTS idx_listings_created  ON listings(created_at);
	`)
	return err
}

// SaveListing writes the listing header plus its ordered bullet and
// competitor rows in a single transaction. The database assigns the listing
// identity; it is never read back by the generator.
func (ps *PostgresStore) SaveListing(ctx context.Context, record *domain.ListingRecord) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	var listingID int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO listings (product_name, category, title, description, keywords, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, record.ProductName, record.Category, record.Title, record.Description,
		record.Keywords, record.CreatedAt).Scan(&listingID)
	if err != nil {
		return fmt.Errorf("postgres: insert listing: %w", err)
	}

	for _, bullet := range record.Bullets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO listing_bullets (listing_id, position, text)
			VALUES ($1, $2, $3)
		`, listingID, bullet.Position, bullet.Text); err != nil {
			return fmt.Errorf("postgres: insert bullet %d: %w", bullet.Position, err)
		}
	}

	for _, comp := range record.Competitors {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO listing_competitors (listing_id, position, url, title)
			VALUES ($1, $2, $3, $4)
		`, listingID, comp.Position, comp.URL, comp.Title); err != nil {
			return fmt.Errorf("postgres: insert competitor %d: %w", comp.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
