package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/Muskhoops/FRETXPRESS/services/booking-service/internal/domain/shipment"
)

// PostgresStore reads the shipment_history table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens and pings the database.
func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres db: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an open handle.
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS shipment_history (
    id            TEXT PRIMARY KEY,
    shipment_type TEXT NOT NULL,
    title         TEXT NOT NULL,
    shipped_on    DATE NOT NULL,
    status        TEXT NOT NULL,
    price_da      BIGINT NOT NULL
)`

// Migrate creates the table and loads seed when it is empty.
func (s *PostgresStore) Migrate(ctx context.Context, seed []Entry) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create shipment_history: %w", err)
	}

	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shipment_history`).Scan(&n); err != nil {
		return fmt.Errorf("failed to count history rows: %w", err)
	}
	if n > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range seed {
		_, err := tx.ExecContext(ctx, `
            INSERT INTO shipment_history (id, shipment_type, title, shipped_on, status, price_da)
            VALUES ($1, $2, $3, $4, $5, $6)
            ON CONFLICT (id) DO NOTHING`,
			e.ID, string(e.Type), e.Title, e.ShippedOn, string(e.Status), int64(e.Price))
		if err != nil {
			return fmt.Errorf("failed to seed %s: %w", e.ID, err)
		}
	}
	return tx.Commit()
}

func (s *PostgresStore) ListShipments(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, shipment_type, title, shipped_on, status, price_da
        FROM shipment_history
        ORDER BY shipped_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e           Entry
			typ, status string
			price       int64
		)
		if err := rows.Scan(&e.ID, &typ, &e.Title, &e.ShippedOn, &status, &price); err != nil {
			return nil, err
		}
		e.Type = shipment.Type(typ)
		e.Status = Status(status)
		e.Price = shipment.Amount(price)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
