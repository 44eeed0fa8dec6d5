package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Store reads catalog records from the Postgres reference database.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a catalog store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Records returns every record of the given kind in name order. A query
// or scan failure is reported as ErrUnavailable so callers can tell a
// dead data source apart from an empty catalog.
func (s *Store) Records(ctx context.Context, kind Kind) ([]Record, error) {
	query := `
		SELECT id, kind, retail_name, retail_code, created_at
		FROM catalog_records
		WHERE kind = $1
		ORDER BY retail_name NULLS LAST, retail_code
	`

	rows, err := s.pool.Query(ctx, query, string(kind))
	if err != nil {
		log.WithError(err).WithField("kind", kind).Error("Catalog query failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Kind, &r.Name, &r.Code, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return records, nil
}

// Count returns the number of records of one kind.
func (s *Store) Count(ctx context.Context, kind Kind) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM catalog_records WHERE kind = $1`,
		string(kind),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

// Replace swaps out every kind present in records in one transaction.
// Kinds not present in the input are left untouched, so a seed file may
// refresh a single reference set.
func (s *Store) Replace(ctx context.Context, records []Record) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer tx.Rollback(ctx)

	kinds := map[Kind]bool{}
	for _, r := range records {
		kinds[r.Kind] = true
	}
	for kind := range kinds {
		if _, err := tx.Exec(ctx,
			`DELETE FROM catalog_records WHERE kind = $1`, string(kind)); err != nil {
			return fmt.Errorf("clear %s records: %w", kind, err)
		}
	}

	for _, r := range records {
		_, err := tx.Exec(ctx, `
			INSERT INTO catalog_records (id, kind, retail_name, retail_code, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, r.ID, string(r.Kind), r.Name, r.Code, r.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert %s record: %w", r.Kind, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	log.WithField("kinds", len(kinds)).WithField("records", len(records)).Info("Catalog replaced")
	return nil
}
