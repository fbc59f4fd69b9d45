package doctors

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool the directory needs, kept narrow
// so tests can substitute pgxmock.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresDirectory reads the doctor directory from the relational
// database.
type PostgresDirectory struct {
	db Querier
}

// NewPostgresDirectory initializes a directory backed by pgx.
func NewPostgresDirectory(db Querier) *PostgresDirectory {
	if db == nil {
		panic("doctors: pgx querier required")
	}
	return &PostgresDirectory{db: db}
}

// FindBySpecialization returns up to limit doctors whose specialization
// matches the pattern, case-insensitively.
func (d *PostgresDirectory) FindBySpecialization(ctx context.Context, pattern string, limit int) ([]Doctor, error) {
	if limit <= 0 {
		limit = 1
	}
	query := `
		SELECT name, email, phone, specialization, hospital, location
		FROM doctors
		WHERE specialization ~* $1
		ORDER BY name
		LIMIT $2
	`
	rows, err := d.db.Query(ctx, query, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("doctors: select failed: %w", err)
	}
	defer rows.Close()

	var out []Doctor
	for rows.Next() {
		var doc Doctor
		if err := rows.Scan(
			&doc.Name,
			&doc.Email,
			&doc.Phone,
			&doc.Specialization,
			&doc.Hospital,
			&doc.Location,
		); err != nil {
			return nil, fmt.Errorf("doctors: scan failed: %w", err)
		}
		out = append(out, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("doctors: rows failed: %w", err)
	}
	return out, nil
}
