// Package cvedb stores CVE seed datasets in SQLite and tracks the
// scores the engine recomputes for them.
package cvedb

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vulnscale/vulnscale/internal/core/domain"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteRepository implements ports.CVERepository using SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-based CVE repository.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	// Initialize schema
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// UpsertCVE inserts or updates a CVE record.
func (r *SQLiteRepository) UpsertCVE(ctx context.Context, cve domain.CVERecord) error {
	refsJSON, err := json.Marshal(cve.References)
	if err != nil {
		return fmt.Errorf("failed to marshal references: %w", err)
	}

	query := `
		INSERT INTO cve_records (
			cve_id, description, cvss_vector, published_score, computed_score,
			severity, published_date, last_modified, refs
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(cve_id) DO UPDATE SET
			description = excluded.description,
			cvss_vector = excluded.cvss_vector,
			published_score = excluded.published_score,
			computed_score = excluded.computed_score,
			severity = excluded.severity,
			published_date = excluded.published_date,
			last_modified = excluded.last_modified,
			refs = excluded.refs,
			updated_at = CURRENT_TIMESTAMP
	`

	var computed sql.NullFloat64
	if cve.ComputedScore != nil {
		computed = sql.NullFloat64{Float64: *cve.ComputedScore, Valid: true}
	}

	_, err = r.db.ExecContext(ctx, query,
		cve.ID, cve.Description, cve.Vector, cve.PublishedScore, computed,
		string(cve.Severity), cve.PublishedDate.Format(time.RFC3339),
		cve.LastModified.Format(time.RFC3339), string(refsJSON),
	)

	return err
}

// GetByID retrieves a specific CVE by its ID. Returns nil without error
// when the record does not exist.
func (r *SQLiteRepository) GetByID(ctx context.Context, cveID string) (*domain.CVERecord, error) {
	query := `
		SELECT cve_id, description, cvss_vector, published_score, computed_score,
		       severity, published_date, last_modified, refs
		FROM cve_records
		WHERE cve_id = ?
	`

	row := r.db.QueryRowContext(ctx, query, cveID)
	cve, err := scanCVERecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get CVE: %w", err)
	}

	return &cve, nil
}

// List returns up to limit records ordered by published date, newest
// first. limit <= 0 returns everything.
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]domain.CVERecord, error) {
	query := `
		SELECT cve_id, description, cvss_vector, published_score, computed_score,
		       severity, published_date, last_modified, refs
		FROM cve_records
		ORDER BY published_date DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var cves []domain.CVERecord
	for rows.Next() {
		cve, err := scanCVERecord(rows)
		if err != nil {
			return nil, err
		}
		cves = append(cves, cve)
	}
	return cves, rows.Err()
}

// UpdateComputedScore stores the score the engine recomputed for a CVE.
func (r *SQLiteRepository) UpdateComputedScore(ctx context.Context, cveID string, score float64, severity domain.SeverityLevel) error {
	query := `
		UPDATE cve_records
		SET computed_score = ?,
		    severity = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE cve_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, score, string(severity), cveID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no such CVE: %s", cveID)
	}
	return nil
}

// GetTotalCount returns the total number of CVE records.
func (r *SQLiteRepository) GetTotalCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cve_records").Scan(&count)
	return count, err
}

// GetDatasetStatus returns the status of the last seed load.
func (r *SQLiteRepository) GetDatasetStatus(ctx context.Context) (domain.DatasetStatus, error) {
	var status domain.DatasetStatus
	var lastLoad string

	query := "SELECT last_load_time, record_count, error_message FROM cve_load_status WHERE id = 1"
	err := r.db.QueryRowContext(ctx, query).Scan(&lastLoad, &status.RecordCount, &status.ErrorMessage)
	if err != nil {
		return status, err
	}

	if lastLoad != "" {
		status.LastLoadTime, _ = time.Parse(time.RFC3339, lastLoad)
	}
	return status, nil
}

// UpdateDatasetStatus records the outcome of a seed load.
func (r *SQLiteRepository) UpdateDatasetStatus(ctx context.Context, status domain.DatasetStatus) error {
	query := `
		UPDATE cve_load_status
		SET last_load_time = ?,
		    record_count = ?,
		    error_message = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`

	_, err := r.db.ExecContext(ctx, query,
		status.LastLoadTime.Format(time.RFC3339),
		status.RecordCount,
		status.ErrorMessage,
	)
	return err
}

// Close closes the database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCVERecord(row rowScanner) (domain.CVERecord, error) {
	var cve domain.CVERecord
	var publishedDate, lastModified, refsJSON string
	var severity sql.NullString
	var computed sql.NullFloat64

	err := row.Scan(
		&cve.ID, &cve.Description, &cve.Vector, &cve.PublishedScore, &computed,
		&severity, &publishedDate, &lastModified, &refsJSON,
	)
	if err != nil {
		return cve, err
	}

	if computed.Valid {
		cve.ComputedScore = &computed.Float64
	}
	cve.Severity = domain.SeverityLevel(severity.String)

	// Parse dates
	cve.PublishedDate, _ = time.Parse(time.RFC3339, publishedDate)
	cve.LastModified, _ = time.Parse(time.RFC3339, lastModified)

	// Parse references JSON
	if refsJSON != "" {
		json.Unmarshal([]byte(refsJSON), &cve.References)
	}

	return cve, nil
}
