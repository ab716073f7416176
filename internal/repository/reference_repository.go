package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godilite/score-report/internal/repository/models"
)

// Schema creates the reference tables if they do not exist.
const Schema = `
	CREATE TABLE IF NOT EXISTS class_averages (
		subject       TEXT PRIMARY KEY,
		class_average REAL NOT NULL,
		position      INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS score_bins (
		subject       TEXT NOT NULL,
		lower_bound   INTEGER NOT NULL,
		upper_bound   INTEGER NOT NULL,
		student_count INTEGER NOT NULL,
		PRIMARY KEY (subject, lower_bound)
	);
`

type ReferenceRepository struct {
	db *sql.DB
}

func NewReferenceRepository(db *sql.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// CreateSchema applies Schema.
func (s *ReferenceRepository) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create reference schema: %w", err)
	}
	return nil
}

// GetClassAverages returns class averages in their published order.
func (s *ReferenceRepository) GetClassAverages(ctx context.Context) ([]models.ClassAverageRow, error) {
	const query = `
		SELECT subject, class_average, position
		FROM class_averages
		ORDER BY position, subject
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query GetClassAverages: %w", err)
	}
	defer rows.Close()

	var results []models.ClassAverageRow
	for rows.Next() {
		var r models.ClassAverageRow
		if err := rows.Scan(&r.Subject, &r.ClassAverage, &r.Position); err != nil {
			return nil, fmt.Errorf("scan GetClassAverages row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetClassAverages: %w", err)
	}
	return results, nil
}

// GetScoreBins returns every histogram bin grouped by subject, highest range first.
func (s *ReferenceRepository) GetScoreBins(ctx context.Context) ([]models.ScoreBinRow, error) {
	const query = `
		SELECT b.subject, b.lower_bound, b.upper_bound, b.student_count
		FROM score_bins AS b
		LEFT JOIN class_averages AS ca ON ca.subject = b.subject
		ORDER BY COALESCE(ca.position, 1000000), b.subject, b.upper_bound DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query GetScoreBins: %w", err)
	}
	defer rows.Close()

	var results []models.ScoreBinRow
	for rows.Next() {
		var r models.ScoreBinRow
		if err := rows.Scan(&r.Subject, &r.LowerBound, &r.UpperBound, &r.StudentCount); err != nil {
			return nil, fmt.Errorf("scan GetScoreBins row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetScoreBins: %w", err)
	}
	return results, nil
}

// ReplaceReference swaps the stored tables for the given rows in one transaction.
func (s *ReferenceRepository) ReplaceReference(ctx context.Context, averages []models.ClassAverageRow, bins []models.ScoreBinRow) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ReplaceReference: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM score_bins`); err != nil {
		return fmt.Errorf("clear score_bins: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM class_averages`); err != nil {
		return fmt.Errorf("clear class_averages: %w", err)
	}

	for _, a := range averages {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO class_averages (subject, class_average, position) VALUES (?, ?, ?)`,
			a.Subject, a.ClassAverage, a.Position,
		); err != nil {
			return fmt.Errorf("insert class average %q: %w", a.Subject, err)
		}
	}
	for _, b := range bins {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO score_bins (subject, lower_bound, upper_bound, student_count) VALUES (?, ?, ?, ?)`,
			b.Subject, b.LowerBound, b.UpperBound, b.StudentCount,
		); err != nil {
			return fmt.Errorf("insert score bin %q %d-%d: %w", b.Subject, b.LowerBound, b.UpperBound, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit ReplaceReference: %w", err)
	}
	return nil
}
