package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/lbl/internal/models"
)

// ============================================================================
// Label Operations
// ============================================================================

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

const labelColumns = `id, name, slug, icon, color`

// LabelRepo handles label persistence.
type LabelRepo struct {
	db *sql.DB
}

// NewLabelRepo creates a LabelRepo over db.
func NewLabelRepo(db *sql.DB) *LabelRepo {
	return &LabelRepo{db: db}
}

// GetAllLabels retrieves all labels ordered by name
func (r *LabelRepo) GetAllLabels(ctx context.Context) ([]*models.Label, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+labelColumns+` FROM labels ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels: %w", err)
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		label, err := scanLabel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan label: %w", err)
		}
		labels = append(labels, label)
	}

	return labels, rows.Err()
}

// GetLabelByID retrieves a single label
func (r *LabelRepo) GetLabelByID(ctx context.Context, id int) (*models.Label, error) {
	return getLabelByID(ctx, r.db, id)
}

// CreateLabel inserts a new label and returns the stored row
func (r *LabelRepo) CreateLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO labels (name, slug, icon, color) VALUES (?, ?, ?, ?)`,
		label.Name, label.Slug, label.Icon, label.Color,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create label: %w", translateConstraintErr(err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get label id: %w", err)
	}

	created := label.Clone()
	created.ID = int(id)
	return created, nil
}

// UpdateLabel replaces a label's fields and returns the stored row
func (r *LabelRepo) UpdateLabel(ctx context.Context, label *models.Label) (*models.Label, error) {
	var updated *models.Label
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE labels
			 SET name = ?, slug = ?, icon = ?, color = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			label.Name, label.Slug, label.Icon, label.Color, label.ID,
		)
		if err != nil {
			return translateConstraintErr(err)
		}
		if err := requireAffected(result); err != nil {
			return err
		}

		updated, err = getLabelByID(ctx, tx, label.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update label %d: %w", label.ID, err)
	}
	return updated, nil
}

// DeleteLabel removes a label
func (r *LabelRepo) DeleteLabel(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM labels WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete label %d: %w", id, err)
	}
	if err := requireAffected(result); err != nil {
		return fmt.Errorf("failed to delete label %d: %w", id, err)
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

// querier is satisfied by *sql.DB and *sql.Tx
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getLabelByID(ctx context.Context, q querier, id int) (*models.Label, error) {
	row := q.QueryRowContext(ctx, `SELECT `+labelColumns+` FROM labels WHERE id = ?`, id)
	label, err := scanLabel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrLabelNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get label %d: %w", id, err)
	}
	return label, nil
}

func scanLabel(s rowScanner) (*models.Label, error) {
	label := &models.Label{}
	if err := s.Scan(&label.ID, &label.Name, &label.Slug, &label.Icon, &label.Color); err != nil {
		return nil, err
	}
	return label, nil
}

// requireAffected maps a zero-row write to ErrLabelNotFound
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrLabelNotFound
	}
	return nil
}
