package database

import (
	"context"

	"github.com/thenoetrevino/lbl/internal/models"
)

// LabelReader defines read operations for labels.
type LabelReader interface {
	GetAllLabels(ctx context.Context) ([]*models.Label, error)
	GetLabelByID(ctx context.Context, id int) (*models.Label, error)
}

// LabelWriter defines write operations for labels.
type LabelWriter interface {
	CreateLabel(ctx context.Context, label *models.Label) (*models.Label, error)
	UpdateLabel(ctx context.Context, label *models.Label) (*models.Label, error)
	DeleteLabel(ctx context.Context, id int) error
}

// LabelRepository combines all label-related operations.
type LabelRepository interface {
	LabelReader
	LabelWriter
}

// Compile-time verification that *LabelRepo implements LabelRepository
var _ LabelRepository = (*LabelRepo)(nil)
