// Package api defines the label backend contract and its REST transport.
package api

import (
	"context"

	"github.com/thenoetrevino/lbl/internal/models"
)

// LabelAPI is the narrow backend surface the label store depends on.
type LabelAPI interface {
	List(ctx context.Context) ([]*models.Label, error)
	Create(ctx context.Context, label *models.Label) (*models.Label, error)
	Update(ctx context.Context, label *models.Label) (*models.Label, error)
	Delete(ctx context.Context, id int) error
}

// Compile-time verification that *Client implements LabelAPI
var _ LabelAPI = (*Client)(nil)
