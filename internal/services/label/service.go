// Package label implements the label backend contract on top of the local
// sqlite repository, so the client can run without a remote server.
package label

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thenoetrevino/lbl/internal/api"
	"github.com/thenoetrevino/lbl/internal/database"
	"github.com/thenoetrevino/lbl/internal/models"
)

const (
	maxNameLength = 50
	maxIconLength = 32

	// DefaultColor is applied when a label is saved without a color
	DefaultColor = "#7D56F4"
)

// Hex color regex pattern
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Service is a LabelAPI served from the local database. Rejections come back
// as *api.Error shaped exactly like a remote backend's.
type Service interface {
	api.LabelAPI
}

// service implements Service interface
type service struct {
	repo   database.LabelRepository
	logger *slog.Logger
}

// NewService creates a new label service
func NewService(repo database.LabelRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// List retrieves all labels
func (s *service) List(ctx context.Context) ([]*models.Label, error) {
	labels, err := s.repo.GetAllLabels(ctx)
	if err != nil {
		return nil, s.internalError("list", err)
	}
	return labels, nil
}

// Create validates and stores a new label
func (s *service) Create(ctx context.Context, label *models.Label) (*models.Label, error) {
	clean, err := s.prepare(label)
	if err != nil {
		return nil, err
	}
	clean.ID = 0

	created, err := s.repo.CreateLabel(ctx, clean)
	if err != nil {
		return nil, s.translate("create", err)
	}

	s.logger.Info("label created", "label_id", created.ID, "slug", created.Slug)
	return created, nil
}

// Update validates and replaces an existing label
func (s *service) Update(ctx context.Context, label *models.Label) (*models.Label, error) {
	if label == nil || label.ID <= 0 {
		return nil, invalidIDError()
	}
	clean, err := s.prepare(label)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateLabel(ctx, clean)
	if err != nil {
		return nil, s.translate("update", err)
	}

	s.logger.Info("label updated", "label_id", updated.ID)
	return updated, nil
}

// Delete removes a label
func (s *service) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return invalidIDError()
	}
	if err := s.repo.DeleteLabel(ctx, id); err != nil {
		return s.translate("delete", err)
	}

	s.logger.Info("label deleted", "label_id", id)
	return nil
}

// prepare validates label and returns a normalized copy
func (s *service) prepare(label *models.Label) (*models.Label, error) {
	if label == nil {
		return nil, fieldError("name", ErrEmptyName)
	}

	clean := label.Clone()
	clean.Name = strings.TrimSpace(clean.Name)
	clean.Icon = strings.TrimSpace(clean.Icon)
	clean.Color = strings.TrimSpace(clean.Color)
	clean.Message = ""

	if clean.Name == "" {
		return nil, fieldError("name", ErrEmptyName)
	}
	if utf8.RuneCountInString(clean.Name) > maxNameLength {
		return nil, fieldError("name", ErrNameTooLong)
	}
	if clean.Color == "" {
		clean.Color = DefaultColor
	}
	if !hexColorRegex.MatchString(clean.Color) {
		return nil, fieldError("color", ErrInvalidColor)
	}
	if utf8.RuneCountInString(clean.Icon) > maxIconLength {
		return nil, fieldError("icon", ErrIconTooLong)
	}

	clean.Color = strings.ToUpper(clean.Color)
	clean.Slug = Slugify(clean.Name)
	return clean, nil
}

// translate maps repository errors onto the backend error shape
func (s *service) translate(op string, err error) error {
	switch {
	case errors.Is(err, models.ErrLabelNotFound):
		return &api.Error{
			Status: http.StatusNotFound,
			Data:   api.ErrorData{Message: "Label not found."},
			Cause:  err,
		}
	case errors.Is(err, database.ErrDuplicateSlug):
		return fieldError("name", ErrDuplicateLabel)
	default:
		return s.internalError(op, err)
	}
}

func (s *service) internalError(op string, err error) error {
	s.logger.Error("label operation failed", "op", op, "error", err)
	return &api.Error{
		Status: http.StatusInternalServerError,
		Cause:  fmt.Errorf("%s label: %w", op, err),
	}
}

func fieldError(field string, err error) error {
	return &api.Error{
		Status: http.StatusBadRequest,
		Data:   api.ErrorData{Errors: map[string]string{field: err.Error()}},
		Cause:  err,
	}
}

func invalidIDError() error {
	return &api.Error{
		Status: http.StatusBadRequest,
		Data:   api.ErrorData{Message: "Invalid label ID."},
		Cause:  models.ErrInvalidLabelID,
	}
}

// Slugify lowercases name and joins its letter/digit runs with underscores.
func Slugify(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
