// Package testutil holds fixtures shared by the label command and TUI tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/lbl/internal/app"
	"github.com/thenoetrevino/lbl/internal/config"
	"github.com/thenoetrevino/lbl/internal/database"
	"github.com/thenoetrevino/lbl/internal/logging"
	"github.com/thenoetrevino/lbl/internal/models"
	labelservice "github.com/thenoetrevino/lbl/internal/services/label"
)

// SetupTestService creates an in-memory database and a label service over it
func SetupTestService(t *testing.T) labelservice.Service {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return labelservice.NewService(database.NewLabelRepo(db), logging.Discard())
}

// SetupTestApp builds an app over a fresh local database file
func SetupTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "labels.db")

	opts = append([]app.Option{app.WithLogger(logging.Discard())}, opts...)
	a, err := app.New(context.Background(), cfg, opts...)
	if err != nil {
		t.Fatalf("Failed to create test app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// CreateTestLabels saves one label per name and returns them in order
func CreateTestLabels(t *testing.T, svc labelservice.Service, names ...string) []*models.Label {
	t.Helper()
	created := make([]*models.Label, 0, len(names))
	for _, name := range names {
		label, err := svc.Create(context.Background(), &models.Label{Name: name})
		if err != nil {
			t.Fatalf("Failed to create test label %q: %v", name, err)
		}
		created = append(created, label)
	}
	return created
}
