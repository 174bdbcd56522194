package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrDuplicateSlug is returned when a label's slug is already taken
var ErrDuplicateSlug = errors.New("a label with this slug already exists")

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// translateConstraintErr maps sqlite constraint failures to package errors.
// modernc.org/sqlite reports them only through the message text.
func translateConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed: labels.slug") {
		return ErrDuplicateSlug
	}
	return err
}
