package label

import "errors"

// Label-related errors
var (
	// Validation errors
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name cannot exceed 50 characters")
	ErrInvalidColor   = errors.New("invalid color format (must be hex color like #FFFFFF)")
	ErrIconTooLong    = errors.New("icon cannot exceed 32 characters")
	ErrDuplicateLabel = errors.New("a label with this name already exists")
)
