package models

import "errors"

// Domain-specific errors for label records
var (
	// ErrLabelNotFound indicates that no label exists with the requested ID
	ErrLabelNotFound = errors.New("label not found")

	// ErrInvalidLabelID indicates a non-positive label ID
	ErrInvalidLabelID = errors.New("invalid label ID")
)
