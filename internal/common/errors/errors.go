// Package errors provides standardized error reporting for the content
// pipeline. Nothing in this core is fatal: every error here accompanies a
// degrade-and-continue path, so Retryable is informational only.
package errors

import (
	"fmt"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeContentFetchFailed  ErrorCode = "CONTENT_FETCH_FAILED"
	ErrCodeContentBadStatus    ErrorCode = "CONTENT_BAD_STATUS"
	ErrCodeContentDecodeFailed ErrorCode = "CONTENT_DECODE_FAILED"

	ErrCodeFavoritesLoadFailed    ErrorCode = "FAVORITES_LOAD_FAILED"
	ErrCodeFavoritesPersistFailed ErrorCode = "FAVORITES_PERSIST_FAILED"
	ErrCodeStoreUnavailable       ErrorCode = "STORE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewContentFetchFailedError creates a retryable transport error for one
// collection. The other collections keep loading.
func NewContentFetchFailedError(collection string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeContentFetchFailed,
		Message:   "Content fetch failed",
		Details:   fmt.Sprintf("collection: %s, error: %s", collection, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewContentBadStatusError creates an error for a non-success HTTP status.
func NewContentBadStatusError(collection string, status int) *StandardError {
	return &StandardError{
		Code:      ErrCodeContentBadStatus,
		Message:   "Content endpoint returned non-success status",
		Details:   fmt.Sprintf("collection: %s, status: %d", collection, status),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewContentDecodeFailedError creates an error for an undecodable payload.
func NewContentDecodeFailedError(collection string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeContentDecodeFailed,
		Message:   "Content payload decode failed",
		Details:   fmt.Sprintf("collection: %s, error: %s", collection, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFavoritesLoadFailedError covers corrupt or unreadable persisted state.
// The store starts empty instead of failing application start.
func NewFavoritesLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFavoritesLoadFailed,
		Message:   "Persisted favorites could not be loaded",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFavoritesPersistFailedError covers a swallowed write failure. In-memory
// state stays authoritative for the session.
func NewFavoritesPersistFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFavoritesPersistFailed,
		Message:   "Favorites write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStoreUnavailableError creates a retryable storage connection error.
func NewStoreUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeStoreUnavailable,
		Message:   "Favorites storage unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Utility Functions
// ==========================

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CONTENT"):
		return "CONTENT"
	case strings.Contains(codeStr, "FAVORITES") || strings.Contains(codeStr, "STORE"):
		return "FAVORITES"
	default:
		return "OTHER"
	}
}
