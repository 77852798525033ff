// Package domain contains the core business entities and rules.
// These types have no knowledge of databases, GraphQL, or any
// infrastructure concerns.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is the sentinel returned by repositories when a lookup
// matches no row. Services translate it into a user-facing *Error.
var ErrNotFound = errors.New("not found")

// Kind classifies an error by its HTTP-equivalent status.
type Kind int

const (
	BadRequest Kind = iota
	Unauthorized
	Forbidden
	NotFound
	UnprocessableEntity
	Internal
)

const (
	// ClientError tags 4xx kinds, ServerError tags 5xx kinds.
	ClientError = "CLIENT_ERROR"
	ServerError = "SERVER_ERROR"
)

// StatusCode returns the numeric HTTP status for the kind.
func (k Kind) StatusCode() int {
	switch k {
	case BadRequest:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case UnprocessableEntity:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Class returns the status-class tag for the kind.
func (k Kind) Class() string {
	if k == Internal {
		return ServerError
	}
	return ClientError
}

// StatusMessage returns the canonical status message for the kind.
func (k Kind) StatusMessage() string {
	return http.StatusText(k.StatusCode())
}

// Error is a structured error carrying a fixed kind, a numeric status
// and a user-facing message. It is the only error shape that crosses
// the transport boundary.
type Error struct {
	Kind    Kind
	Message string
}

// NewError builds a structured error. The stored message is decorated
// deterministically from the kind, so constructing the same (kind,
// message) pair always yields the same user-facing text.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: decorate(kind, message)}
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions exposes the status envelope to the GraphQL layer.
// graphql-go attaches this map under "extensions" in the response.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"statusCode":        e.Kind.StatusCode(),
		"statusCodeClass":   e.Kind.Class(),
		"statusCodeMessage": e.Kind.StatusMessage(),
	}
}

// decorate is a pure function of (kind, message). Bad requests and
// internal failures get the generic banner, auth failures get the lock
// prefix, not-found and unprocessable messages are kept as-is.
func decorate(kind Kind, message string) string {
	switch kind {
	case BadRequest, Internal:
		return "🤯 Oops, something went wrong: " + message
	case Unauthorized, Forbidden:
		return "🔒 " + message
	default:
		return message
	}
}

// DuplicateError is produced by the storage layer when a write hits a
// unique constraint. Column is the logical column behind the violated
// constraint ("name", "address", "picture", "location", ...), or empty
// when the constraint is not recognized.
type DuplicateError struct {
	Column string
}

func (e *DuplicateError) Error() string {
	if e.Column == "" {
		return "duplicate value"
	}
	return fmt.Sprintf("duplicate value for %s", e.Column)
}

// ReferenceError is produced by the storage layer when a write hits a
// foreign-key constraint. Column names the referencing column
// ("city_id", "type_id", "tag_id", "role_id").
type ReferenceError struct {
	Column string
}

func (e *ReferenceError) Error() string {
	if e.Column == "" {
		return "unknown reference"
	}
	return fmt.Sprintf("unknown reference in %s", e.Column)
}
