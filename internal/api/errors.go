package api

import (
	"errors"
	"fmt"
)

// Kind classifies a remote call failure so callers can decide what to do
// (redirect to login, re-render a form, show a flash) without inspecting
// transport details.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindValidation   Kind = "validation_failed"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server_error"
	KindNetwork      Kind = "network_error"
)

// Error is the tagged result of a failed API call.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s (%d)", e.Kind, e.Status)
}

// IsUnauthorized reports whether err is a 401 from the API. Handlers use it
// to tear down the session and navigate to the login screen.
func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }

// IsValidation reports whether the server rejected the payload.
func IsValidation(err error) bool { return kindOf(err) == KindValidation }

// IsNotFound reports whether the resource does not exist.
func IsNotFound(err error) bool { return kindOf(err) == KindNotFound }

// IsNetwork reports whether the API could not be reached at all.
func IsNetwork(err error) bool { return kindOf(err) == KindNetwork }

// As extracts the tagged error, if any.
func As(err error, target **Error) bool { return errors.As(err, target) }

func kindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
