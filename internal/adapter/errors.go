// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package adapter

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/authfront/authfront-go/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is the typed error of a failed frontend API call. It carries the
// HTTP status and the machine-readable error list from the response body.
// It unwraps to one of the package sentinels so errors.Is works by status
// class.
type APIError struct {
	// Status is the HTTP status code of the failed response.
	Status int

	// Errors is the machine-readable error list reported by the server,
	// empty when the body carried no parsable error payload.
	Errors []models.APIErrorItem

	// TraceID correlates the failure with server-side logs.
	TraceID string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("http %d: %s: %s", e.Status, e.Errors[0].Code, e.Errors[0].Message)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// Unwrap maps the status code onto this package's sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusUnprocessableEntity:
		return ErrUnprocessable
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return nil
	}
}

// HasCode reports whether the error list contains the given machine-readable
// code.
func (e *APIError) HasCode(code string) bool {
	for _, item := range e.Errors {
		if item.Code == code {
			return true
		}
	}
	return false
}
