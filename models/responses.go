// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

// Envelope is the wire shape of every frontend API response: the typed
// payload under "response" and, for mutating calls, the authoritative
// updated Client piggybacked under "client". The SDK treats the piggybacked
// client as the source of truth for its next state replacement.
type Envelope[T any] struct {
	Response T       `json:"response"`
	Client   *Client `json:"client"`
}

// APIErrorItem is one machine-readable error entry of a failed API call.
type APIErrorItem struct {
	Code        string         `json:"code"`
	Message     string         `json:"message"`
	LongMessage string         `json:"long_message,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

// APIErrorResponse is the error payload the frontend API returns with
// non-2xx statuses.
type APIErrorResponse struct {
	Errors  []APIErrorItem `json:"errors"`
	TraceID string         `json:"trace_id,omitempty"`
}
