// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

// SignInStatus enumerates the states of an in-progress sign-in attempt.
type SignInStatus string

const (
	SignInNeedsIdentifier   SignInStatus = "needs_identifier"
	SignInNeedsFirstFactor  SignInStatus = "needs_first_factor"
	SignInNeedsSecondFactor SignInStatus = "needs_second_factor"
	SignInComplete          SignInStatus = "complete"
)

// SignIn is a sign-in attempt resource. A completed attempt references the
// session it created via CreatedSessionID.
type SignIn struct {
	ID               string       `json:"id"`
	Object           string       `json:"object"`
	Status           SignInStatus `json:"status"`
	Identifier       string       `json:"identifier,omitempty"`
	CreatedSessionID string       `json:"created_session_id,omitempty"`

	// SupportedFirstFactors lists the factor strategies the attempt may be
	// advanced with (e.g. "password", "email_code").
	SupportedFirstFactors []SignInFactor `json:"supported_first_factors,omitempty"`
}

// SignInFactor describes one strategy usable to advance a sign-in attempt.
type SignInFactor struct {
	Strategy       string `json:"strategy"`
	EmailAddressID string `json:"email_address_id,omitempty"`
	SafeIdentifier string `json:"safe_identifier,omitempty"`
}
