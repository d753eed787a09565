// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package models

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a minted session token resource. JWT holds the compact
// serialisation (header.payload.signature) ready to be attached to
// Authorization headers of the caller's own services.
type Token struct {
	// Object is the resource discriminator, always "token".
	Object string `json:"object"`

	// JWT is the compact JWS representation of the token.
	JWT string `json:"jwt"`
}

// ExpiresAt extracts the "exp" claim of the token without verifying the
// signature — the SDK is not the token's audience, it only needs the expiry
// for cache bookkeeping.
//
// Returns an error if the token cannot be parsed or carries no expiry claim.
func (t *Token) ExpiresAt() (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(t.JWT, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiration claim")
	}

	return exp.Time, nil
}

// String returns the compact JWS serialization of the token. It implements
// the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.JWT
}
