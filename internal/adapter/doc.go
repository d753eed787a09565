// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

// Package adapter provides the transport layer for communicating with the
// remote frontend authentication API.
//
// The primary abstraction is [Transport], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPTransport]) built on resty.
//
// Every mutating endpoint of the remote API piggybacks the authoritative
// updated Client resource on its response envelope; Transport methods return
// it alongside the typed payload so the sync engine can re-apply server
// truth after each call.
//
// Non-2xx responses are mapped by mapHTTPError to a typed [*APIError] that
// unwraps to the sentinel values defined in errors.go, so callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrUnauthorized]
// for 401) and [errors.As] to reach the machine-readable error codes.
package adapter
