// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

// Package fapitest provides an in-process fake of the frontend
// authentication API for tests. The fake keeps a single mutable client
// snapshot, serves the same envelope format as the real service, rotates the
// device token via the Authorization response header, and counts requests
// per route so tests can assert on network traffic.
package fapitest

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/authfront/authfront-go/models"
)

// DeviceToken is the Authorization value the fake hands out on the first
// response and expects back on subsequent requests.
const DeviceToken = "dvb_test_device_token"

// Server is a fake frontend API backed by httptest.
type Server struct {
	HTTP *httptest.Server

	mu          sync.Mutex
	client      *models.Client
	environment *models.Environment
	calls       map[string]int
	tokenTTL    time.Duration
}

// NewServer starts the fake with the given initial state. A nil environment
// gets a minimal default. Callers must Close the server.
func NewServer(client *models.Client, environment *models.Environment) *Server {
	if environment == nil {
		environment = &models.Environment{
			AuthConfig: models.AuthConfig{Object: "auth_config", ID: "aac_test"},
		}
	}

	s := &Server{
		client:      client,
		environment: environment,
		calls:       make(map[string]int),
		tokenTTL:    time.Minute,
	}

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/environment", s.handleEnvironment)
		r.Get("/client", s.handleGetClient)
		r.Post("/client/sign_ins", s.handleCreateSignIn)
		r.Post("/client/sign_ins/{signInID}/attempt_first_factor", s.handleAttemptFirstFactor)
		r.Post("/client/sessions/{sessionID}/touch", s.handleTouchSession)
		r.Post("/client/sessions/{sessionID}/remove", s.handleRemoveSession)
		r.Delete("/client/sessions", s.handleRemoveAllSessions)
		r.Post("/client/sessions/{sessionID}/tokens", s.handleCreateToken)
		r.Post("/client/sessions/{sessionID}/tokens/{template}", s.handleCreateToken)
	})

	s.HTTP = httptest.NewServer(r)
	return s
}

// URL returns the base URL of the fake, suitable for WithBaseURL.
func (s *Server) URL() string { return s.HTTP.URL }

// Close shuts the fake down.
func (s *Server) Close() { s.HTTP.Close() }

// Calls returns how many requests hit the given route key, e.g.
// "GET /v1/client" or "POST tokens".
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[route]
}

// SetClient replaces the snapshot served by the fake.
func (s *Server) SetClient(c *models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = c
}

// Client returns the snapshot the fake currently serves.
func (s *Server) Client() *models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// SetTokenTTL controls the exp claim of minted session tokens.
func (s *Server) SetTokenTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenTTL = ttl
}

func (s *Server) record(route string, w http.ResponseWriter) {
	s.mu.Lock()
	s.calls[route]++
	s.mu.Unlock()
	w.Header().Set("Authorization", DeviceToken)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, models.APIErrorResponse{
		Errors: []models.APIErrorItem{{Code: code, Message: message}},
	})
}

func (s *Server) handleEnvironment(w http.ResponseWriter, r *http.Request) {
	s.record("GET /v1/environment", w)
	s.mu.Lock()
	env := s.environment
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	s.record("GET /v1/client", w)
	s.mu.Lock()
	c := s.client
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.Envelope[*models.Client]{Response: c})
}

func (s *Server) handleCreateSignIn(w http.ResponseWriter, r *http.Request) {
	s.record("POST sign_ins", w)
	identifier := r.FormValue("identifier")
	if identifier == "" {
		writeError(w, http.StatusUnprocessableEntity, "form_param_missing", "identifier is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	signIn := &models.SignIn{
		ID:         "sia_test",
		Status:     models.SignInNeedsFirstFactor,
		Identifier: identifier,
	}
	if r.FormValue("strategy") == "password" && r.FormValue("password") != "" {
		s.completeSignInLocked(signIn)
	}
	if s.client == nil {
		s.client = &models.Client{ID: "client_test", Object: "client"}
	}
	s.client.SignIn = signIn
	writeJSON(w, http.StatusOK, models.Envelope[*models.SignIn]{Response: signIn, Client: s.client})
}

func (s *Server) handleAttemptFirstFactor(w http.ResponseWriter, r *http.Request) {
	s.record("POST attempt_first_factor", w)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil || s.client.SignIn == nil || s.client.SignIn.ID != chi.URLParam(r, "signInID") {
		writeError(w, http.StatusNotFound, "resource_not_found", "sign-in attempt not found")
		return
	}

	signIn := s.client.SignIn
	s.completeSignInLocked(signIn)
	writeJSON(w, http.StatusOK, models.Envelope[*models.SignIn]{Response: signIn, Client: s.client})
}

// completeSignInLocked finalises the attempt: creates an active session and
// points the client at it.
func (s *Server) completeSignInLocked(signIn *models.SignIn) {
	session := models.Session{
		ID:     fmt.Sprintf("sess_%d", time.Now().UnixNano()),
		Status: models.SessionActive,
		User:   &models.User{ID: "user_test", Object: "user"},
	}
	signIn.Status = models.SignInComplete
	signIn.CreatedSessionID = session.ID

	if s.client == nil {
		s.client = &models.Client{ID: "client_test", Object: "client"}
	}
	s.client.Sessions = append(s.client.Sessions, session)
	s.client.LastActiveSessionID = session.ID
	s.client.UpdatedAt = time.Now().UnixMilli()
}

func (s *Server) handleTouchSession(w http.ResponseWriter, r *http.Request) {
	s.record("POST touch", w)

	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessionLocked(chi.URLParam(r, "sessionID"))
	if session == nil {
		writeError(w, http.StatusNotFound, "resource_not_found", "session not found")
		return
	}
	if orgID := r.FormValue("active_organization_id"); orgID != "" {
		session.LastActiveOrganizationID = orgID
	}
	s.client.LastActiveSessionID = session.ID
	s.client.UpdatedAt = time.Now().UnixMilli()
	writeJSON(w, http.StatusOK, models.Envelope[*models.Session]{Response: session, Client: s.client})
}

func (s *Server) handleRemoveSession(w http.ResponseWriter, r *http.Request) {
	s.record("POST remove", w)

	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessionLocked(chi.URLParam(r, "sessionID"))
	if session == nil {
		writeError(w, http.StatusNotFound, "resource_not_found", "session not found")
		return
	}
	session.Status = models.SessionRemoved
	removed := *session
	s.dropSessionLocked(removed.ID)
	writeJSON(w, http.StatusOK, models.Envelope[*models.Session]{Response: &removed, Client: s.client})
}

func (s *Server) handleRemoveAllSessions(w http.ResponseWriter, r *http.Request) {
	s.record("DELETE sessions", w)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		s.client.Sessions = nil
		s.client.LastActiveSessionID = ""
		s.client.UpdatedAt = time.Now().UnixMilli()
	}
	writeJSON(w, http.StatusOK, models.Envelope[*models.Client]{Response: s.client, Client: s.client})
}

func (s *Server) handleCreateToken(w http.ResponseWriter, r *http.Request) {
	s.record("POST tokens", w)

	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.sessionLocked(chi.URLParam(r, "sessionID"))
	if session == nil {
		writeError(w, http.StatusNotFound, "resource_not_found", "session not found")
		return
	}

	claims := map[string]any{
		"sub": "user_test",
		"sid": session.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	if template := chi.URLParam(r, "template"); template != "" {
		claims["tpl"] = template
	}
	writeJSON(w, http.StatusOK, models.Token{Object: "token", JWT: UnsignedJWT(claims)})
}

func (s *Server) sessionLocked(id string) *models.Session {
	if s.client == nil {
		return nil
	}
	for i := range s.client.Sessions {
		if s.client.Sessions[i].ID == id {
			return &s.client.Sessions[i]
		}
	}
	return nil
}

func (s *Server) dropSessionLocked(id string) {
	kept := s.client.Sessions[:0]
	for _, sess := range s.client.Sessions {
		if sess.ID != id {
			kept = append(kept, sess)
		}
	}
	s.client.Sessions = kept
	if s.client.LastActiveSessionID == id {
		s.client.LastActiveSessionID = ""
	}
	s.client.UpdatedAt = time.Now().UnixMilli()
}

// UnsignedJWT builds a structurally valid JWT with the given claims and an
// empty signature. Good enough for clients that only read claims.
func UnsignedJWT(claims map[string]any) string {
	header, _ := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	payload, _ := json.Marshal(claims)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "."
}
