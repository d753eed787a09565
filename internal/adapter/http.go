// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The authfront-go authors

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/authfront/authfront-go/internal/config"
	"github.com/authfront/authfront-go/internal/logger"
	"github.com/authfront/authfront-go/models"
	"github.com/authfront/authfront-go/storage"
)

// authorizationKey is the storage key (after prefixing) under which the
// device token returned by the server in the Authorization header is kept.
const authorizationKey = "authorization"

const apiVersionPrefix = "/v1"

type httpTransport struct {
	client    *resty.Client
	store     storage.Storage
	keyPrefix string

	logger *logger.Logger
}

// NewHTTPTransport constructs the HTTP/REST implementation of [Transport].
//
// The resolved frontend API origin comes from cfg (explicit base URL or the
// domain decoded from the publishable key). Every request carries the
// native-client markers (_is_native query, x-mobile/x-no-origin headers) and
// the device token read from store; a rotated token found in a response's
// Authorization header is written back to store before the response is
// returned to the caller.
// An optional httpClient replaces resty's default *http.Client (custom
// proxies, instrumented transports); nil selects the default.
func NewHTTPTransport(cfg *config.Config, store storage.Storage, httpClient *http.Client, log *logger.Logger) (Transport, error) {
	baseURL, err := cfg.FrontendAPIURL()
	if err != nil {
		return nil, fmt.Errorf("resolve frontend api url: %w", err)
	}

	t := &httpTransport{
		store:     store,
		keyPrefix: cfg.KeyPrefix,
		logger:    log,
	}

	restyClient := resty.New()
	if httpClient != nil {
		restyClient = resty.NewWithClient(httpClient)
	}

	t.client = restyClient.
		SetBaseURL(baseURL+apiVersionPrefix).
		SetTimeout(cfg.RequestTimeout.Std()).
		SetHeader("x-mobile", "1").
		SetHeader("x-no-origin", "1").
		SetQueryParam("_is_native", "1").
		OnBeforeRequest(t.attachAuthorization).
		OnAfterResponse(t.captureAuthorization)

	return t, nil
}

func (t *httpTransport) authKey() string {
	return t.keyPrefix + authorizationKey
}

func (t *httpTransport) attachAuthorization(_ *resty.Client, req *resty.Request) error {
	if auth, ok := t.store.Get(t.authKey()); ok && auth != "" {
		req.SetHeader("Authorization", auth)
	}
	return nil
}

func (t *httpTransport) captureAuthorization(_ *resty.Client, resp *resty.Response) error {
	if auth := resp.Header().Get("Authorization"); auth != "" {
		if err := t.store.Set(t.authKey(), auth); err != nil {
			// A failed write only costs a token rotation; the request itself
			// succeeded.
			t.logger.Warn().Err(err).Msg("failed to persist rotated device token")
		}
	}
	return nil
}

// GetEnvironment implements [Transport]. GET /v1/environment returns the
// environment payload directly, without the response envelope.
func (t *httpTransport) GetEnvironment(ctx context.Context) (*models.Environment, error) {
	resp, err := t.client.R().SetContext(ctx).Get("/environment")
	if err != nil {
		return nil, fmt.Errorf("get environment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var env models.Environment
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode environment response: %w", err)
	}
	return &env, nil
}

// GetClient implements [Transport]. GET /v1/client wraps the client in the
// standard envelope's response field.
func (t *httpTransport) GetClient(ctx context.Context) (*models.Client, error) {
	resp, err := t.client.R().SetContext(ctx).Get("/client")
	if err != nil {
		return nil, fmt.Errorf("get client request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[*models.Client](resp)
	if err != nil {
		return nil, err
	}
	return env.Response, nil
}

// CreateSignIn implements [Transport]. POST /v1/client/sign_ins.
func (t *httpTransport) CreateSignIn(ctx context.Context, params SignInParams) (*models.SignIn, *models.Client, error) {
	form := map[string]string{"identifier": params.Identifier}
	if params.Password != "" {
		form["password"] = params.Password
		form["strategy"] = "password"
	}
	if params.Strategy != "" {
		form["strategy"] = params.Strategy
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(form).
		Post("/client/sign_ins")
	if err != nil {
		return nil, nil, fmt.Errorf("create sign in request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, err
	}

	env, err := decodeEnvelope[*models.SignIn](resp)
	if err != nil {
		return nil, nil, err
	}
	return env.Response, env.Client, nil
}

// AttemptSignInFirstFactor implements [Transport].
// POST /v1/client/sign_ins/{id}/attempt_first_factor.
func (t *httpTransport) AttemptSignInFirstFactor(ctx context.Context, signInID string, params AttemptFactorParams) (*models.SignIn, *models.Client, error) {
	form := map[string]string{"strategy": params.Strategy}
	if params.Password != "" {
		form["password"] = params.Password
	}
	if params.Code != "" {
		form["code"] = params.Code
	}

	resp, err := t.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetPathParam("signInID", signInID).
		Post("/client/sign_ins/{signInID}/attempt_first_factor")
	if err != nil {
		return nil, nil, fmt.Errorf("attempt first factor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, err
	}

	env, err := decodeEnvelope[*models.SignIn](resp)
	if err != nil {
		return nil, nil, err
	}
	return env.Response, env.Client, nil
}

// TouchSession implements [Transport]. POST /v1/client/sessions/{id}/touch.
func (t *httpTransport) TouchSession(ctx context.Context, sessionID, activeOrganizationID string) (*models.Session, *models.Client, error) {
	req := t.client.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID)
	if activeOrganizationID != "" {
		req.SetFormData(map[string]string{"active_organization_id": activeOrganizationID})
	}

	resp, err := req.Post("/client/sessions/{sessionID}/touch")
	if err != nil {
		return nil, nil, fmt.Errorf("touch session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, err
	}

	env, err := decodeEnvelope[*models.Session](resp)
	if err != nil {
		return nil, nil, err
	}
	return env.Response, env.Client, nil
}

// RemoveSession implements [Transport]. POST /v1/client/sessions/{id}/remove.
func (t *httpTransport) RemoveSession(ctx context.Context, sessionID string) (*models.Session, *models.Client, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID).
		Post("/client/sessions/{sessionID}/remove")
	if err != nil {
		return nil, nil, fmt.Errorf("remove session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, nil, err
	}

	env, err := decodeEnvelope[*models.Session](resp)
	if err != nil {
		return nil, nil, err
	}
	return env.Response, env.Client, nil
}

// RemoveClientSessions implements [Transport]. DELETE /v1/client/sessions
// signs out all sessions while the device cookie is retained; the response
// payload is the updated client itself.
func (t *httpTransport) RemoveClientSessions(ctx context.Context) (*models.Client, error) {
	resp, err := t.client.R().SetContext(ctx).Delete("/client/sessions")
	if err != nil {
		return nil, fmt.Errorf("remove client sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[*models.Client](resp)
	if err != nil {
		return nil, err
	}
	if env.Client != nil {
		return env.Client, nil
	}
	return env.Response, nil
}

// CreateSessionToken implements [Transport].
// POST /v1/client/sessions/{id}/tokens returns the token payload directly.
func (t *httpTransport) CreateSessionToken(ctx context.Context, sessionID, organizationID string) (*models.Token, error) {
	req := t.client.R().
		SetContext(ctx).
		SetPathParam("sessionID", sessionID)
	if organizationID != "" {
		req.SetFormData(map[string]string{"organization_id": organizationID})
	}

	resp, err := req.Post("/client/sessions/{sessionID}/tokens")
	if err != nil {
		return nil, fmt.Errorf("create session token request: %w", err)
	}
	return decodeToken(resp)
}

// CreateSessionTokenWithTemplate implements [Transport].
// POST /v1/client/sessions/{id}/tokens/{template}.
func (t *httpTransport) CreateSessionTokenWithTemplate(ctx context.Context, sessionID, template string) (*models.Token, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"sessionID": sessionID, "template": template}).
		Post("/client/sessions/{sessionID}/tokens/{template}")
	if err != nil {
		return nil, fmt.Errorf("create templated session token request: %w", err)
	}
	return decodeToken(resp)
}

func decodeToken(resp *resty.Response) (*models.Token, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var token models.Token
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if token.JWT == "" {
		return nil, fmt.Errorf("token response carried no jwt")
	}
	return &token, nil
}

func decodeEnvelope[T any](resp *resty.Response) (*models.Envelope[T], error) {
	var env models.Envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}
	return &env, nil
}

// mapHTTPError converts a non-2xx response into a [*APIError], decoding the
// machine-readable error list when the body carries one.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}

	body := strings.TrimSpace(string(resp.Body()))
	if body != "" {
		var payload models.APIErrorResponse
		if err := json.Unmarshal(resp.Body(), &payload); err == nil {
			apiErr.Errors = payload.Errors
			apiErr.TraceID = payload.TraceID
		}
	}

	return apiErr
}
