package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// defaultTimeout bounds every API request unless the caller supplies a
// client with its own timeout.
const defaultTimeout = 30 * time.Second

// Client provides a typed interface to the SISE REST API. It owns URL
// construction, JSON encoding and error classification; credential
// attachment is delegated to Transport.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// ClientOptions configures SDK client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	Source     CredentialSource
	UserAgent  string
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls. Its settings
// are copied into the SDK's own client, so the caller's instance is never
// modified; combine with WithCredentialSource only when its transport does
// not already attach credentials.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = client
	}
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.Timeout = timeout
	}
}

// WithCredentialSource wires the client's transport through a Transport
// reading the given source per request.
func WithCredentialSource(source CredentialSource) ClientOption {
	return func(opts *ClientOptions) {
		opts.Source = source
	}
}

// WithUserAgent sets the User-Agent header on outgoing requests.
func WithUserAgent(ua string) ClientOption {
	return func(opts *ClientOptions) {
		opts.UserAgent = ua
	}
}

// NewClient creates a SISE SDK client for the API server at baseURL
// (e.g. "http://localhost:8000/api"). An http.Client is created
// automatically when one is not supplied.
func NewClient(baseURL string, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	httpClient := &http.Client{Timeout: defaultTimeout}
	if opts.HTTPClient != nil {
		// Shallow copy so the caller's client is never mutated.
		cloned := *opts.HTTPClient
		httpClient = &cloned
	}
	if opts.Timeout > 0 {
		httpClient.Timeout = opts.Timeout
	}
	if opts.Source != nil {
		httpClient.Transport = &Transport{Source: opts.Source, Base: httpClient.Transport}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  opts.UserAgent,
	}
}

// BaseURL returns the API base URL the client was constructed with.
func (c *Client) BaseURL() string { return c.baseURL }

// do issues a JSON request against path. A non-empty credential overrides
// whatever the transport would attach; this is how the session manager
// revalidates a stored token before any session exists. When out is non-nil
// the 2xx response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, credential string, in, out any) error {
	target, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", authScheme+" "+credential)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: ErrKindUnavailable, Detail: "connection failed", err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// decodeAPIError turns a non-2xx response into a classified *APIError,
// preferring the server's {detail} or {message} text when present.
func decodeAPIError(resp *http.Response) error {
	detail := resp.Status
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Detail != "":
			detail = payload.Detail
		case payload.Message != "":
			detail = payload.Message
		}
	}

	kind := ErrKindUnknown
	switch resp.StatusCode {
	case http.StatusForbidden:
		kind = ErrKindForbidden
	case http.StatusUnauthorized:
		kind = ErrKindInvalidCredentials
	}

	return &APIError{Kind: kind, StatusCode: resp.StatusCode, Detail: detail}
}

// Health probes GET /health/. The server also uses this endpoint to seed
// CSRF state, so a login flow calls it best-effort first.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health/", nil, "", nil, nil)
}

// LoginInput is the credential-exchange request body for POST /login/.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges an email and password for a credentials record. The
// returned record carries the token plus the profile fields from the
// response; its Role is NOT yet normalized and its Version is unset, as the
// session manager owns both before persisting.
//
// A 403 is surfaced as a Forbidden error with the server's detail text;
// any other rejection is classified as invalid credentials.
func (c *Client) Login(ctx context.Context, input LoginInput) (*Credentials, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var creds Credentials
	if err := c.do(ctx, http.MethodPost, "/login/", nil, "", input, &creds); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Kind == ErrKindUnknown {
			apiErr.Kind = ErrKindInvalidCredentials
		}
		return nil, err
	}
	if creds.Token == "" {
		return nil, &APIError{Kind: ErrKindUnknown, Detail: "login response contained no token"}
	}
	return &creds, nil
}

// CurrentUser fetches the profile behind a credential via GET /user/. The
// response decodes into a Credentials value whose Token is empty: the server
// never re-issues the token on this endpoint.
func (c *Client) CurrentUser(ctx context.Context, credential string) (*Credentials, error) {
	var profile Credentials
	if err := c.do(ctx, http.MethodGet, "/user/", nil, credential, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Logout notifies the server that a credential should be revoked.
func (c *Client) Logout(ctx context.Context, credential string) error {
	return c.do(ctx, http.MethodPost, "/logout/", nil, credential, nil, nil)
}
