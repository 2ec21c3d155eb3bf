package sdk

import "net/http"

// authScheme is the authorization scheme used by the SISE API
// (Django REST framework token authentication).
const authScheme = "Token"

// CredentialSource yields the bearer credential to attach to an outgoing
// request, or "" when no session exists. Implementations must return the
// credential current at call time, not a snapshot: requests may be issued
// long after a login or logout transition.
type CredentialSource interface {
	Credential() string
}

// StaticCredential is a CredentialSource holding a fixed token.
type StaticCredential string

func (s StaticCredential) Credential() string { return string(s) }

// Transport decorates outgoing requests with the current session credential.
// It is the single chokepoint through which authenticated API traffic flows.
// When the source yields no credential the request proceeds unmodified; the
// transport attaches credentials, it does not enforce authorization.
type Transport struct {
	// Source supplies the credential per request. May be nil.
	Source CredentialSource
	// Base is the underlying round tripper, http.DefaultTransport when nil.
	Base http.RoundTripper
}

var _ http.RoundTripper = (*Transport)(nil)

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	var cred string
	if t.Source != nil {
		cred = t.Source.Credential()
	}
	if cred == "" || req.Header.Get("Authorization") != "" {
		return base.RoundTrip(req)
	}

	// RoundTrip must not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", authScheme+" "+cred)
	return base.RoundTrip(clone)
}
