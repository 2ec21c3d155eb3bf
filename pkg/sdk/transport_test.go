package sdk

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentialFunc func() string

func (f credentialFunc) Credential() string { return f() }

func TestTransportAttachesCurrentCredential(t *testing.T) {
	var seen []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
	}))
	defer server.Close()

	cred := ""
	client := &http.Client{Transport: &Transport{Source: credentialFunc(func() string { return cred })}}

	// Anonymous: request passes through unmodified.
	resp, err := client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	// Credential appears without rebuilding the client.
	cred = "tok-1"
	resp, err = client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	// And follows later changes: the source is read per call, not captured.
	cred = "tok-2"
	resp, err = client.Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"", "Token tok-1", "Token tok-2"}, seen)
}

func TestTransportKeepsExplicitAuthorization(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer server.Close()

	client := &http.Client{Transport: &Transport{Source: StaticCredential("session-token")}}

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Token override")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Token override", got)
}

func TestTransportDoesNotMutateRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := &http.Client{Transport: &Transport{Source: StaticCredential("tok")}}

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, req.Header.Get("Authorization"))
}
