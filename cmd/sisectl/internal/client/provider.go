package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/victorpuello/SISE/cmd/sisectl/internal/auth"
	"github.com/victorpuello/SISE/pkg/sdk"
)

// Provider yields authenticated HTTP and SDK clients backed by the
// credential store, plus the session manager for auth commands. Everything
// is constructed lazily and cached per process.
type Provider struct {
	serverURL   string
	timeout     time.Duration
	storePath   string // overrides the default store location when set
	bearerToken string // ephemeral token that bypasses the credential store

	storeOnce sync.Once
	store     sdk.CredentialStore
	storeErr  error

	credentialsOnce sync.Once
	credentials     *sdk.Credentials
	credentialsErr  error

	httpOnce sync.Once
	httpCli  *http.Client
	httpErr  error

	sdkOnce   sync.Once
	sdkClient *sdk.Client
	sdkErr    error

	sessionOnce sync.Once
	session     *sdk.SessionManager
	sessionErr  error
}

// NewProvider constructs a new Provider bound to the given server URL.
func NewProvider(serverURL string, timeout time.Duration) *Provider {
	return &Provider{serverURL: serverURL, timeout: timeout}
}

// SetBearerToken injects an ephemeral token (SISE_TOKEN) that bypasses the
// credential store, for scripting and CI.
func (p *Provider) SetBearerToken(token string) {
	p.bearerToken = token
}

// SetStorePath overrides the credential store location.
func (p *Provider) SetStorePath(path string) {
	p.storePath = path
}

// Store returns the credential store.
func (p *Provider) Store() (sdk.CredentialStore, error) {
	p.storeOnce.Do(func() {
		if p.storePath != "" {
			p.store = auth.NewFileStoreAt(p.storePath)
			return
		}
		store, err := auth.NewFileStore()
		if err != nil {
			p.storeErr = fmt.Errorf("failed to create credential store: %w", err)
			return
		}
		p.store = store
	})
	return p.store, p.storeErr
}

// Credentials loads the stored credentials record.
func (p *Provider) Credentials() (*sdk.Credentials, error) {
	p.credentialsOnce.Do(func() {
		store, err := p.Store()
		if err != nil {
			p.credentialsErr = err
			return
		}
		creds, err := store.LoadCredentials()
		if err != nil {
			p.credentialsErr = err
			return
		}
		p.credentials = creds
	})
	return p.credentials, p.credentialsErr
}

// HTTPClient returns an http.Client that attaches the stored (or injected)
// credential to every request.
func (p *Provider) HTTPClient() (*http.Client, error) {
	p.httpOnce.Do(func() {
		// Priority 1: ephemeral token from the environment.
		if p.bearerToken != "" {
			p.httpCli = p.tokenClient(p.bearerToken)
			return
		}

		// Priority 2: credential store.
		creds, err := p.Credentials()
		if err != nil {
			if errors.Is(err, sdk.ErrNoCredentials) || errors.Is(err, sdk.ErrCredentialsCorrupt) {
				p.httpErr = errors.New("not logged in; please run `sisectl auth login`")
				return
			}
			p.httpErr = err
			return
		}
		p.httpCli = p.tokenClient(creds.Token)
	})
	return p.httpCli, p.httpErr
}

// tokenClient builds an oauth2 client carrying the SISE token scheme.
func (p *Provider) tokenClient(credential string) *http.Client {
	token := &oauth2.Token{
		AccessToken: credential,
		TokenType:   "Token",
	}
	cli := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(token))
	cli.Timeout = p.timeout
	return cli
}

// SDKClient returns an authenticated SDK client backed by HTTPClient.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.sdkOnce.Do(func() {
		httpClient, err := p.HTTPClient()
		if err != nil {
			p.sdkErr = err
			return
		}
		p.sdkClient = sdk.NewClient(p.serverURL, sdk.WithHTTPClient(httpClient))
	})
	return p.sdkClient, p.sdkErr
}

// SessionManager returns the process-wide session manager. Callers own
// running Initialize before any session operation.
func (p *Provider) SessionManager() (*sdk.SessionManager, error) {
	p.sessionOnce.Do(func() {
		store, err := p.Store()
		if err != nil {
			p.sessionErr = err
			return
		}
		p.session = sdk.NewSessionManager(p.serverURL, store, sdk.WithTimeout(p.timeout))
	})
	return p.session, p.sessionErr
}
