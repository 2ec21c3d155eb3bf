package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
)

// SessionState is the lifecycle state of the SessionManager.
type SessionState int

const (
	// StateUninitialized is the state before Initialize has been called.
	StateUninitialized SessionState = iota
	// StateRestoring is the transient state while a persisted record is
	// being revalidated. Consumers must suspend session-dependent work
	// while restoring; Initialize never terminates in this state.
	StateRestoring
	// StateAuthenticated means a validated session exists.
	StateAuthenticated
	// StateAnonymous means no session exists.
	StateAnonymous
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Session is the authenticated identity of the running client.
type Session struct {
	UserID     int
	Email      string
	GivenName  string
	FamilyName string
	Role       Role
	// Credential is the opaque bearer token backing this session.
	Credential string
	// Extra preserves server profile fields the client does not model.
	Extra map[string]json.RawMessage
}

// DisplayName returns "GivenName FamilyName", falling back to the email.
func (s *Session) DisplayName() string {
	if s.GivenName == "" && s.FamilyName == "" {
		return s.Email
	}
	if s.FamilyName == "" {
		return s.GivenName
	}
	return s.GivenName + " " + s.FamilyName
}

// SessionManager owns the in-memory session and is its sole mutator. It is
// the single source of truth for "is anyone logged in and who".
//
// Lifecycle: Uninitialized to Restoring to Authenticated or Anonymous, then
// login/logout transitions between the latter two. Initialize must complete
// before Login, Logout or ChangePassword is invoked.
//
// Mutating operations are serialized: a login racing a logout resolves to
// whichever completes last, never to an interleaved partial state.
type SessionManager struct {
	client *Client
	store  CredentialStore

	// opMu serializes mutating operations end to end, including their
	// network round trips.
	opMu sync.Mutex

	// mu guards state, session and subscribers.
	mu      sync.Mutex
	state   SessionState
	session *Session
	subs    map[int]func(SessionState, *Session)
	nextSub int
}

// NewSessionManager creates a manager talking to the API at baseURL and
// persisting through store. The manager's own API client routes through a
// Transport reading the manager, so requests issued while authenticated
// carry the current session credential automatically.
func NewSessionManager(baseURL string, store CredentialStore, optFns ...ClientOption) *SessionManager {
	m := &SessionManager{
		store: store,
		state: StateUninitialized,
		subs:  make(map[int]func(SessionState, *Session)),
	}
	optFns = append(optFns, WithCredentialSource(m))
	m.client = NewClient(baseURL, optFns...)
	return m
}

// Client exposes the manager's API client. Its transport reads the current
// session per request, so it is safe to share with resource clients.
func (m *SessionManager) Client() *Client { return m.client }

// State returns the current lifecycle state.
func (m *SessionManager) State() SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Current returns a copy of the active session, or nil when not
// authenticated. Callers never receive a mutable handle on the manager's
// own session value.
func (m *SessionManager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated || m.session == nil {
		return nil
	}
	return copySession(m.session)
}

// Credential implements CredentialSource. It returns the token of the
// current session, or "" when anonymous, read at call time.
func (m *SessionManager) Credential() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated || m.session == nil {
		return ""
	}
	return m.session.Credential
}

// Is reports whether the current session has the given role. It returns
// false, not an error, when no session exists. Comparison ignores case.
func (m *SessionManager) Is(role Role) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated || m.session == nil {
		return false
	}
	return m.session.Role.Equal(role)
}

func (m *SessionManager) IsAdmin() bool       { return m.Is(RoleAdministrador) }
func (m *SessionManager) IsCoordinator() bool { return m.Is(RoleDirector) }
func (m *SessionManager) IsTeacher() bool     { return m.Is(RoleDocente) }
func (m *SessionManager) IsStudent() bool     { return m.Is(RoleEstudiante) }
func (m *SessionManager) IsGuardian() bool    { return m.Is(RoleAcudiente) }

// Subscribe registers fn to be called on every state transition. The
// callback runs before the triggering operation returns, so an awaited
// Login, Logout or Initialize is never observed stale. The returned func
// cancels the subscription.
func (m *SessionManager) Subscribe(fn func(SessionState, *Session)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Initialize restores a persisted session, if any. It must be called
// exactly once, before any other session operation.
//
// Every code path terminates in Authenticated or Anonymous:
//   - no stored record: Anonymous
//   - corrupt record: store cleared, Anonymous
//   - record present and GET /user/ succeeds: fresh profile merged with the
//     ORIGINAL stored token, role normalized, Authenticated
//   - record present, any validation failure (network, non-2xx, bad body):
//     store cleared, Anonymous
//
// Failures during restore are recovered silently; nobody is waiting on a
// login form at startup.
func (m *SessionManager) Initialize(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if m.state != StateUninitialized {
		m.mu.Unlock()
		return ErrAlreadyInitialized
	}
	m.state = StateRestoring
	m.mu.Unlock()

	creds, err := m.store.LoadCredentials()
	if err != nil {
		if errors.Is(err, ErrCredentialsCorrupt) {
			if clearErr := m.store.DeleteCredentials(); clearErr != nil {
				log.Printf("sise: failed to clear corrupt credentials: %v", clearErr)
			}
		} else if !errors.Is(err, ErrNoCredentials) {
			log.Printf("sise: failed to load stored credentials: %v", err)
		}
		m.transition(StateAnonymous, nil)
		return nil
	}

	profile, err := m.client.CurrentUser(ctx, creds.Token)
	if err != nil {
		if clearErr := m.store.DeleteCredentials(); clearErr != nil {
			log.Printf("sise: failed to clear stale credentials: %v", clearErr)
		}
		m.transition(StateAnonymous, nil)
		return nil
	}

	// The /user/ endpoint never re-issues the token; keep the stored one.
	profile.Token = creds.Token
	m.transition(StateAuthenticated, sessionFromCredentials(profile))
	return nil
}

// Login exchanges credentials for a session. On success the new session
// replaces the current one wholesale, is persisted, and is returned. On
// failure the state is left untouched and a classified error is returned.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*Session, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.requireReady(); err != nil {
		return nil, err
	}

	creds, err := m.client.Login(ctx, LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	creds.Version = CredentialsVersion
	creds.Role = NormalizeRole(string(creds.Role))
	if err := m.store.SaveCredentials(creds); err != nil {
		// Recoverable: the session lives in memory and simply will not
		// survive a restart.
		log.Printf("sise: failed to persist session: %v", err)
	}

	sess := sessionFromCredentials(creds)
	m.transition(StateAuthenticated, sess)
	return copySession(sess), nil
}

// Logout ends the session. The server is notified best-effort: a hung or
// failed /logout/ call never prevents the local session from being cleared.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if err := m.requireReady(); err != nil {
		return err
	}

	if cred := m.Credential(); cred != "" {
		if err := m.client.Logout(ctx, cred); err != nil {
			log.Printf("sise: logout notification failed: %v", err)
		}
	}

	if err := m.store.DeleteCredentials(); err != nil {
		log.Printf("sise: failed to clear stored credentials: %v", err)
	}
	m.transition(StateAnonymous, nil)
	return nil
}

// ChangePasswordInput is the body of POST /usuarios/{id}/change_password/.
// The server requires ConfirmPassword and rejects the request when it does
// not match NewPassword.
type ChangePasswordInput struct {
	OldPassword     string `json:"old_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// ChangePassword changes the current user's password. It requires an
// authenticated session; calling it while anonymous is a programming error
// and fails fast with ErrNotAuthenticated. The session itself is unchanged
// on success.
func (m *SessionManager) ChangePassword(ctx context.Context, current, updated string) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	if m.state == StateUninitialized || m.state == StateRestoring {
		m.mu.Unlock()
		return ErrNotInitialized
	}
	if m.state != StateAuthenticated || m.session == nil {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	userID := m.session.UserID
	m.mu.Unlock()

	input := ChangePasswordInput{OldPassword: current, NewPassword: updated, ConfirmPassword: updated}
	if err := validateInput(input); err != nil {
		return err
	}
	return m.client.ChangeUserPassword(ctx, userID, input)
}

// requireReady rejects mutating operations before Initialize has settled.
func (m *SessionManager) requireReady() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateUninitialized || m.state == StateRestoring {
		return ErrNotInitialized
	}
	return nil
}

// transition swaps the state and session, then notifies subscribers before
// returning to the caller. Callbacks run outside the field lock so they may
// read the manager freely.
func (m *SessionManager) transition(state SessionState, sess *Session) {
	m.mu.Lock()
	m.state = state
	m.session = sess
	subs := make([]func(SessionState, *Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(state, copySession(sess))
	}
}

func sessionFromCredentials(creds *Credentials) *Session {
	sess := &Session{
		UserID:     creds.UserID,
		Email:      creds.Email,
		GivenName:  creds.GivenName,
		FamilyName: creds.FamilyName,
		Role:       NormalizeRole(string(creds.Role)),
		Credential: creds.Token,
	}
	if len(creds.Extra) > 0 {
		sess.Extra = make(map[string]json.RawMessage, len(creds.Extra))
		for k, v := range creds.Extra {
			sess.Extra[k] = v
		}
	}
	return sess
}

func copySession(sess *Session) *Session {
	if sess == nil {
		return nil
	}
	dup := *sess
	if len(sess.Extra) > 0 {
		dup.Extra = make(map[string]json.RawMessage, len(sess.Extra))
		for k, v := range sess.Extra {
			dup.Extra[k] = v
		}
	}
	return &dup
}
