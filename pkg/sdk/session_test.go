package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeEmptyStore(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	m := NewSessionManager(server.URL, NewMemoryStore())
	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, called, "no stored record should mean no validation call")
}

func TestInitializeRestoresSessionKeepingOriginalToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "email": "a@b.com", "nombre": "Ana", "apellido": "Diaz", "rol": "Docente",
		})
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(&Credentials{
		Version: CredentialsVersion, Token: "abc", Email: "stale@b.com", Role: "profesor",
	}))

	m := NewSessionManager(server.URL, store)
	require.NoError(t, m.Initialize(context.Background()))

	require.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "Token abc", gotAuth)

	sess := m.Current()
	require.NotNil(t, sess)
	assert.Equal(t, "abc", sess.Credential, "profile fetch must not replace the stored token")
	assert.Equal(t, RoleDocente, sess.Role)
	assert.Equal(t, "a@b.com", sess.Email)
	assert.True(t, m.IsTeacher())
	assert.False(t, m.IsAdmin())
}

func TestInitializeCorruptRecordClearsStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no API call expected for a corrupt record")
	}))
	defer server.Close()

	store := NewMemoryStore()
	store.SetRaw([]byte("not json at all"))

	m := NewSessionManager(server.URL, store)
	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, StateAnonymous, m.State())
	_, err := store.LoadCredentials()
	assert.True(t, errors.Is(err, ErrNoCredentials), "corrupt record must be cleared")
}

func TestInitializeRejectedTokenClearsStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid token."})
	}))
	defer server.Close()

	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(&Credentials{Version: CredentialsVersion, Token: "stale"}))

	m := NewSessionManager(server.URL, store)
	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, StateAnonymous, m.State())
	_, err := store.LoadCredentials()
	assert.True(t, errors.Is(err, ErrNoCredentials))
}

func TestInitializeUnreachableServerDegradesToAnonymous(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SaveCredentials(&Credentials{Version: CredentialsVersion, Token: "abc"}))

	// Nothing is listening on this address.
	m := NewSessionManager("http://127.0.0.1:1", store)
	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, StateAnonymous, m.State())
}

func TestInitializeTwice(t *testing.T) {
	m := NewSessionManager("http://127.0.0.1:1", NewMemoryStore())
	require.NoError(t, m.Initialize(context.Background()))
	assert.ErrorIs(t, m.Initialize(context.Background()), ErrAlreadyInitialized)
}

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ana@colegio.edu", body["email"])
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok123", "id": 7, "email": "ana@colegio.edu",
			"nombre": "Ana", "apellido": "Diaz", "rol": "profesor",
		})
	}))
	defer server.Close()

	store := NewMemoryStore()
	m := NewSessionManager(server.URL, store)
	require.NoError(t, m.Initialize(context.Background()))

	var observed []SessionState
	cancel := m.Subscribe(func(state SessionState, _ *Session) {
		observed = append(observed, state)
	})
	defer cancel()

	sess, err := m.Login(context.Background(), "ana@colegio.edu", "secret")
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, RoleDocente, sess.Role, "role normalized on login")
	assert.Equal(t, "tok123", sess.Credential)

	// Subscribers observe the transition before Login returns.
	assert.Contains(t, observed, StateAuthenticated)

	assert.True(t, m.Is(RoleDocente))
	for _, other := range []Role{RoleAdministrador, RoleDirector, RoleEstudiante, RoleAcudiente} {
		assert.False(t, m.Is(other), "unexpected role match for %s", other)
	}

	persisted, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, CredentialsVersion, persisted.Version)
	assert.Equal(t, "tok123", persisted.Token)
	assert.Equal(t, RoleDocente, persisted.Role, "persisted role is canonical")
}

func TestLoginForbiddenLeavesStateUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "blocked"})
	}))
	defer server.Close()

	m := NewSessionManager(server.URL, NewMemoryStore())
	require.NoError(t, m.Initialize(context.Background()))

	_, err := m.Login(context.Background(), "x@y.com", "bad")
	require.Error(t, err)
	assert.True(t, IsForbidden(err))
	assert.Contains(t, err.Error(), "blocked")
	assert.Equal(t, StateAnonymous, m.State())
}

func TestLoginRejectedClassifiedAsInvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "credenciales incorrectas"})
	}))
	defer server.Close()

	m := NewSessionManager(server.URL, NewMemoryStore())
	require.NoError(t, m.Initialize(context.Background()))

	_, err := m.Login(context.Background(), "x@y.com", "bad")
	require.Error(t, err)
	assert.True(t, IsInvalidCredentials(err))
	assert.Contains(t, err.Error(), "credenciales incorrectas")
}

func TestLoginBeforeInitialize(t *testing.T) {
	m := NewSessionManager("http://127.0.0.1:1", NewMemoryStore())
	_, err := m.Login(context.Background(), "x@y.com", "pw")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestLogoutClearsLocallyWhenServerFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login/":
			json.NewEncoder(w).Encode(map[string]any{"token": "tok", "id": 1, "rol": "admin"})
		case "/logout/":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	store := NewMemoryStore()
	m := NewSessionManager(server.URL, store)
	require.NoError(t, m.Initialize(context.Background()))
	_, err := m.Login(context.Background(), "x@y.com", "pw")
	require.NoError(t, err)
	require.True(t, m.IsAdmin())

	require.NoError(t, m.Logout(context.Background()))

	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAdmin())
	assert.Nil(t, m.Current())
	_, err = store.LoadCredentials()
	assert.True(t, errors.Is(err, ErrNoCredentials), "store cleared despite server failure")
}

func TestConcurrentLoginLogoutSerialized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login/":
			json.NewEncoder(w).Encode(map[string]any{"token": "tok", "id": 1, "rol": "docente"})
		case "/logout/":
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	store := NewMemoryStore()
	m := NewSessionManager(server.URL, store)
	require.NoError(t, m.Initialize(context.Background()))

	var obsMu sync.Mutex
	var observed []SessionState
	m.Subscribe(func(state SessionState, _ *Session) {
		obsMu.Lock()
		observed = append(observed, state)
		obsMu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			m.Login(context.Background(), "x@y.com", "pw")
		}()
		go func() {
			defer wg.Done()
			m.Logout(context.Background())
		}()
	}
	wg.Wait()

	final := m.State()
	require.Contains(t, []SessionState{StateAuthenticated, StateAnonymous}, final)

	// Subscribers only ever see terminal states, in operation order; the
	// last notification is the state the racing operations settled on.
	obsMu.Lock()
	defer obsMu.Unlock()
	require.NotEmpty(t, observed)
	for _, state := range observed {
		assert.Contains(t, []SessionState{StateAuthenticated, StateAnonymous}, state)
	}
	assert.Equal(t, final, observed[len(observed)-1], "last operation to complete wins")

	// Session and store agree with the final state, never a partial mix.
	if final == StateAuthenticated {
		require.NotNil(t, m.Current())
		_, err := store.LoadCredentials()
		require.NoError(t, err)
	} else {
		assert.Nil(t, m.Current())
		_, err := store.LoadCredentials()
		assert.True(t, errors.Is(err, ErrNoCredentials))
	}
}

func TestChangePasswordRequiresSession(t *testing.T) {
	m := NewSessionManager("http://127.0.0.1:1", NewMemoryStore())
	require.NoError(t, m.Initialize(context.Background()))
	assert.ErrorIs(t, m.ChangePassword(context.Background(), "old", "newpassword"), ErrNotAuthenticated)
}

func TestChangePasswordUsesCurrentSession(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login/":
			json.NewEncoder(w).Encode(map[string]any{"token": "tok", "id": 42, "rol": "docente"})
		default:
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
	}))
	defer server.Close()

	m := NewSessionManager(server.URL, NewMemoryStore())
	require.NoError(t, m.Initialize(context.Background()))
	_, err := m.Login(context.Background(), "x@y.com", "pw")
	require.NoError(t, err)

	require.NoError(t, m.ChangePassword(context.Background(), "oldpw", "newpassword"))

	assert.Equal(t, "/usuarios/42/change_password/", gotPath)
	assert.Equal(t, "Token tok", gotAuth, "dispatcher attaches the current credential")
	assert.Equal(t, "oldpw", gotBody["old_password"])
	assert.Equal(t, "newpassword", gotBody["new_password"])
	assert.Equal(t, "newpassword", gotBody["confirm_password"], "server rejects the request without confirmation")

	// Session unchanged by a password change.
	sess := m.Current()
	require.NotNil(t, sess)
	assert.Equal(t, "tok", sess.Credential)
}
