package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorpuello/SISE/pkg/sdk"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStoreAt(filepath.Join(t.TempDir(), "session.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := tempStore(t)

	creds := &sdk.Credentials{
		Version:    sdk.CredentialsVersion,
		Token:      "tok-123",
		UserID:     7,
		Email:      "docente@colegio.edu.co",
		GivenName:  "Carlos",
		FamilyName: "Mendez",
		Role:       sdk.RoleDocente,
	}
	require.NoError(t, store.SaveCredentials(creds))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", loaded.Token)
	assert.Equal(t, sdk.RoleDocente, loaded.Role)
	assert.Equal(t, "docente@colegio.edu.co", loaded.Email)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := tempStore(t)

	_, err := store.LoadCredentials()
	assert.True(t, errors.Is(err, sdk.ErrNoCredentials))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewFileStoreAt(path)
	_, err := store.LoadCredentials()
	assert.True(t, errors.Is(err, sdk.ErrCredentialsCorrupt))
}

func TestFileStoreWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"token":"tok"}`), 0600))

	store := NewFileStoreAt(path)
	_, err := store.LoadCredentials()
	assert.True(t, errors.Is(err, sdk.ErrCredentialsCorrupt))
}

func TestFileStoreDeleteIsIdempotent(t *testing.T) {
	store := tempStore(t)

	require.NoError(t, store.DeleteCredentials())

	creds := &sdk.Credentials{Version: sdk.CredentialsVersion, Token: "tok"}
	require.NoError(t, store.SaveCredentials(creds))
	require.NoError(t, store.DeleteCredentials())
	require.NoError(t, store.DeleteCredentials())

	_, err := store.LoadCredentials()
	assert.True(t, errors.Is(err, sdk.ErrNoCredentials))
}

func TestFileStoreSaveReplacesAtomically(t *testing.T) {
	store := tempStore(t)

	first := &sdk.Credentials{Version: sdk.CredentialsVersion, Token: "first"}
	require.NoError(t, store.SaveCredentials(first))

	second := &sdk.Credentials{Version: sdk.CredentialsVersion, Token: "second"}
	require.NoError(t, store.SaveCredentials(second))

	loaded, err := store.LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.Token)

	// No temp file left behind.
	_, err = os.Stat(store.path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
