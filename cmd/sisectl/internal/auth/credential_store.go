package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/victorpuello/SISE/pkg/sdk"
)

const credentialsFile = "session.json"

// FileStore implements sdk.CredentialStore using a JSON file under the
// user's home directory. This is the CLI's credential persistence
// implementation; the session manager is its only writer.
type FileStore struct {
	path string
}

// Ensure FileStore implements sdk.CredentialStore at compile time.
var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore at the default ~/.sise/session.json.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	siseDir := filepath.Join(home, ".sise")
	if err := os.MkdirAll(siseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create .sise directory: %w", err)
	}
	return &FileStore{
		path: filepath.Join(siseDir, credentialsFile),
	}, nil
}

// NewFileStoreAt creates a FileStore at an explicit path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// SaveCredentials writes the record, replacing any prior one atomically so
// a reader never observes a partial write.
func (s *FileStore) SaveCredentials(creds *sdk.Credentials) error {
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace credentials file: %w", err)
	}
	return nil
}

// LoadCredentials loads the record. An unreadable or unparseable file
// yields sdk.ErrNoCredentials or sdk.ErrCredentialsCorrupt respectively.
func (s *FileStore) LoadCredentials() (*sdk.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sdk.ErrNoCredentials
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return sdk.DecodeCredentials(data)
}

// DeleteCredentials removes the record. Idempotent.
func (s *FileStore) DeleteCredentials() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(s.path)
}
