package sdk

import (
	"encoding/json"
	"sync"
)

// MemoryStore is an in-process CredentialStore. It keeps the record in its
// serialized form so it behaves exactly like durable storage, corruption
// handling included. Useful for embedding the SDK without a filesystem and
// for tests.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

var _ CredentialStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SaveCredentials(creds *Credentials) error {
	data, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) LoadCredentials() (*Credentials, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()

	if data == nil {
		return nil, ErrNoCredentials
	}
	return DecodeCredentials(data)
}

func (s *MemoryStore) DeleteCredentials() error {
	s.mu.Lock()
	s.data = nil
	s.mu.Unlock()
	return nil
}

// SetRaw replaces the stored bytes verbatim, bypassing serialization. Tests
// use it to simulate a corrupted or legacy record.
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	s.data = append([]byte(nil), data...)
	s.mu.Unlock()
}
