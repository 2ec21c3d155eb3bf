package sdk

import (
	"encoding/json"
	"fmt"
)

// CredentialsVersion is the current schema version of the persisted record.
// Records carrying a different version are treated as corrupt and cleared
// rather than migrated.
const CredentialsVersion = 1

// Credentials is the persisted form of an authenticated session: the opaque
// bearer token issued by POST /login/ together with the profile fields the
// server returned alongside it.
//
// Fields the client does not model are kept verbatim in Extra so that a
// newer server can round-trip through an older client.
type Credentials struct {
	Version    int    `json:"version"`
	Token      string `json:"token"`
	UserID     int    `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"nombre"`
	FamilyName string `json:"apellido"`
	Role       Role   `json:"rol"`

	// Extra holds unmodeled server fields, keyed by their JSON name.
	Extra map[string]json.RawMessage `json:"-"`
}

// knownCredentialFields are the JSON keys owned by the typed fields above.
var knownCredentialFields = map[string]struct{}{
	"version":  {},
	"token":    {},
	"id":       {},
	"email":    {},
	"nombre":   {},
	"apellido": {},
	"rol":      {},
}

func (c *Credentials) UnmarshalJSON(data []byte) error {
	type plain Credentials
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key := range fields {
		if _, ok := knownCredentialFields[key]; ok {
			delete(fields, key)
		}
	}
	if len(fields) > 0 {
		p.Extra = fields
	}

	*c = Credentials(p)
	return nil
}

func (c Credentials) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(c.Extra)+len(knownCredentialFields))
	for key, raw := range c.Extra {
		if _, ok := knownCredentialFields[key]; ok {
			continue
		}
		fields[key] = raw
	}

	type plain Credentials
	typed, err := json.Marshal(plain(c))
	if err != nil {
		return nil, err
	}
	var typedFields map[string]json.RawMessage
	if err := json.Unmarshal(typed, &typedFields); err != nil {
		return nil, err
	}
	for key, raw := range typedFields {
		fields[key] = raw
	}

	return json.Marshal(fields)
}

// Validate checks that the record is usable as a session. A failing record
// must be treated as absent by callers.
func (c *Credentials) Validate() error {
	if c.Version != CredentialsVersion {
		return fmt.Errorf("unsupported credentials version: %d (expected %d)", c.Version, CredentialsVersion)
	}
	if c.Token == "" {
		return fmt.Errorf("credentials record has no token")
	}
	return nil
}

// DecodeCredentials parses a persisted record. A record that does not parse
// or does not validate yields ErrCredentialsCorrupt, which the session
// manager treats as "absent, clear the store defensively".
func DecodeCredentials(data []byte) (*Credentials, error) {
	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialsCorrupt, err)
	}
	if err := creds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCredentialsCorrupt, err)
	}
	return &creds, nil
}

// CredentialStore is the durable persistence boundary for exactly one
// credentials record. The session manager is the sole writer; at most one
// record exists at a time and every save replaces it wholesale.
//
// LoadCredentials returns ErrNoCredentials when nothing is stored and
// ErrCredentialsCorrupt when a stored record does not decode. Callers must
// treat corruption exactly like absence after clearing the store.
type CredentialStore interface {
	SaveCredentials(creds *Credentials) error
	LoadCredentials() (*Credentials, error)
	DeleteCredentials() error
}
