// internal/personnel/personnel.go
//
// Personnel holds the employee credentials loaded at startup. Checks are
// plain-text equality; there is no hashing, lockout or rate limiting.

package personnel

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Credential is one user-name/password pair from the personnel dataset.
type Credential struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// Store holds the loaded credential list.
type Store struct {
	credentials []Credential
}

// Load reads the personnel dataset at path. A dataset with zero entries is
// a valid store; login simply always fails against it.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("personnel: read dataset: %w", err)
	}
	var credentials []Credential
	if err := json.Unmarshal(raw, &credentials); err != nil {
		return nil, fmt.Errorf("personnel: parse dataset: %w", err)
	}
	for i, c := range credentials {
		if strings.TrimSpace(c.UserName) == "" {
			return nil, fmt.Errorf("personnel: record %d: missing user_name", i)
		}
	}
	return New(credentials), nil
}

// New builds a store over an already-parsed credential list.
func New(credentials []Credential) *Store {
	return &Store{credentials: credentials}
}

// IsValid reports whether some credential matches both user name and
// password exactly, case-sensitively.
func (s *Store) IsValid(userName, password string) bool {
	for _, c := range s.credentials {
		if c.UserName == userName && c.Password == password {
			return true
		}
	}
	return false
}
