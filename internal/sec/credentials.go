package sec

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Role is a coarse authorization tag attached to a principal.
type Role string

// The roles known to the service.
const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole resolves a role name from configuration.
func ParseRole(name string) (Role, error) {
	switch Role(name) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	}
	return "", fmt.Errorf("unknown role %q", name)
}

// ErrInvalidCredentials is returned for any authentication failure. The cause
// (unknown user vs wrong password) is deliberately not distinguishable.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Principal is an authenticated identity with its role set.
type Principal struct {
	Name  string
	Roles []Role
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role Role) bool {
	return slices.Contains(p.Roles, role)
}

// Account is a single credential entry: a username, the bcrypt hash of its
// password, and its roles. Plaintext passwords are never stored.
type Account struct {
	Name         string
	PasswordHash []byte
	Roles        []Role
}

// CredentialStore verifies username/password pairs against a static account
// set. It is immutable after construction and safe for concurrent use.
type CredentialStore struct {
	accounts map[string]Account
}

// NewCredentialStore builds a store from the given accounts. Later entries
// with a duplicate username replace earlier ones.
func NewCredentialStore(accounts []Account) *CredentialStore {
	byName := make(map[string]Account, len(accounts))
	for _, acct := range accounts {
		byName[acct.Name] = acct
	}
	return &CredentialStore{accounts: byName}
}

// dummyHash is compared against when the username is unknown, so that lookup
// misses cost as much as a wrong password.
var dummyHash = sync.OnceValue(func() []byte {
	return MustHashPassword("dummy-timing-equalizer")
})

// Verify resolves the principal for a username/password pair. Any failure
// returns [ErrInvalidCredentials] with no further detail.
func (s *CredentialStore) Verify(username, password string) (Principal, error) {
	acct, ok := s.accounts[username]
	if !ok {
		_ = ComparePassword(password, dummyHash())
		return Principal{}, ErrInvalidCredentials
	}
	if err := ComparePassword(password, acct.PasswordHash); err != nil {
		return Principal{}, ErrInvalidCredentials
	}
	return Principal{Name: acct.Name, Roles: acct.Roles}, nil
}
