package password

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore persists passwords in the operating system keyring under a
// fixed service name. The keyring API exchanges plaintext as ordinary
// strings, which cannot be wiped; the store copies content into a secure
// buffer as soon as it is retrieved.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store scoped to the given service name.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// Service returns the service name the store is scoped to.
func (s *KeyringStore) Service() string {
	return s.service
}

// Set stores p's content under name.
func (s *KeyringStore) Set(name string, p *Password) error {
	if err := keyring.Set(s.service, name, p.PlainText()); err != nil {
		return fmt.Errorf("keyring set %s: %w", name, err)
	}
	return nil
}

// Get retrieves the password stored under name. A missing entry is
// reported as ErrNotFound.
func (s *KeyringStore) Get(name string) (*Password, error) {
	value, err := keyring.Get(s.service, name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("keyring get %s: %w", name, err)
	}
	return FromString(value), nil
}

// Delete removes the entry stored under name. A missing entry is reported
// as ErrNotFound.
func (s *KeyringStore) Delete(name string) error {
	if err := keyring.Delete(s.service, name); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("keyring delete %s: %w", name, err)
	}
	return nil
}
