package auth

import (
	"fmt"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// StaffAuthenticator checks the single shared staff credential.
type StaffAuthenticator struct {
	username     string
	passwordHash []byte
}

// New uses cfg.PasswordHash when set and otherwise hashes cfg.Password so
// the plain value is not kept around.
func New(cfg config.AuthConfig) (*StaffAuthenticator, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash staff password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("auth.password_hash: %w", err)
	}
	return &StaffAuthenticator{username: cfg.Username, passwordHash: hash}, nil
}

func (a *StaffAuthenticator) Authenticate(username, password string) error {
	if username != a.username {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
		return domain.ErrUnauthorized
	}
	return nil
}
