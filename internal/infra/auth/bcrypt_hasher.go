// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/subtle"
	"log/slog"

	"nutriledger/config"
	"nutriledger/internal/domain/constants"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// NewPasswordHasher selects the credential scheme from auth.passwordMode.
func NewPasswordHasher(cfg *config.Config, logger *slog.Logger) (service.PasswordHasher, error) {
	switch cfg.Auth.PasswordMode {
	case constants.PasswordModeBcrypt:
		return NewBcryptHasher(cfg.Auth.BcryptCost), nil
	case constants.PasswordModePlaintext, "":
		logger.Warn("Credentials are stored in plaintext; set auth.passwordMode to bcrypt for new deployments")

		return NewPlaintextHasher(), nil
	default:
		return nil, errors.Errorf("unknown auth.passwordMode %q", cfg.Auth.PasswordMode)
	}
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. A cost outside the
// bcrypt range falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// plaintextHasher stores the password as-is, matching rows written by the
// spreadsheet front end.
type plaintextHasher struct{}

// NewPlaintextHasher is the constructor for plaintextHasher.
func NewPlaintextHasher() service.PasswordHasher {
	return plaintextHasher{}
}

func (plaintextHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plaintextHasher) Check(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
