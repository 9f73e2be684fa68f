// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/progression"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username     string
	Password     string
	Demographics entity.Demographics
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// UpdateTargetsInput carries a partial goal update. Nutrients not present are
// left unchanged; a zero value resets that goal to its default.
type UpdateTargetsInput struct {
	Goals map[entity.Nutrient]float64
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	AccessToken string
	ExpiresIn   int64
	Roles       []string
	User        *entity.User
}

// ProfileOutput is the user's row with derived standing and resolved targets.
type ProfileOutput struct {
	User    *entity.User
	Targets entity.NutrientValues
	Rank    progression.Progress
}

// UserUsecase defines the account operations.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// OpenSession loads the user behind an authenticated identity.
	OpenSession(ctx context.Context, userID string) (*entity.Session, error)

	Profile(ctx context.Context, session *entity.Session) (*ProfileOutput, error)
	UpdateTargets(ctx context.Context, session *entity.Session, input *UpdateTargetsInput) (*entity.User, error)

	// Approve lets a registered user log in.
	Approve(ctx context.Context, userID string) error
}
