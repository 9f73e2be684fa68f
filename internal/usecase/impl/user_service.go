// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"nutriledger/config"
	deliverycontext "nutriledger/internal/delivery/context"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/progression"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/usecase"
	"nutriledger/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	adminUsernames []string
	newID          func() string
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	var admins []string
	if params.Config != nil && params.Config.Auth != nil {
		for _, name := range params.Config.Auth.AdminUsernames {
			admins = append(admins, strings.ToLower(strings.TrimSpace(name)))
		}
	}

	return &userService{
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		adminUsernames: admins,
		newID:          util.ShortID,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unapproved user seeded with the default goals.
// Configured admin usernames are approved immediately so the first operator
// can approve everyone else.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	_, err := srv.userRepo.FindByUsername(ctx, username)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected, username taken", slog.String("username", username))

		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.WithMessage(err, "check username")
	}

	credential, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.WithMessage(err, "hash password")
	}

	user := &entity.User{
		ID:           srv.newID(),
		Username:     username,
		Credential:   credential,
		Approved:     srv.isAdmin(username),
		Goals:        nutrition.DefaultTargets,
		RankPoints:   0,
		Tier:         progression.TierBronze.String(),
		Demographics: input.Demographics,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", username), slog.Any("error", err))

		return nil, errors.WithMessage(err, "create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID), slog.Bool("approved", user.Approved))

	return &usecase.RegisterOutput{User: user}, nil
}

// Login checks the credential and issues an access token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Warn("Login failed, unknown user", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.WithMessage(err, "find user")
	}

	if !srv.hasher.Check(input.Password, user.Credential) {
		srv.log(ctx).Warn("Login failed, wrong password", slog.String("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.Approved {
		return nil, domainerrors.ErrAccountNotApproved
	}

	roles := srv.rolesFor(user)
	token, err := srv.tokenService.GenerateAccessToken(user.ID, roles)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	srv.log(ctx).Debug("User logged in", slog.String("user_id", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		Roles:       roles,
		User:        user,
	}, nil
}

// OpenSession implements usecase.UserUsecase.
func (srv *userService) OpenSession(ctx context.Context, userID string) (*entity.Session, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.WithMessage(err, "load session user")
	}
	if !user.Approved {
		return nil, domainerrors.ErrAccountNotApproved
	}

	return entity.NewSession(user), nil
}

// Profile implements usecase.UserUsecase.
func (srv *userService) Profile(_ context.Context, session *entity.Session) (*usecase.ProfileOutput, error) {
	if session.UserID() == "" {
		return nil, domainerrors.ErrForbidden
	}

	return &usecase.ProfileOutput{
		User:    session.User,
		Targets: nutrition.ResolveTargets(session.User.Goals),
		Rank:    progression.TierOf(session.User.RankPoints),
	}, nil
}

// UpdateTargets writes only the supplied goals and returns the session user
// with the update mirrored in.
func (srv *userService) UpdateTargets(ctx context.Context, session *entity.Session, input *usecase.UpdateTargetsInput) (*entity.User, error) {
	if session.UserID() == "" {
		return nil, domainerrors.ErrForbidden
	}
	if len(input.Goals) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no goals supplied")
	}

	fields := make(map[string]string, len(input.Goals))
	for n, v := range input.Goals {
		if !n.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown nutrient: " + n.String())
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("goal must be a non-negative number: " + n.String())
		}
		fields[repository.GoalField(n)] = nutrition.FormatFloat(v)
	}

	if err := srv.userRepo.UpdateFields(ctx, session, session.UserID(), fields); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.WithMessage(err, "update goals")
	}

	srv.log(ctx).Info("Goals updated", slog.String("user_id", session.UserID()), slog.Int("fields", len(fields)))

	return session.User, nil
}

// Approve implements usecase.UserUsecase.
func (srv *userService) Approve(ctx context.Context, userID string) error {
	err := srv.userRepo.UpdateFields(ctx, nil, userID, map[string]string{
		repository.FieldApproved: repository.FormatBool(true),
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.WithMessage(err, "approve user")
	}

	srv.log(ctx).Info("User approved", slog.String("user_id", userID))

	return nil
}

func (srv *userService) isAdmin(username string) bool {
	return slices.Contains(srv.adminUsernames, strings.ToLower(username))
}

func (srv *userService) rolesFor(user *entity.User) []string {
	roles := entity.Roles{entity.RoleUser}
	if srv.isAdmin(user.Username) {
		roles = append(roles, entity.RoleAdmin)
	}

	return roles.ToStrings()
}
