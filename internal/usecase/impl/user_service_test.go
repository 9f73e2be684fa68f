package impl

import (
	"context"
	"testing"
	"time"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/infra/auth"
	mockRepo "nutriledger/internal/mocks/repository"
	"nutriledger/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct{}

func (stubTokenService) GenerateAccessToken(userID string, _ []string) (string, error) {
	return "token-" + userID, nil
}

func (stubTokenService) ValidateToken(string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

func (stubTokenService) AccessTokenDuration() time.Duration { return time.Hour }

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo repository.UserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo, _ := newMemoryRepos()
	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewPlaintextHasher(),
		TokenService: stubTokenService{},
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{service: svc, userRepo: userRepo}
}

func TestUserService_Register(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Username:     " alice ",
		Password:     "pw",
		Demographics: entity.Demographics{Age: 31, ActivityLevel: "moderate"},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.User.Username)
	assert.Len(t, out.User.ID, 12)
	assert.False(t, out.User.Approved)

	stored, err := fx.userRepo.FindByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, nutrition.DefaultTargets, stored.Goals)
	assert.Equal(t, "Bronze", stored.Tier)
	assert.Zero(t, stored.RankPoints)
	assert.Equal(t, 31, stored.Demographics.Age)
}

func TestUserService_Register_DuplicateIsCaseInsensitive(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "Alice", Password: "pw"})
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, &usecase.RegisterInput{Username: "aLiCe", Password: "pw2"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_AdminIsPreApproved(t *testing.T) {
	fx := createTestUserService(t)

	out, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "root", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, out.User.Approved)
}

func TestUserService_Register_StoreFailure(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       auth.NewPlaintextHasher(),
		TokenService: stubTokenService{},
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	userRepo.EXPECT().
		FindByUsername(mock.Anything, "bob").
		Return(nil, domainerrors.ErrStoreUnreachable)

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{Username: "bob", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnreachable)
}

func TestUserService_Login(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	seedUser(t, fx.userRepo, &entity.User{ID: "u1", Username: "alice", Credential: "pw", Approved: true})
	seedUser(t, fx.userRepo, &entity.User{ID: "u2", Username: "bob", Credential: "pw"})
	seedUser(t, fx.userRepo, &entity.User{ID: "u3", Username: "root", Credential: "pw", Approved: true})

	t.Run("success", func(t *testing.T) {
		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "Alice", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "token-u1", out.AccessToken)
		assert.Equal(t, int64(3600), out.ExpiresIn)
		assert.Equal(t, []string{"user"}, out.Roles)
	})

	t.Run("admin role", func(t *testing.T) {
		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "root", Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, []string{"user", "admin"}, out.Roles)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "carol", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("not approved", func(t *testing.T) {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "bob", Password: "pw"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotApproved)
	})
}

func TestUserService_OpenSession(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	seedUser(t, fx.userRepo, &entity.User{ID: "u1", Username: "alice", Approved: true})
	seedUser(t, fx.userRepo, &entity.User{ID: "u2", Username: "bob"})

	session, err := fx.service.OpenSession(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID())

	_, err = fx.service.OpenSession(ctx, "u2")
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotApproved)

	_, err = fx.service.OpenSession(ctx, "gone")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdateTargets(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	session := seedUser(t, fx.userRepo, &entity.User{
		ID:       "u1",
		Username: "alice",
		Approved: true,
		Goals:    entity.NutrientValues{Calories: 2200, Protein: 160},
	})

	user, err := fx.service.UpdateTargets(ctx, session, &usecase.UpdateTargetsInput{
		Goals: map[entity.Nutrient]float64{entity.NutrientProtein: 180, entity.NutrientIron: 0},
	})
	require.NoError(t, err)
	assert.Same(t, session.User, user)
	assert.Equal(t, 180.0, user.Goals.Protein)
	assert.Equal(t, 2200.0, user.Goals.Calories)

	stored, err := fx.userRepo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 180.0, stored.Goals.Protein)
	assert.Equal(t, 2200.0, stored.Goals.Calories)

	profile, err := fx.service.Profile(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, 180.0, profile.Targets.Protein)
	assert.Equal(t, nutrition.DefaultTargets.Iron, profile.Targets.Iron)
}

func TestUserService_UpdateTargets_Validation(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	session := seedUser(t, fx.userRepo, &entity.User{ID: "u1", Username: "alice", Approved: true})

	tests := map[string]map[entity.Nutrient]float64{
		"empty":    {},
		"negative": {entity.NutrientSugar: -5},
		"unknown":  {entity.Nutrient("caffeine"): 100},
	}
	for name, goals := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := fx.service.UpdateTargets(ctx, session, &usecase.UpdateTargetsInput{Goals: goals})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestUserService_Approve(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	seedUser(t, fx.userRepo, &entity.User{ID: "u1", Username: "alice", Credential: "pw"})

	require.NoError(t, fx.service.Approve(ctx, "u1"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "pw"})
	assert.NoError(t, err)

	err = fx.service.Approve(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
