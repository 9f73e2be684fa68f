package gormdb

import (
	"context"
	"slices"
	"strings"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"

	"gorm.io/gorm"
)

// userColumns maps UpdateFields names to table columns.
var userColumns = map[string]string{
	repository.FieldCredential:    "credential",
	repository.FieldCalorieGoal:   "calorie_goal",
	repository.FieldProteinGoal:   "protein_goal",
	repository.FieldCarbGoal:      "carb_goal",
	repository.FieldSatFatGoal:    "sat_fat_goal",
	repository.FieldUnsatFatGoal:  "unsat_fat_goal",
	repository.FieldFiberGoal:     "fiber_goal",
	repository.FieldSugarGoal:     "sugar_goal",
	repository.FieldSodiumGoal:    "sodium_goal",
	repository.FieldPotassiumGoal: "potassium_goal",
	repository.FieldIronGoal:      "iron_goal",
	repository.FieldRankPoints:    "rank_points",
	repository.FieldTier:          "tier",
	repository.FieldStreak:        "streak",
	repository.FieldLastLogDate:   "last_log_date",
	repository.FieldAge:           "age",
	repository.FieldGender:        "gender",
	repository.FieldHeightCm:      "height_cm",
	repository.FieldWeightKg:      "weight_kg",
	repository.FieldActivityLevel: "activity_level",
	repository.FieldApproved:      "approved",
}

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindAll returns every user ordered by insertion.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var rows []*UserModel
	if err := repo.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, toUserDomain(row))
	}

	return users, nil
}

// Find scans users in insertion order and returns the first match.
func (repo *userRepository) Find(ctx context.Context, predicate func(*entity.User) bool) (*entity.User, error) {
	users, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if predicate(u) {
			return u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// FindByID retrieves a single user by their ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return repo.first(ctx, "user_id = ?", id)
}

// FindByUsername retrieves a single user by username, ignoring case.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.first(ctx, "username_key = ?", usernameKey(username))
}

// Create persists a new user row.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "create user")
		}

		return errors.Join(domainerrors.ErrIOFailure, domainerrors.NewDatabaseExecuteError(err, "failed to create user"))
	}

	return nil
}

// UpdateFields writes the recognised fields as a single column-addressed update.
func (repo *userRepository) UpdateFields(ctx context.Context, session *entity.Session, userID string, fields map[string]string) error {
	current, err := repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := userColumns[name]; ok {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	slices.Sort(names)

	columns := make([]string, 0, len(names))
	for _, name := range names {
		repository.ApplyUserField(current, name, fields[name])
		columns = append(columns, userColumns[name])
	}

	result := repo.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("user_id = ?", userID).
		Select(columns).
		Updates(fromUserDomain(current))
	if result.Error != nil {
		return errors.Join(domainerrors.ErrIOFailure, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user"))
	}

	if session != nil && session.User != nil && session.User.ID == userID {
		for _, name := range names {
			repository.ApplyUserField(session.User, name, fields[name])
		}
	}

	return nil
}

func (repo *userRepository) first(ctx context.Context, query string, args ...any) (*entity.User, error) {
	var row UserModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return toUserDomain(&row), nil
}

func usernameKey(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// toUserDomain converts a UserModel into the domain entity. Stored goals are
// passed through the same guard as sheet cells.
func toUserDomain(data *UserModel) *entity.User {
	if data == nil {
		return nil
	}

	goals := entity.NutrientValues{
		Calories:  data.CalorieGoal,
		Protein:   data.ProteinGoal,
		Carbs:     data.CarbGoal,
		SatFat:    data.SatFatGoal,
		UnsatFat:  data.UnsatFatGoal,
		Fiber:     data.FiberGoal,
		Sugar:     data.SugarGoal,
		Sodium:    data.SodiumGoal,
		Potassium: data.PotassiumGoal,
		Iron:      data.IronGoal,
	}

	return &entity.User{
		ID:          data.UserID,
		Username:    data.Username,
		Credential:  data.Credential,
		Approved:    data.Approved,
		Goals:       nutrition.Sanitize(goals),
		RankPoints:  data.RankPoints,
		Tier:        data.Tier,
		Streak:      data.Streak,
		LastLogDate: data.LastLogDate,
		Demographics: entity.Demographics{
			Age:           data.Age,
			Gender:        data.Gender,
			HeightCm:      data.HeightCm,
			WeightKg:      data.WeightKg,
			ActivityLevel: data.ActivityLevel,
		},
	}
}

// fromUserDomain converts a domain User entity to a UserModel for persistence.
func fromUserDomain(data *entity.User) *UserModel {
	if data == nil {
		return nil
	}

	return &UserModel{
		UserID:        data.ID,
		Username:      data.Username,
		UsernameKey:   usernameKey(data.Username),
		Credential:    data.Credential,
		Approved:      data.Approved,
		CalorieGoal:   data.Goals.Calories,
		ProteinGoal:   data.Goals.Protein,
		CarbGoal:      data.Goals.Carbs,
		SatFatGoal:    data.Goals.SatFat,
		UnsatFatGoal:  data.Goals.UnsatFat,
		FiberGoal:     data.Goals.Fiber,
		SugarGoal:     data.Goals.Sugar,
		SodiumGoal:    data.Goals.Sodium,
		PotassiumGoal: data.Goals.Potassium,
		IronGoal:      data.Goals.Iron,
		RankPoints:    data.RankPoints,
		Tier:          data.Tier,
		Streak:        data.Streak,
		LastLogDate:   data.LastLogDate,
		Age:           data.Demographics.Age,
		Gender:        data.Demographics.Gender,
		HeightCm:      data.Demographics.HeightCm,
		WeightKg:      data.Demographics.WeightKg,
		ActivityLevel: data.Demographics.ActivityLevel,
	}
}
