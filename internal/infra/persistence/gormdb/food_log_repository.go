package gormdb

import (
	"context"

	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"

	"gorm.io/gorm"
)

type foodLogRepository struct {
	db *gorm.DB
}

// NewFoodLogRepository is the constructor for foodLogRepository.
func NewFoodLogRepository(db *gorm.DB) repository.FoodLogRepository {
	return &foodLogRepository{db: db}
}

// Append inserts one ledger row.
func (repo *foodLogRepository) Append(ctx context.Context, entry *entity.FoodLogEntry) error {
	if err := repo.db.WithContext(ctx).Create(fromFoodLogDomain(entry)).Error; err != nil {
		return errors.Join(domainerrors.ErrIOFailure, domainerrors.NewDatabaseExecuteError(err, "failed to append food log"))
	}

	return nil
}

// FindByUserAndDate uses the (user_id, date_ref) index.
func (repo *foodLogRepository) FindByUserAndDate(ctx context.Context, userID, dateRef string) ([]*entity.FoodLogEntry, error) {
	var rows []*FoodLogModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date_ref = ?", userID, dateRef).
		Order("seq").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to query food logs")
	}

	entries := make([]*entity.FoodLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, toFoodLogDomain(row))
	}

	return entries, nil
}

func toFoodLogDomain(data *FoodLogModel) *entity.FoodLogEntry {
	return &entity.FoodLogEntry{
		ID:        data.LogID,
		UserID:    data.UserID,
		Timestamp: data.Timestamp,
		DateRef:   data.DateRef,
		MealName:  data.MealName,
		Nutrients: nutrition.Sanitize(entity.NutrientValues{
			Calories:  data.Calories,
			Protein:   data.Protein,
			Carbs:     data.Carbs,
			SatFat:    data.SatFat,
			UnsatFat:  data.UnsatFat,
			Fiber:     data.Fiber,
			Sugar:     data.Sugar,
			Sodium:    data.Sodium,
			Potassium: data.Potassium,
			Iron:      data.Iron,
		}),
	}
}

func fromFoodLogDomain(data *entity.FoodLogEntry) *FoodLogModel {
	return &FoodLogModel{
		LogID:     data.ID,
		UserID:    data.UserID,
		DateRef:   data.DateRef,
		Timestamp: data.Timestamp,
		MealName:  data.MealName,
		Calories:  data.Nutrients.Calories,
		Protein:   data.Nutrients.Protein,
		Carbs:     data.Nutrients.Carbs,
		SatFat:    data.Nutrients.SatFat,
		UnsatFat:  data.Nutrients.UnsatFat,
		Fiber:     data.Nutrients.Fiber,
		Sugar:     data.Nutrients.Sugar,
		Sodium:    data.Nutrients.Sodium,
		Potassium: data.Nutrients.Potassium,
		Iron:      data.Nutrients.Iron,
	}
}
