package sheet

import (
	"context"

	"nutriledger/internal/domain/constants"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"
)

type foodLogRepository struct {
	store RowStore
}

// NewFoodLogRepository creates a FoodLogRepository over the FoodLogs worksheet of store.
func NewFoodLogRepository(store RowStore) repository.FoodLogRepository {
	return &foodLogRepository{store: store}
}

// Append implements repository.FoodLogRepository.
func (r *foodLogRepository) Append(ctx context.Context, entry *entity.FoodLogEntry) error {
	if err := r.store.AppendRow(ctx, constants.SheetFoodLogs, logToRow(entry)); err != nil {
		return errors.Join(domainerrors.ErrIOFailure, errors.Wrapf(err, "append log %s", entry.ID))
	}

	return nil
}

// FindByUserAndDate implements repository.FoodLogRepository.
func (r *foodLogRepository) FindByUserAndDate(ctx context.Context, userID, dateRef string) ([]*entity.FoodLogEntry, error) {
	records, err := r.store.ReadAll(ctx, constants.SheetFoodLogs)
	if err != nil {
		return nil, errors.Wrap(err, "read food logs")
	}

	entries := make([]*entity.FoodLogEntry, 0)
	for _, rec := range records {
		if rec[ColumnUserID] != userID || rec[ColumnDate] != dateRef {
			continue
		}
		entries = append(entries, logFromRecord(rec))
	}

	return entries, nil
}
