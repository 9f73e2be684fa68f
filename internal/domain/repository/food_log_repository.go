package repository

import (
	"context"

	"nutriledger/internal/domain/entity"
)

// FoodLogRepository defines the append-only ledger of logged meals.
type FoodLogRepository interface {
	// Append adds a new entry. There is no dedup and no transaction.
	Append(ctx context.Context, entry *entity.FoodLogEntry) error

	// FindByUserAndDate returns the user's entries in the given date bucket, in
	// insertion order.
	FindByUserAndDate(ctx context.Context, userID, dateRef string) ([]*entity.FoodLogEntry, error)
}
