package sheet

import (
	"context"
	"slices"
	"strings"

	"nutriledger/internal/domain/constants"
	"nutriledger/internal/domain/entity"
	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/domain/repository"
	"nutriledger/internal/errors"
)

type userRepository struct {
	store RowStore
}

// NewUserRepository creates a UserRepository over the Users worksheet of store.
func NewUserRepository(store RowStore) repository.UserRepository {
	return &userRepository{store: store}
}

// FindAll implements repository.UserRepository.
func (r *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	records, err := r.store.ReadAll(ctx, constants.SheetUsers)
	if err != nil {
		return nil, errors.Wrap(err, "read users")
	}

	users := make([]*entity.User, 0, len(records))
	for _, rec := range records {
		if rec[ColumnUserID] == "" {
			continue
		}
		users = append(users, userFromRecord(rec))
	}

	return users, nil
}

// Find implements repository.UserRepository.
func (r *userRepository) Find(ctx context.Context, predicate func(*entity.User) bool) (*entity.User, error) {
	users, err := r.FindAll(ctx)
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

// FindByID implements repository.UserRepository.
func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.Find(ctx, func(u *entity.User) bool {
		return u.ID == id
	})
}

// FindByUsername implements repository.UserRepository.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.Find(ctx, func(u *entity.User) bool {
		return strings.EqualFold(u.Username, username)
	})
}

// Create implements repository.UserRepository.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.store.AppendRow(ctx, constants.SheetUsers, userToRow(user)); err != nil {
		return errors.Join(domainerrors.ErrIOFailure, errors.Wrap(err, "append user"))
	}

	return nil
}

// UpdateFields implements repository.UserRepository.
func (r *userRepository) UpdateFields(ctx context.Context, session *entity.Session, userID string, fields map[string]string) error {
	row, err := r.store.FindRow(ctx, constants.SheetUsers, userID)
	if errors.Is(err, ErrRowNotFound) {
		return repository.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrapf(err, "locate user %s", userID)
	}

	header, err := r.store.Header(ctx, constants.SheetUsers)
	if err != nil {
		return errors.Wrap(err, "read users header")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if !UpdatableUserField(name) {
			continue
		}
		col := indexOf(header, name) + 1
		if col == 0 {
			continue
		}

		value := fields[name]
		if err := r.store.WriteCell(ctx, constants.SheetUsers, row, col, value); err != nil {
			return errors.Join(domainerrors.ErrIOFailure, errors.Wrapf(err, "write %s", name))
		}
		if session != nil && session.User != nil && session.User.ID == userID {
			repository.ApplyUserField(session.User, name, value)
		}
	}

	return nil
}
