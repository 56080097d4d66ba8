package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "pushuplog/internal/errors"
	"pushuplog/internal/model"
	"pushuplog/internal/repository"
)

// UserService exposes the user CRUD and relationship operations.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	ListDetailed(ctx context.Context) ([]model.UserDetail, error)
	Count(ctx context.Context) (int64, error)
	Paginated(ctx context.Context, skip, limit int) (int64, []model.User, error)
	PaginatedDetailed(ctx context.Context, skip, limit int) (int64, []model.UserWithRecordIDs, error)
	Search(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*model.UserWithRecordIDs, error)
	Create(ctx context.Context, in model.UserCreate) (*model.UserWithRecordIDs, error)
	BulkCreate(ctx context.Context, items []model.UserCreate) ([]uint, error)
	BulkDelete(ctx context.Context, ids []uint) (int, []uint, error)
	Update(ctx context.Context, id uint, in model.UserCreate) (*model.UserWithRecordIDs, error)
	Delete(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	users   repository.UserRepository
	records repository.RecordRepository
	tx      repository.TxManager
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, records repository.RecordRepository, tx repository.TxManager) UserService {
	return &userService{users: users, records: records, tx: tx}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// ListDetailed inlines every user's full record list, loading all
// relationships with a single batched query.
func (s *userService) ListDetailed(ctx context.Context) ([]model.UserDetail, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint, 0, len(users))
	for _, u := range users {
		userIDs = append(userIDs, u.ID)
	}
	records, err := s.records.ListByUserIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	byOwner := make(map[uint][]model.Record, len(users))
	for _, rec := range records {
		if rec.UserID != nil {
			byOwner[*rec.UserID] = append(byOwner[*rec.UserID], rec)
		}
	}

	details := make([]model.UserDetail, 0, len(users))
	for _, u := range users {
		owned := byOwner[u.ID]
		if owned == nil {
			owned = make([]model.Record, 0)
		}
		details = append(details, model.UserDetail{User: u, HasRecords: owned})
	}
	return details, nil
}

func (s *userService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *userService) Paginated(ctx context.Context, skip, limit int) (int64, []model.User, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	users, err := s.users.ListPage(ctx, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, users, nil
}

// PaginatedDetailed returns the page with related record ids only, not full
// record objects.
func (s *userService) PaginatedDetailed(ctx context.Context, skip, limit int) (int64, []model.UserWithRecordIDs, error) {
	total, users, err := s.Paginated(ctx, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	items := make([]model.UserWithRecordIDs, 0, len(users))
	for _, u := range users {
		ids, err := s.records.IDsByUserID(ctx, u.ID)
		if err != nil {
			return 0, nil, err
		}
		items = append(items, model.UserWithRecordIDs{User: u, HasRecordIDs: ids})
	}
	return total, items, nil
}

// Search accepts the route but applies no filters; it returns all users.
func (s *userService) Search(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.UserWithRecordIDs, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	ids, err := s.records.IDsByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &model.UserWithRecordIDs{User: *user, HasRecordIDs: ids}, nil
}

// Create inserts the user and, when hasRecords is supplied, repoints those
// records to the new user. Every referenced id is checked before any state
// changes; insert and repoint share one transaction.
func (s *userService) Create(ctx context.Context, in model.UserCreate) (*model.UserWithRecordIDs, error) {
	var result *model.UserWithRecordIDs
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		if in.HasRecords != nil {
			for _, recordID := range *in.HasRecords {
				if _, err := records.FindByID(ctx, recordID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return apperrors.NewRefNotFound("Record with id %d not found", recordID)
					}
					return err
				}
			}
		}

		user := &model.User{Email: in.Email, Name: in.Name}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if in.HasRecords != nil && len(*in.HasRecords) > 0 {
			if err := records.AssignUser(ctx, *in.HasRecords, &user.ID); err != nil {
				return err
			}
		}

		ids, err := records.IDsByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		result = &model.UserWithRecordIDs{User: *user, HasRecordIDs: ids}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BulkCreate inserts every user or none. The hasRecords field is not part of
// the bulk contract and is ignored.
func (s *userService) BulkCreate(ctx context.Context, items []model.UserCreate) ([]uint, error) {
	createdIDs := make([]uint, 0, len(items))
	var itemErrors []apperrors.BulkItemError

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		for idx, item := range items {
			if msg, ok := validateUserItem(item); !ok {
				itemErrors = append(itemErrors, apperrors.BulkItemError{Index: idx, Error: msg})
				continue
			}
			user := &model.User{Email: item.Email, Name: item.Name}
			if err := users.Create(ctx, user); err != nil {
				itemErrors = append(itemErrors, apperrors.BulkItemError{Index: idx, Error: err.Error()})
				continue
			}
			createdIDs = append(createdIDs, user.ID)
		}
		if len(itemErrors) > 0 {
			return &apperrors.BulkCreateError{Items: itemErrors}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return createdIDs, nil
}

func validateUserItem(item model.UserCreate) (string, bool) {
	switch {
	case item.Email == "":
		return "email is required", false
	case item.Name == "":
		return "name is required", false
	}
	return "", true
}

// BulkDelete removes every id that exists and reports the rest. Records
// owned by deleted users are detached, consistent with single delete.
func (s *userService) BulkDelete(ctx context.Context, ids []uint) (int, []uint, error) {
	deleted := 0
	notFound := make([]uint, 0)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		for _, id := range ids {
			user, err := users.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					notFound = append(notFound, id)
					continue
				}
				return err
			}
			if err := records.DetachUser(ctx, user.ID); err != nil {
				return err
			}
			if err := users.Delete(ctx, user); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return deleted, notFound, nil
}

// Update replaces both scalar fields unconditionally. A provided hasRecords
// list, even an empty one, replaces the relationship set in full: all
// current links are cleared, then the listed records are re-linked. A null
// or absent list leaves the relationship untouched.
func (s *userService) Update(ctx context.Context, id uint, in model.UserCreate) (*model.UserWithRecordIDs, error) {
	var result *model.UserWithRecordIDs
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		user, err := users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		if in.HasRecords != nil {
			for _, recordID := range *in.HasRecords {
				if _, err := records.FindByID(ctx, recordID); err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return apperrors.NewRefNotFound("Record with id %d not found", recordID)
					}
					return err
				}
			}
		}

		user.Email = in.Email
		user.Name = in.Name
		if err := users.Save(ctx, user); err != nil {
			return err
		}

		if in.HasRecords != nil {
			if err := records.DetachUser(ctx, user.ID); err != nil {
				return err
			}
			if len(*in.HasRecords) > 0 {
				if err := records.AssignUser(ctx, *in.HasRecords, &user.ID); err != nil {
					return err
				}
			}
		}

		ids, err := records.IDsByUserID(ctx, user.ID)
		if err != nil {
			return err
		}
		result = &model.UserWithRecordIDs{User: *user, HasRecordIDs: ids}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Delete removes the user after detaching its records. Leaving records with
// a dangling owner id would corrupt relationship queries, so the links are
// nulled out in the same transaction.
func (s *userService) Delete(ctx context.Context, id uint) (*model.User, error) {
	var deleted *model.User
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		user, err := users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}
		if err := records.DetachUser(ctx, user.ID); err != nil {
			return err
		}
		if err := users.Delete(ctx, user); err != nil {
			return err
		}
		deleted = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
