package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "pushuplog/internal/errors"
	"pushuplog/internal/model"
	"pushuplog/internal/repository"
)

// RecordService exposes the record CRUD, relationship and method operations.
type RecordService interface {
	List(ctx context.Context) ([]model.Record, error)
	ListDetailed(ctx context.Context) ([]model.RecordDetail, error)
	Count(ctx context.Context) (int64, error)
	Paginated(ctx context.Context, skip, limit int) (int64, []model.Record, error)
	Search(ctx context.Context) ([]model.Record, error)
	Get(ctx context.Context, id uint) (*model.Record, error)
	Create(ctx context.Context, in model.RecordCreate) (*model.Record, error)
	BulkCreate(ctx context.Context, items []model.RecordCreate) ([]uint, error)
	BulkDelete(ctx context.Context, ids []uint) (int, []uint, error)
	Update(ctx context.Context, id uint, in model.RecordCreate) (*model.Record, error)
	Delete(ctx context.Context, id uint) (*model.Record, error)
	ApplyUpdateRecord(ctx context.Context, id uint, delta int) (*model.Record, error)
}

type recordService struct {
	users   repository.UserRepository
	records repository.RecordRepository
	tx      repository.TxManager
}

// NewRecordService builds a RecordService.
func NewRecordService(users repository.UserRepository, records repository.RecordRepository, tx repository.TxManager) RecordService {
	return &recordService{users: users, records: records, tx: tx}
}

func (s *recordService) List(ctx context.Context) ([]model.Record, error) {
	return s.records.List(ctx)
}

// ListDetailed resolves the owning user of every record with a single
// batched user query.
func (s *recordService) ListDetailed(ctx context.Context) ([]model.RecordDetail, error) {
	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]bool)
	userIDs := make([]uint, 0, len(records))
	for _, rec := range records {
		if rec.UserID != nil && !seen[*rec.UserID] {
			seen[*rec.UserID] = true
			userIDs = append(userIDs, *rec.UserID)
		}
	}

	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	details := make([]model.RecordDetail, 0, len(records))
	for _, rec := range records {
		detail := model.RecordDetail{Record: rec}
		if rec.UserID != nil {
			if u, ok := byID[*rec.UserID]; ok {
				owner := u
				detail.User = &owner
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *recordService) Count(ctx context.Context) (int64, error) {
	return s.records.Count(ctx)
}

func (s *recordService) Paginated(ctx context.Context, skip, limit int) (int64, []model.Record, error) {
	total, err := s.records.Count(ctx)
	if err != nil {
		return 0, nil, err
	}
	records, err := s.records.ListPage(ctx, skip, limit)
	if err != nil {
		return 0, nil, err
	}
	return total, records, nil
}

// Search accepts the route but applies no filters; it returns all records.
func (s *recordService) Search(ctx context.Context) ([]model.Record, error) {
	return s.records.List(ctx)
}

func (s *recordService) Get(ctx context.Context, id uint) (*model.Record, error) {
	record, err := s.records.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

// Create validates that the referenced user exists, then inserts the record.
// Both happen in one transaction.
func (s *recordService) Create(ctx context.Context, in model.RecordCreate) (*model.Record, error) {
	var created *model.Record
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		if _, err := users.FindByID(ctx, *in.User); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewRefNotFound("User not found")
			}
			return err
		}
		record := &model.Record{
			Date:            *in.Date,
			NumberOfPushups: *in.NumberOfPushups,
			UserID:          in.User,
		}
		if err := records.Create(ctx, record); err != nil {
			return err
		}
		created = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// BulkCreate inserts every item or none. Validation failures are collected
// per index and roll back the whole batch.
func (s *recordService) BulkCreate(ctx context.Context, items []model.RecordCreate) ([]uint, error) {
	createdIDs := make([]uint, 0, len(items))
	var itemErrors []apperrors.BulkItemError

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		for idx, item := range items {
			if msg, ok := validateRecordItem(item); !ok {
				itemErrors = append(itemErrors, apperrors.BulkItemError{Index: idx, Error: msg})
				continue
			}
			if _, err := users.FindByID(ctx, *item.User); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					itemErrors = append(itemErrors, apperrors.BulkItemError{Index: idx, Error: "User not found"})
					continue
				}
				return err
			}
			record := &model.Record{
				Date:            *item.Date,
				NumberOfPushups: *item.NumberOfPushups,
				UserID:          item.User,
			}
			if err := records.Create(ctx, record); err != nil {
				itemErrors = append(itemErrors, apperrors.BulkItemError{Index: idx, Error: err.Error()})
				continue
			}
			createdIDs = append(createdIDs, record.ID)
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

func validateRecordItem(item model.RecordCreate) (string, bool) {
	switch {
	case item.User == nil:
		return "User ID is required", false
	case item.Date == nil:
		return "date is required", false
	case item.NumberOfPushups == nil:
		return "numberOfPushups is required", false
	}
	return "", true
}

// BulkDelete removes every id that exists and reports the rest. The commit
// covers all found ids at once; missing ids do not abort the batch.
func (s *recordService) BulkDelete(ctx context.Context, ids []uint) (int, []uint, error) {
	deleted := 0
	notFound := make([]uint, 0)

	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		for _, id := range ids {
			record, err := records.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					notFound = append(notFound, id)
					continue
				}
				return err
			}
			if err := records.Delete(ctx, record); err != nil {
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

// Update replaces all scalar fields and repoints the owner after checking it
// exists.
func (s *recordService) Update(ctx context.Context, id uint, in model.RecordCreate) (*model.Record, error) {
	var updated *model.Record
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		record, err := records.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRecordNotFound
			}
			return err
		}
		record.NumberOfPushups = *in.NumberOfPushups
		record.Date = *in.Date
		if in.User != nil {
			if _, err := users.FindByID(ctx, *in.User); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewRefNotFound("User not found")
				}
				return err
			}
			record.UserID = in.User
		}
		if err := records.Save(ctx, record); err != nil {
			return err
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *recordService) Delete(ctx context.Context, id uint) (*model.Record, error) {
	var deleted *model.Record
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		record, err := records.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRecordNotFound
			}
			return err
		}
		if err := records.Delete(ctx, record); err != nil {
			return err
		}
		deleted = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// ApplyUpdateRecord adds delta to the record's pushup count and persists the
// change. The delta is unbounded; negative values are accepted. Persistence
// failures surface with their text, per the method endpoint contract.
func (s *recordService) ApplyUpdateRecord(ctx context.Context, id uint, delta int) (*model.Record, error) {
	var updated *model.Record
	err := s.tx.WithTransaction(ctx, func(ctx context.Context, users repository.UserRepository, records repository.RecordRepository) error {
		record, err := records.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRecordNotFound
			}
			return err
		}
		record.NumberOfPushups += delta
		if err := records.Save(ctx, record); err != nil {
			return &apperrors.MethodError{Err: err}
		}
		updated = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
