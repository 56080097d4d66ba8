package repository

import (
	"context"

	"gorm.io/gorm"

	"pushuplog/internal/model"
)

// RecordRepository defines persistence operations for records, including the
// relationship queries against the user foreign key.
type RecordRepository interface {
	Create(ctx context.Context, record *model.Record) error
	FindByID(ctx context.Context, id uint) (*model.Record, error)
	List(ctx context.Context) ([]model.Record, error)
	ListPage(ctx context.Context, offset, limit int) ([]model.Record, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.Record, error)
	ListByUserIDs(ctx context.Context, userIDs []uint) ([]model.Record, error)
	IDsByUserID(ctx context.Context, userID uint) ([]uint, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, record *model.Record) error
	Delete(ctx context.Context, record *model.Record) error
	AssignUser(ctx context.Context, recordIDs []uint, userID *uint) error
	DetachUser(ctx context.Context, userID uint) error
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository builds a GORM-backed repository.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *recordRepository) FindByID(ctx context.Context, id uint) (*model.Record, error) {
	var record model.Record
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *recordRepository) List(ctx context.Context) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) ListPage(ctx context.Context, offset, limit int) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) ListByUserIDs(ctx context.Context, userIDs []uint) ([]model.Record, error) {
	var records []model.Record
	if len(userIDs) == 0 {
		return records, nil
	}
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *recordRepository) IDsByUserID(ctx context.Context, userID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.db.WithContext(ctx).Model(&model.Record{}).
		Where("user_id = ?", userID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *recordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Record{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recordRepository) Save(ctx context.Context, record *model.Record) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *recordRepository) Delete(ctx context.Context, record *model.Record) error {
	return r.db.WithContext(ctx).Delete(record).Error
}

// AssignUser repoints the given records to userID. A nil userID detaches them.
func (r *recordRepository) AssignUser(ctx context.Context, recordIDs []uint, userID *uint) error {
	if len(recordIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Record{}).
		Where("id IN ?", recordIDs).Update("user_id", userID).Error
}

// DetachUser clears the ownership link on every record owned by userID.
func (r *recordRepository) DetachUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&model.Record{}).
		Where("user_id = ?", userID).Update("user_id", nil).Error
}
