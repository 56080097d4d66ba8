package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxFunc runs with transaction-scoped repositories.
type TxFunc func(ctx context.Context, users UserRepository, records RecordRepository) error

// TxManager runs a unit of work inside a single database transaction. Every
// write operation in the service layer goes through it, so a request never
// commits partial state.
type TxManager interface {
	WithTransaction(ctx context.Context, fn TxFunc) error
}

type txManager struct {
	db *gorm.DB
}

// NewTxManager builds a GORM-backed transaction manager.
func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) WithTransaction(ctx context.Context, fn TxFunc) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewUserRepository(tx), NewRecordRepository(tx))
	})
}
