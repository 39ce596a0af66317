package history

import (
	"context"

	"gorm.io/gorm"
)

// RecentLimit caps the history view.
const RecentLimit = 100

type Repository interface {
	Create(ctx context.Context, r *Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 || limit > RecentLimit {
		limit = RecentLimit
	}
	var records []Record
	err := r.db.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&records).Error
	return records, err
}
