package receiptrepo

import (
	"context"

	"freightline/internal/core/domain/model/receipt"

	"gorm.io/gorm"
)

// GormReceiptRepository implements ports.ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Add saves a posted receipt with its lines to the database.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}
