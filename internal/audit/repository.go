package audit

import (
	"context"

	"gorm.io/gorm"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
)

// Repository persists audit log rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert appends one audit row.
func (r *Repository) Insert(ctx context.Context, entry *models.Transaction) (*models.Transaction, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns every audit row, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Transaction, error) {
	var entries []models.Transaction
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteAll removes every audit row unconditionally.
func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Transaction{}).Error
}
