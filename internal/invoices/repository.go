package invoice

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

// Repository persists customer invoices.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every invoice, optionally filtered by exact status.
func (r *Repository) List(ctx context.Context, status string) ([]models.Invoice, error) {
	tx := r.db.WithContext(ctx)
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	var invoices []models.Invoice
	if err := tx.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindByID loads one invoice or a typed not-found error.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "الفاتورة غير موجودة")
		}
		return nil, err
	}
	return &invoice, nil
}

// Create inserts the invoice and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Update writes every column of the row.
func (r *Repository) Update(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	if err := r.db.WithContext(ctx).Save(invoice).Error; err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete removes the invoice by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id).Error
}
