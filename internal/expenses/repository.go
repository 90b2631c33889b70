package expense

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

// Repository persists expense entries.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every expense, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindByID loads one expense or a typed not-found error.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "المصروف غير موجود")
		}
		return nil, err
	}
	return &expense, nil
}

// Create inserts the expense and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := r.db.WithContext(ctx).Create(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

// Update writes every column of the row.
func (r *Repository) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if err := r.db.WithContext(ctx).Save(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete removes the expense by id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Expense{}, "id = ?", id).Error
}
