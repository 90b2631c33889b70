package users

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

// Repository exposes user account persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every account.
func (r *Repository) List(ctx context.Context) ([]models.User, error) {
	var accounts []models.User
	if err := r.db.WithContext(ctx).Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// FindByID loads one account or a typed not-found error.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var account models.User
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "المستخدم غير موجود")
		}
		return nil, err
	}
	return &account, nil
}

// FindByEmail loads one account by email. Returns (nil, nil) when absent so
// callers can distinguish "no such account" from a store failure.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var account models.User
	if err := r.db.WithContext(ctx).First(&account, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts the account and returns it with its assigned id.
func (r *Repository) Create(ctx context.Context, account *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// Update writes every column of the row.
func (r *Repository) Update(ctx context.Context, account *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes the account by id. Audit rows and invoices referencing the
// user are deliberately left untouched.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}
