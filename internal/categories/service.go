package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/aydinsoft/backoffice-backend/pkg/db"
	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

// CreateCategoryInput holds the payload to create a category.
type CreateCategoryInput struct {
	Name string `json:"name"`
}

// CategoryDTO is the category payload returned to clients.
type CategoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type repository interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type auditRecorder interface {
	Record(ctx context.Context, username, action, description string)
}

// Service exposes category management.
type Service interface {
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
	CreateCategory(ctx context.Context, actor string, input CreateCategoryInput) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, actor string, id int64) error
}

type service struct {
	repo  repository
	audit auditRecorder
}

// NewService constructs a category service instance.
func NewService(repo repository, audit auditRecorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	if audit == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{repo: repo, audit: audit}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, CategoryDTO{ID: rows[i].ID, Name: rows[i].Name})
	}
	return dtos, nil
}

func (s *service) CreateCategory(ctx context.Context, actor string, input CreateCategoryInput) (*CategoryDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "اسم الفئة مطلوب")
	}

	created, err := s.repo.Create(ctx, &models.Category{Name: name})
	if err != nil {
		if db.IsUniqueViolation(err, "name") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "الفئة موجودة بالفعل")
		}
		return nil, err
	}

	s.audit.Record(ctx, actor, "Kategori Eklendi", created.Name)
	return &CategoryDTO{ID: created.ID, Name: created.Name}, nil
}

func (s *service) DeleteCategory(ctx context.Context, actor string, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "معرف الفئة مطلوب")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "Kategori Silindi", fmt.Sprintf("id=%d", id))
	return nil
}
