package product

import (
	"context"
	"fmt"
	"time"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

const createdAtLayout = "2006-01-02"

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    *string `json:"category"`
	Size        *string `json:"size"`
	Barcode     *string `json:"barcode"`
}

// UpdateProductInput merges over the stored row: omitted fields keep their
// stored values.
type UpdateProductInput struct {
	ID          int64    `json:"id" validate:"required"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	Size        *string  `json:"size"`
	Barcode     *string  `json:"barcode"`
}

type repository interface {
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

type auditRecorder interface {
	Record(ctx context.Context, username, action, description string)
}

// Service exposes catalog product management.
type Service interface {
	ListProducts(ctx context.Context) ([]ProductDTO, error)
	CreateProduct(ctx context.Context, actor string, input CreateProductInput) (*ProductDTO, error)
	UpdateProduct(ctx context.Context, actor string, input UpdateProductInput) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, actor string, id int64) error
}

type service struct {
	repo  repository
	audit auditRecorder
	now   func() time.Time
}

// NewService constructs a product service instance.
func NewService(repo repository, audit auditRecorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if audit == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}, nil
}

// ListProducts returns the full catalog. Rows that predate the createdAt
// column get today's date instead of an empty string.
func (s *service) ListProducts(ctx context.Context) ([]ProductDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now().Format(createdAtLayout)
	dtos := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		dto := NewProductDTO(&rows[i])
		if dto.CreatedAt == "" {
			dto.CreatedAt = today
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *service) CreateProduct(ctx context.Context, actor string, input CreateProductInput) (*ProductDTO, error) {
	if input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	row := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Category:    input.Category,
		Size:        input.Size,
		Barcode:     input.Barcode,
		CreatedAt:   s.now().Format(createdAtLayout),
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Ürün Eklendi", created.Name)
	return NewProductDTO(created), nil
}

// UpdateProduct merges the payload over the stored row: blank name, nil
// pointers and omitted numbers keep their stored values, and createdAt is
// never rewritten.
func (s *service) UpdateProduct(ctx context.Context, actor string, input UpdateProductInput) (*ProductDTO, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.Price != nil {
		existing.Price = *input.Price
	}
	if input.Stock != nil {
		existing.Stock = *input.Stock
	}
	if input.Category != nil {
		existing.Category = input.Category
	}
	if input.Size != nil {
		existing.Size = input.Size
	}
	if input.Barcode != nil {
		existing.Barcode = input.Barcode
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Ürün Güncellendi", updated.Name)
	return NewProductDTO(updated), nil
}

func (s *service) DeleteProduct(ctx context.Context, actor string, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "Ürün Silindi", existing.Name)
	return nil
}
