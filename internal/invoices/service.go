package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
)

const createdAtLayout = "2006-01-02"

// CreateInvoiceInput holds the validated payload to create an invoice.
// TotalAmount is accepted as-is and never reconciled against the items sum;
// manual discounts and taxes flow through it.
type CreateInvoiceInput struct {
	CustomerName  string        `json:"customerName" validate:"required"`
	CustomerEmail *string       `json:"customerEmail"`
	CustomerPhone *string       `json:"customerPhone"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        string        `json:"status"`
	Items         []InvoiceItem `json:"items"`
}

// UpdateInvoiceInput merges over the stored row: omitted fields keep their
// stored values. A present but empty items array still replaces the stored
// items.
type UpdateInvoiceInput struct {
	ID            int64         `json:"id" validate:"required"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail *string       `json:"customerEmail"`
	CustomerPhone *string       `json:"customerPhone"`
	TotalAmount   *float64      `json:"totalAmount"`
	Status        string        `json:"status"`
	Items         []InvoiceItem `json:"items"`
}

type repository interface {
	List(ctx context.Context, status string) ([]models.Invoice, error)
	FindByID(ctx context.Context, id int64) (*models.Invoice, error)
	Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	Update(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type auditRecorder interface {
	Record(ctx context.Context, username, action, description string)
}

// Service exposes invoice management.
type Service interface {
	ListInvoices(ctx context.Context, status string) ([]InvoiceDTO, error)
	CreateInvoice(ctx context.Context, actor string, input CreateInvoiceInput) (*InvoiceDTO, error)
	UpdateInvoice(ctx context.Context, actor string, input UpdateInvoiceInput) (*InvoiceDTO, error)
	DeleteInvoice(ctx context.Context, actor string, id int64) error
}

type service struct {
	repo  repository
	audit auditRecorder
	now   func() time.Time
}

// NewService constructs an invoice service instance.
func NewService(repo repository, audit auditRecorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invoice repository required")
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

func (s *service) ListInvoices(ctx context.Context, status string) ([]InvoiceDTO, error) {
	rows, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}
	dtos := make([]InvoiceDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewInvoiceDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *service) CreateInvoice(ctx context.Context, actor string, input CreateInvoiceInput) (*InvoiceDTO, error) {
	status := input.Status
	if status == "" {
		status = string(enums.InvoiceStatusPending)
	}

	row := &models.Invoice{
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		TotalAmount:   input.TotalAmount,
		Status:        status,
		Items:         encodeItems(input.Items),
		CreatedAt:     s.now().Format(createdAtLayout),
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Fatura Eklendi", created.CustomerName)
	return NewInvoiceDTO(created), nil
}

func (s *service) UpdateInvoice(ctx context.Context, actor string, input UpdateInvoiceInput) (*InvoiceDTO, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.CustomerName != "" {
		existing.CustomerName = input.CustomerName
	}
	if input.CustomerEmail != nil {
		existing.CustomerEmail = input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		existing.CustomerPhone = input.CustomerPhone
	}
	if input.TotalAmount != nil {
		existing.TotalAmount = *input.TotalAmount
	}
	if input.Status != "" {
		existing.Status = input.Status
	}
	if input.Items != nil {
		existing.Items = encodeItems(input.Items)
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Fatura Güncellendi", updated.CustomerName)
	return NewInvoiceDTO(updated), nil
}

func (s *service) DeleteInvoice(ctx context.Context, actor string, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "Fatura Silindi", existing.CustomerName)
	return nil
}
