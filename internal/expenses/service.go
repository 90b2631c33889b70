package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// CreateExpenseInput holds the validated payload to create an expense.
type CreateExpenseInput struct {
	Title       string  `json:"title" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expenseDate" validate:"required"`
	Notes       *string `json:"notes"`
}

// UpdateExpenseInput merges over the stored row: omitted fields keep their
// stored values.
type UpdateExpenseInput struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Amount      *float64 `json:"amount"`
	ExpenseDate string   `json:"expenseDate"`
	Notes       *string  `json:"notes"`
}

type repository interface {
	List(ctx context.Context) ([]models.Expense, error)
	FindByID(ctx context.Context, id int64) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	Update(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, id int64) error
}

type auditRecorder interface {
	Record(ctx context.Context, username, action, description string)
}

// Service exposes expense management.
type Service interface {
	ListExpenses(ctx context.Context) ([]ExpenseDTO, error)
	CreateExpense(ctx context.Context, actor string, input CreateExpenseInput) (*ExpenseDTO, error)
	UpdateExpense(ctx context.Context, actor string, input UpdateExpenseInput) (*ExpenseDTO, error)
	DeleteExpense(ctx context.Context, actor string, id int64) error
}

type service struct {
	repo  repository
	audit auditRecorder
	now   func() time.Time
}

// NewService constructs an expense service instance.
func NewService(repo repository, audit auditRecorder) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("expense repository required")
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

// ListExpenses returns every expense newest first. Rows with an empty
// expense date get today's date on the way out.
func (s *service) ListExpenses(ctx context.Context) ([]ExpenseDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.now().Format(dateLayout)
	dtos := make([]ExpenseDTO, 0, len(rows))
	for i := range rows {
		dto := NewExpenseDTO(&rows[i])
		if dto.ExpenseDate == "" {
			dto.ExpenseDate = today
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *service) CreateExpense(ctx context.Context, actor string, input CreateExpenseInput) (*ExpenseDTO, error) {
	row := &models.Expense{
		Title:       input.Title,
		Category:    input.Category,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
		Notes:       input.Notes,
		CreatedAt:   s.now().Format(dateLayout),
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Gider Eklendi", created.Title)
	return NewExpenseDTO(created), nil
}

func (s *service) UpdateExpense(ctx context.Context, actor string, input UpdateExpenseInput) (*ExpenseDTO, error) {
	if input.ID == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "معرف المصروف مطلوب")
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		existing.Title = input.Title
	}
	if input.Category != "" {
		existing.Category = input.Category
	}
	if input.Amount != nil {
		existing.Amount = *input.Amount
	}
	if input.ExpenseDate != "" {
		existing.ExpenseDate = input.ExpenseDate
	}
	if input.Notes != nil {
		existing.Notes = input.Notes
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Gider Güncellendi", updated.Title)
	return NewExpenseDTO(updated), nil
}

func (s *service) DeleteExpense(ctx context.Context, actor string, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "Gider Silindi", existing.Title)
	return nil
}
