package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
)

// DefaultUsername is recorded when the caller did not identify itself.
const DefaultUsername = "مستخدم النظام"

// timestampLayout renders the dd.MM.yyyy HH:mm:ss form the audit log has
// always used; existing rows depend on it.
const timestampLayout = "02.01.2006 15:04:05"

type repository interface {
	Insert(ctx context.Context, entry *models.Transaction) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	DeleteAll(ctx context.Context) error
}

// AddInput is the validated payload for an explicit audit append.
type AddInput struct {
	Username    string `json:"username"`
	Action      string `json:"action" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Service exposes the append-only audit log.
type Service interface {
	// Record appends an entry on behalf of a completed mutation. It never
	// returns an error; failures go to the operator log only.
	Record(ctx context.Context, username, action, description string)
	Add(ctx context.Context, input AddInput) (*TransactionDTO, error)
	List(ctx context.Context) ([]TransactionDTO, error)
	ClearAll(ctx context.Context) error
}

type service struct {
	repo repository
	logg *logger.Logger
	now  func() time.Time
}

// NewService constructs the audit service.
func NewService(repo repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("audit repository required")
	}
	return &service{
		repo: repo,
		logg: logg,
		now:  time.Now,
	}, nil
}

func (s *service) Record(ctx context.Context, username, action, description string) {
	if _, err := s.append(ctx, username, action, description); err != nil {
		if s.logg != nil {
			ctx = s.logg.WithFields(ctx, map[string]any{"action": action})
			s.logg.Error(ctx, "audit.append_failed", err)
		}
	}
}

func (s *service) Add(ctx context.Context, input AddInput) (*TransactionDTO, error) {
	entry, err := s.append(ctx, input.Username, input.Action, input.Description)
	if err != nil {
		return nil, err
	}
	return NewTransactionDTO(entry), nil
}

func (s *service) List(ctx context.Context) ([]TransactionDTO, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]TransactionDTO, 0, len(entries))
	for i := range entries {
		dtos = append(dtos, *NewTransactionDTO(&entries[i]))
	}
	return dtos, nil
}

func (s *service) ClearAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

func (s *service) append(ctx context.Context, username, action, description string) (*models.Transaction, error) {
	if username == "" {
		username = DefaultUsername
	}
	entry := &models.Transaction{
		Username:    username,
		Action:      action,
		Description: description,
		Timestamp:   s.now().Format(timestampLayout),
	}
	return s.repo.Insert(ctx, entry)
}
