package users

import (
	"context"
	"fmt"

	"github.com/aydinsoft/backoffice-backend/pkg/config"
	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
	"github.com/aydinsoft/backoffice-backend/pkg/security"
)

// CreateUserInput holds the payload for an admin-created account.
type CreateUserInput struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Username *string `json:"username"`
	Role     string  `json:"role"`
}

// UpdateUserInput carries a full-row update. Empty strings fall back to the
// stored value; Bio is pointer-typed so an explicit empty string can clear it
// while omission keeps it.
type UpdateUserInput struct {
	ID       int64   `json:"id" validate:"required"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	Role     string  `json:"role"`
	Password string  `json:"password"`
}

type repository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, account *models.User) (*models.User, error)
	Update(ctx context.Context, account *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

type auditRecorder interface {
	Record(ctx context.Context, username, action, description string)
}

// Service exposes account management.
type Service interface {
	ListUsers(ctx context.Context) ([]UserDTO, error)
	CreateUser(ctx context.Context, actor string, input CreateUserInput) (*UserDTO, error)
	UpdateUser(ctx context.Context, actor string, input UpdateUserInput) (*UserDTO, error)
	DeleteUser(ctx context.Context, actor string, id int64) error
}

type service struct {
	repo     repository
	audit    auditRecorder
	password config.PasswordConfig
}

// NewService constructs a users service instance.
func NewService(repo repository, audit auditRecorder, password config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if audit == nil {
		return nil, fmt.Errorf("audit recorder required")
	}
	return &service{
		repo:     repo,
		audit:    audit,
		password: password,
	}, nil
}

func (s *service) ListUsers(ctx context.Context) ([]UserDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *NewUserDTO(&rows[i]))
	}
	return dtos, nil
}

func (s *service) CreateUser(ctx context.Context, actor string, input CreateUserInput) (*UserDTO, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "الاسم والبريد الإلكتروني وكلمة المرور مطلوبة")
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "البريد الإلكتروني مستخدم بالفعل")
	}

	role := enums.Role(input.Role)
	if input.Role == "" {
		role = enums.RoleStaff
	}
	if !role.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	hash, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	created, err := s.repo.Create(ctx, &models.User{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Username:     input.Username,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Kullanıcı Oluşturuldu", created.Email)
	return NewUserDTO(created), nil
}

// UpdateUser merges the payload over the stored row: blank fields keep their
// stored values, changed emails are checked for uniqueness, and a non-empty
// password is re-hashed.
func (s *service) UpdateUser(ctx context.Context, actor string, input UpdateUserInput) (*UserDTO, error) {
	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != existing.Email {
		taken, err := s.repo.FindByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "البريد الإلكتروني مستخدم بالفعل")
		}
		existing.Email = input.Email
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Username != nil && *input.Username != "" {
		existing.Username = input.Username
	}
	if input.Bio != nil {
		existing.Bio = input.Bio
	}
	if input.Role != "" {
		role := enums.Role(input.Role)
		if !role.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
		}
		existing.Role = role
	}
	if input.Password != "" {
		hash, err := security.HashPassword(input.Password, s.password)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		existing.PasswordHash = hash
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "Kullanıcı Güncellendi", updated.Email)
	return NewUserDTO(updated), nil
}

func (s *service) DeleteUser(ctx context.Context, actor string, id int64) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "Kullanıcı Silindi", existing.Email)
	return nil
}
