package users

import (
	"context"

	"github.com/aydinsoft/backoffice-backend/pkg/config"
	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
	"github.com/aydinsoft/backoffice-backend/pkg/logger"
	"github.com/aydinsoft/backoffice-backend/pkg/security"
)

type seedAccount struct {
	email    string
	password string
	name     string
	username string
	role     enums.Role
}

var seedAccounts = []seedAccount{
	{email: "admin@store.com", password: "admin123", name: "مدير النظام", username: "admin", role: enums.RoleAdmin},
	{email: "supervisor@store.com", password: "super123", name: "المشرف", username: "supervisor", role: enums.RoleSupervisor},
	{email: "staff@store.com", password: "staff123", name: "الموظف", username: "staff", role: enums.RoleStaff},
}

// SeedDefaults creates the three stock accounts when they are absent. Existing
// rows are never touched, so changed passwords survive restarts.
func SeedDefaults(ctx context.Context, repo *Repository, password config.PasswordConfig, logg *logger.Logger) error {
	for _, acct := range seedAccounts {
		existing, err := repo.FindByEmail(ctx, acct.email)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := security.HashPassword(acct.password, password)
		if err != nil {
			return err
		}

		username := acct.username
		if _, err := repo.Create(ctx, &models.User{
			Email:        acct.email,
			PasswordHash: hash,
			Name:         acct.name,
			Username:     &username,
			Role:         acct.role,
		}); err != nil {
			return err
		}

		if logg != nil {
			logg.Info(logg.WithField(ctx, "email", acct.email), "seed.account_created")
		}
	}
	return nil
}
