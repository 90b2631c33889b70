package category

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aydinsoft/backoffice-backend/pkg/db"
	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Category{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return conn
}

func TestCreateDuplicateNameFailsAndCountUnchanged(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.Category{Name: "Drinks"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := repo.Create(ctx, &models.Category{Name: "Drinks"})
	if err == nil {
		t.Fatal("expected unique violation")
	}
	if !db.IsUniqueViolation(err, "name") {
		t.Fatalf("expected unique violation to be recognized, got %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("duplicate insert must not change count, got %d rows", len(rows))
	}
}

func TestDeleteAbsentIDIsNoOp(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	if err := repo.Delete(context.Background(), 12345); err != nil {
		t.Fatalf("Delete of absent id should not error: %v", err)
	}
}
