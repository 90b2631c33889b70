package expense

import (
	"context"
	"testing"
	"time"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

type fakeRepo struct {
	rows   map[int64]models.Expense
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]models.Expense{}}
}

func (f *fakeRepo) List(_ context.Context) ([]models.Expense, error) {
	out := []models.Expense{}
	for id := f.nextID; id >= 1; id-- {
		if row, ok := f.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*models.Expense, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "المصروف غير موجود")
	}
	return &row, nil
}

func (f *fakeRepo) Create(_ context.Context, expense *models.Expense) (*models.Expense, error) {
	f.nextID++
	expense.ID = f.nextID
	f.rows[expense.ID] = *expense
	return expense, nil
}

func (f *fakeRepo) Update(_ context.Context, expense *models.Expense) (*models.Expense, error) {
	f.rows[expense.ID] = *expense
	return expense, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type fakeRecorder struct {
	actions []string
}

func (f *fakeRecorder) Record(_ context.Context, _, action, _ string) {
	f.actions = append(f.actions, action)
}

func newTestService(repo *fakeRepo) (*service, *fakeRecorder) {
	rec := &fakeRecorder{}
	return &service{
		repo:  repo,
		audit: rec,
		now:   func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) },
	}, rec
}

func TestCreateAndListNewestFirst(t *testing.T) {
	svc, rec := newTestService(newFakeRepo())
	ctx := context.Background()

	for _, title := range []string{"Rent", "Electricity"} {
		if _, err := svc.CreateExpense(ctx, "tester", CreateExpenseInput{
			Title:       title,
			Category:    "fixed",
			Amount:      100,
			ExpenseDate: "2025-05-01",
		}); err != nil {
			t.Fatalf("CreateExpense: %v", err)
		}
	}

	got, err := svc.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Electricity" {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if len(rec.actions) != 2 || rec.actions[0] != "Gider Eklendi" {
		t.Fatalf("expected audit records, got %v", rec.actions)
	}
}

func TestListBackfillsEmptyDate(t *testing.T) {
	repo := newFakeRepo()
	repo.nextID = 1
	repo.rows[1] = models.Expense{ID: 1, Title: "Legacy", Category: "misc", Amount: 1}
	svc, _ := newTestService(repo)

	got, err := svc.ListExpenses(context.Background())
	if err != nil {
		t.Fatalf("ListExpenses: %v", err)
	}
	if got[0].ExpenseDate != "2025-06-01" {
		t.Fatalf("expected backfilled date, got %q", got[0].ExpenseDate)
	}
}

func TestUpdateExpense(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.CreateExpense(ctx, "t", CreateExpenseInput{Title: "Rent", Category: "fixed", Amount: 100, ExpenseDate: "2025-05-01"})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	updated, err := svc.UpdateExpense(ctx, "t", UpdateExpenseInput{
		ID:          created.ID,
		Title:       "Rent May",
		Category:    "fixed",
		Amount:      amountPtr(120),
		ExpenseDate: "2025-05-02",
	})
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	if updated.Amount != 120 || updated.Title != "Rent May" {
		t.Fatalf("unexpected update %+v", updated)
	}
}

func amountPtr(f float64) *float64 { return &f }

func notesPtr(s string) *string { return &s }

func TestUpdateExpenseRetainsOmittedFields(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.CreateExpense(ctx, "t", CreateExpenseInput{
		Title:       "Rent",
		Category:    "fixed",
		Amount:      100,
		ExpenseDate: "2025-05-01",
		Notes:       notesPtr("monthly"),
	})
	if err != nil {
		t.Fatalf("CreateExpense: %v", err)
	}

	updated, err := svc.UpdateExpense(ctx, "t", UpdateExpenseInput{
		ID:    created.ID,
		Title: "Rent May",
	})
	if err != nil {
		t.Fatalf("UpdateExpense: %v", err)
	}
	if updated.Title != "Rent May" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.Category != "fixed" {
		t.Fatalf("omitted category was not retained, got %q", updated.Category)
	}
	if updated.Amount != 100 {
		t.Fatalf("omitted amount was not retained, got %v", updated.Amount)
	}
	if updated.ExpenseDate != "2025-05-01" {
		t.Fatalf("omitted date was not retained, got %q", updated.ExpenseDate)
	}
	if updated.Notes == nil || *updated.Notes != "monthly" {
		t.Fatalf("omitted notes were not retained, got %v", updated.Notes)
	}
}

func TestUpdateExpenseRequiresID(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.UpdateExpense(context.Background(), "t", UpdateExpenseInput{Title: "Rent"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if typed.Message() != "معرف المصروف مطلوب" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestDeleteMissingExpense(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	err := svc.DeleteExpense(context.Background(), "t", 42)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}
