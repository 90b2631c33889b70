package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

type fakeRepo struct {
	rows   map[int64]models.Invoice
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]models.Invoice{}}
}

func (f *fakeRepo) List(_ context.Context, status string) ([]models.Invoice, error) {
	out := []models.Invoice{}
	for id := int64(1); id <= f.nextID; id++ {
		row, ok := f.rows[id]
		if !ok {
			continue
		}
		if status != "" && row.Status != status {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*models.Invoice, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "الفاتورة غير موجودة")
	}
	return &row, nil
}

func (f *fakeRepo) Create(_ context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	f.nextID++
	invoice.ID = f.nextID
	f.rows[invoice.ID] = *invoice
	return invoice, nil
}

func (f *fakeRepo) Update(_ context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	f.rows[invoice.ID] = *invoice
	return invoice, nil
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

func newTestService(repo *fakeRepo) *service {
	return &service{
		repo:  repo,
		audit: &fakeRecorder{},
		now:   func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestCreateInvoiceEncodesItems(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	dto, err := svc.CreateInvoice(context.Background(), "tester", CreateInvoiceInput{
		CustomerName: "Acme",
		TotalAmount:  150,
		Items: []InvoiceItem{
			{Description: "Widget", Quantity: 3, UnitPrice: 50, Total: 150},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if dto.Status != "pending" {
		t.Fatalf("expected default pending status, got %q", dto.Status)
	}
	if len(dto.Items) != 1 || dto.Items[0].Description != "Widget" {
		t.Fatalf("items did not round-trip: %+v", dto.Items)
	}

	stored := repo.rows[dto.ID]
	if stored.Items != `[{"description":"Widget","quantity":3,"unitPrice":50,"total":150}]` {
		t.Fatalf("unexpected stored items text %q", stored.Items)
	}
}

func TestCreateInvoiceTotalNotReconciled(t *testing.T) {
	svc := newTestService(newFakeRepo())

	dto, err := svc.CreateInvoice(context.Background(), "tester", CreateInvoiceInput{
		CustomerName: "Acme",
		TotalAmount:  999,
		Items:        []InvoiceItem{{Description: "w", Quantity: 1, UnitPrice: 1, Total: 1}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}
	if dto.TotalAmount != 999 {
		t.Fatalf("total must pass through untouched, got %f", dto.TotalAmount)
	}
}

func TestListInvoicesStatusFilter(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	for _, status := range []string{"pending", "paid", "paid"} {
		if _, err := svc.CreateInvoice(context.Background(), "t", CreateInvoiceInput{CustomerName: "c", Status: status}); err != nil {
			t.Fatalf("CreateInvoice: %v", err)
		}
	}

	paid, err := svc.ListInvoices(context.Background(), "paid")
	if err != nil {
		t.Fatalf("ListInvoices: %v", err)
	}
	if len(paid) != 2 {
		t.Fatalf("expected 2 paid invoices, got %d", len(paid))
	}

	all, err := svc.ListInvoices(context.Background(), "")
	if err != nil {
		t.Fatalf("ListInvoices: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 invoices, got %d", len(all))
	}
}

func TestUpdateInvoiceRetainsOmittedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	created, err := svc.CreateInvoice(context.Background(), "t", CreateInvoiceInput{
		CustomerName: "Nermin",
		TotalAmount:  150,
		Status:       "draft",
		Items:        []InvoiceItem{{Description: "Shirt", Quantity: 1, UnitPrice: 150, Total: 150}},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	amount := 175.0
	updated, err := svc.UpdateInvoice(context.Background(), "t", UpdateInvoiceInput{
		ID:          created.ID,
		TotalAmount: &amount,
	})
	if err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}
	if updated.TotalAmount != 175 {
		t.Fatalf("expected total 175, got %v", updated.TotalAmount)
	}
	if updated.CustomerName != "Nermin" {
		t.Fatalf("omitted customer name was not retained, got %q", updated.CustomerName)
	}
	if updated.Status != "draft" {
		t.Fatalf("omitted status was not retained, got %q", updated.Status)
	}
	if len(updated.Items) != 1 || updated.Items[0].Description != "Shirt" {
		t.Fatalf("omitted items were not retained, got %v", updated.Items)
	}
}

func TestUpdateInvoiceMissing(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.UpdateInvoice(context.Background(), "t", UpdateInvoiceInput{ID: 4, CustomerName: "x"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestDecodeItemsToleratesGarbage(t *testing.T) {
	if got := decodeItems("not json"); len(got) != 0 {
		t.Fatalf("expected empty items for garbage text, got %v", got)
	}
	if got := decodeItems(""); got == nil {
		t.Fatal("expected empty slice, not nil")
	}
}
