package product

import (
	"context"
	"testing"
	"time"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/aydinsoft/backoffice-backend/pkg/errors"
)

type fakeRepo struct {
	rows   map[int64]models.Product
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[int64]models.Product{}}
}

func (f *fakeRepo) List(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(f.rows))
	for id := int64(1); id <= f.nextID; id++ {
		if row, ok := f.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*models.Product, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "المنتج غير موجود")
	}
	return &row, nil
}

func (f *fakeRepo) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	f.nextID++
	product.ID = f.nextID
	f.rows[product.ID] = *product
	return product, nil
}

func (f *fakeRepo) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	f.rows[product.ID] = *product
	return product, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.rows, id)
	return nil
}

type recorded struct {
	username, action, description string
}

type fakeRecorder struct {
	records []recorded
}

func (f *fakeRecorder) Record(_ context.Context, username, action, description string) {
	f.records = append(f.records, recorded{username, action, description})
}

func newTestService(repo *fakeRepo, rec *fakeRecorder) *service {
	return &service{
		repo:  repo,
		audit: rec,
		now:   func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) },
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func TestCreateProductAssignsCreatedAt(t *testing.T) {
	repo := newFakeRepo()
	rec := &fakeRecorder{}
	svc := newTestService(repo, rec)

	dto, err := svc.CreateProduct(context.Background(), "tester", CreateProductInput{
		Name:        "Widget",
		Description: "d",
		Price:       9.99,
		Stock:       5,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if dto.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if dto.CreatedAt != "2025-06-01" {
		t.Fatalf("unexpected createdAt %q", dto.CreatedAt)
	}
	if len(rec.records) != 1 || rec.records[0].action != "Ürün Eklendi" {
		t.Fatalf("expected audit record, got %v", rec.records)
	}
}

func TestCreateProductRequiresName(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeRecorder{})

	_, err := svc.CreateProduct(context.Background(), "tester", CreateProductInput{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateProductKeepsCreatedAt(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeRecorder{})

	created, err := svc.CreateProduct(context.Background(), "tester", CreateProductInput{Name: "Widget", Price: 1, Stock: 1})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	updated, err := svc.UpdateProduct(context.Background(), "tester", UpdateProductInput{
		ID:    created.ID,
		Name:  "Widget v2",
		Price: floatPtr(2),
		Stock: intPtr(3),
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Name != "Widget v2" || updated.Price != 2 || updated.Stock != 3 {
		t.Fatalf("unexpected update result %+v", updated)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Fatalf("createdAt must be immutable, got %q", updated.CreatedAt)
	}
}

func TestUpdateProductRetainsOmittedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, &fakeRecorder{})

	created, err := svc.CreateProduct(context.Background(), "tester", CreateProductInput{
		Name:     "Cola",
		Price:    5,
		Stock:    12,
		Category: strPtr("Drinks"),
		Barcode:  strPtr("8690000000001"),
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	updated, err := svc.UpdateProduct(context.Background(), "tester", UpdateProductInput{
		ID:    created.ID,
		Price: floatPtr(6),
	})
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	if updated.Price != 6 {
		t.Fatalf("expected price 6, got %v", updated.Price)
	}
	if updated.Name != "Cola" {
		t.Fatalf("omitted name was not retained, got %q", updated.Name)
	}
	if updated.Stock != 12 {
		t.Fatalf("omitted stock was not retained, got %d", updated.Stock)
	}
	if updated.Category == nil || *updated.Category != "Drinks" {
		t.Fatalf("omitted category was not retained, got %v", updated.Category)
	}
	if updated.Barcode == nil || *updated.Barcode != "8690000000001" {
		t.Fatalf("omitted barcode was not retained, got %v", updated.Barcode)
	}
}

func TestUpdateMissingProduct(t *testing.T) {
	svc := newTestService(newFakeRepo(), &fakeRecorder{})

	_, err := svc.UpdateProduct(context.Background(), "tester", UpdateProductInput{ID: 99, Name: "x"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if typed.Message() != "المنتج غير موجود" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestDeleteProduct(t *testing.T) {
	repo := newFakeRepo()
	rec := &fakeRecorder{}
	svc := newTestService(repo, rec)

	created, err := svc.CreateProduct(context.Background(), "tester", CreateProductInput{Name: "Widget"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), "tester", created.ID); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	if err := svc.DeleteProduct(context.Background(), "tester", created.ID); err == nil {
		t.Fatal("expected not-found on second delete")
	}
	if rec.records[len(rec.records)-1].action != "Ürün Silindi" {
		t.Fatalf("expected delete audit record, got %v", rec.records)
	}
}

func TestListBackfillsMissingCreatedAt(t *testing.T) {
	repo := newFakeRepo()
	repo.nextID = 1
	repo.rows[1] = models.Product{ID: 1, Name: "Legacy"}
	svc := newTestService(repo, &fakeRecorder{})

	dtos, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if dtos[0].CreatedAt != "2025-06-01" {
		t.Fatalf("expected backfilled date, got %q", dtos[0].CreatedAt)
	}
}
