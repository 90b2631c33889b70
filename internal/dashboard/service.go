package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aydinsoft/backoffice-backend/pkg/config"
	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
)

// Summary is the accounting overview payload.
type Summary struct {
	Revenue       float64 `json:"revenue"`
	ExpenseTotal  float64 `json:"expenseTotal"`
	Net           float64 `json:"net"`
	InvoiceCount  int     `json:"invoiceCount"`
	PaidCount     int     `json:"paidCount"`
	PendingCount  int     `json:"pendingCount"`
	OverdueCount  int     `json:"overdueCount"`
	ExpenseCount  int     `json:"expenseCount"`
	ProductCount  int     `json:"productCount"`
	LowStockCount int     `json:"lowStockCount"`
}

type invoiceLister interface {
	List(ctx context.Context, status string) ([]models.Invoice, error)
}

type expenseLister interface {
	List(ctx context.Context) ([]models.Expense, error)
}

type productLister interface {
	List(ctx context.Context) ([]models.Product, error)
}

// Service computes the accounting summary.
type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	invoices invoiceLister
	expenses expenseLister
	products productLister
	lowStock int
}

// NewService constructs a dashboard service instance.
func NewService(invoices invoiceLister, expenses expenseLister, products productLister, cfg config.DashboardConfig) (Service, error) {
	if invoices == nil {
		return nil, fmt.Errorf("invoice repository required")
	}
	if expenses == nil {
		return nil, fmt.Errorf("expense repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{
		invoices: invoices,
		expenses: expenses,
		products: products,
		lowStock: cfg.LowStockThreshold,
	}, nil
}

// Summary sums money amounts with decimal arithmetic; float accumulation
// drifts on long ledgers.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	invoices, err := s.invoices.List(ctx, "")
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		InvoiceCount: len(invoices),
		ExpenseCount: len(expenses),
		ProductCount: len(products),
	}

	revenue := decimal.Zero
	for _, inv := range invoices {
		switch inv.Status {
		case string(enums.InvoiceStatusPaid):
			summary.PaidCount++
			revenue = revenue.Add(decimal.NewFromFloat(inv.TotalAmount))
		case string(enums.InvoiceStatusPending):
			summary.PendingCount++
		case string(enums.InvoiceStatusOverdue):
			summary.OverdueCount++
		}
	}

	expenseTotal := decimal.Zero
	for _, exp := range expenses {
		expenseTotal = expenseTotal.Add(decimal.NewFromFloat(exp.Amount))
	}

	for _, p := range products {
		if p.Stock <= s.lowStock {
			summary.LowStockCount++
		}
	}

	summary.Revenue = revenue.InexactFloat64()
	summary.ExpenseTotal = expenseTotal.InexactFloat64()
	summary.Net = revenue.Sub(expenseTotal).InexactFloat64()
	return summary, nil
}
