package invoice

import (
	"encoding/json"

	"github.com/aydinsoft/backoffice-backend/pkg/db/models"
)

// InvoiceItem is one line of an invoice. Totals are caller-supplied.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

// InvoiceDTO is the invoice payload returned to clients, with items decoded
// from their stored JSON text.
type InvoiceDTO struct {
	ID            int64         `json:"id"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail *string       `json:"customerEmail"`
	CustomerPhone *string       `json:"customerPhone"`
	TotalAmount   float64       `json:"totalAmount"`
	Status        string        `json:"status"`
	Items         []InvoiceItem `json:"items"`
	CreatedAt     string        `json:"createdAt"`
}

// NewInvoiceDTO maps the persisted row to its client shape. Unparseable item
// text degrades to an empty list rather than failing the read.
func NewInvoiceDTO(invoice *models.Invoice) *InvoiceDTO {
	return &InvoiceDTO{
		ID:            invoice.ID,
		CustomerName:  invoice.CustomerName,
		CustomerEmail: invoice.CustomerEmail,
		CustomerPhone: invoice.CustomerPhone,
		TotalAmount:   invoice.TotalAmount,
		Status:        invoice.Status,
		Items:         decodeItems(invoice.Items),
		CreatedAt:     invoice.CreatedAt,
	}
}

func decodeItems(raw string) []InvoiceItem {
	if raw == "" {
		return []InvoiceItem{}
	}
	var items []InvoiceItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []InvoiceItem{}
	}
	return items
}

func encodeItems(items []InvoiceItem) string {
	if items == nil {
		items = []InvoiceItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(raw)
}
