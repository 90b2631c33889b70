package enums

// InvoiceStatus is free text on the wire; these are the values the UI uses.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// String implements fmt.Stringer.
func (s InvoiceStatus) String() string {
	return string(s)
}
