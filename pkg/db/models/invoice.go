package models

// Invoice holds a customer invoice. Items is serialized JSON text; the total
// is caller-supplied and deliberately never reconciled against the items sum.
type Invoice struct {
	ID            int64   `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerName  string  `gorm:"column:customer_name;not null"`
	CustomerEmail *string `gorm:"column:customer_email"`
	CustomerPhone *string `gorm:"column:customer_phone"`
	TotalAmount   float64 `gorm:"column:total_amount;not null"`
	Status        string  `gorm:"column:status;not null"`
	Items         string  `gorm:"column:items;not null"`
	CreatedAt     string  `gorm:"column:created_at"`
}
