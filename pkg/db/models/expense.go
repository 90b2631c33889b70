package models

// Expense is a single expenditure entry.
type Expense struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Title       string  `gorm:"column:title;not null"`
	Category    string  `gorm:"column:category;not null"`
	Amount      float64 `gorm:"column:amount;not null"`
	ExpenseDate string  `gorm:"column:expense_date;not null"`
	Notes       *string `gorm:"column:notes"`
	CreatedAt   string  `gorm:"column:created_at"`
}
