package models

// Product represents a catalog item. CreatedAt is a date string assigned at
// creation and never rewritten on update.
type Product struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;not null"`
	Description string  `gorm:"column:description;not null"`
	Price       float64 `gorm:"column:price;not null"`
	Stock       int     `gorm:"column:stock;not null"`
	Category    *string `gorm:"column:category"`
	Size        *string `gorm:"column:size"`
	Barcode     *string `gorm:"column:barcode"`
	CreatedAt   string  `gorm:"column:created_at"`
}
