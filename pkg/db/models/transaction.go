package models

// Transaction is an append-only audit entry. Rows are never updated; the only
// destructive operation is a bulk clear.
type Transaction struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Username    string `gorm:"column:username;not null"`
	Action      string `gorm:"column:action;not null"`
	Description string `gorm:"column:description;not null"`
	Timestamp   string `gorm:"column:timestamp;not null"`
}
