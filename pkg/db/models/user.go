package models

import "github.com/aydinsoft/backoffice-backend/pkg/enums"

// User represents a back-office account.
type User struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Email        string     `gorm:"column:email;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Name         string     `gorm:"column:name;not null"`
	Username     *string    `gorm:"column:username"`
	Bio          *string    `gorm:"column:bio"`
	Role         enums.Role `gorm:"column:role;not null;default:staff"`
}
