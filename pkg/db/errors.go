package db

import "strings"

// IsUniqueViolation reports whether the provided error references a unique
// constraint violation. SQLite and Postgres phrase these differently; when
// columnName is provided the helper also looks for the column text in the
// error message.
func IsUniqueViolation(err error, columnName string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	unique := strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
	if !unique {
		return false
	}
	if columnName != "" {
		return strings.Contains(msg, columnName)
	}
	return true
}
