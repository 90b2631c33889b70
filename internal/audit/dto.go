package audit

import "github.com/aydinsoft/backoffice-backend/pkg/db/models"

// TransactionDTO is the audit entry payload returned to clients.
type TransactionDTO struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Action      string `json:"action"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// NewTransactionDTO maps the persisted row to its client shape.
func NewTransactionDTO(entry *models.Transaction) *TransactionDTO {
	return &TransactionDTO{
		ID:          entry.ID,
		Username:    entry.Username,
		Action:      entry.Action,
		Description: entry.Description,
		Timestamp:   entry.Timestamp,
	}
}
