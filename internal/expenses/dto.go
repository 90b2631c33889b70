package expense

import "github.com/aydinsoft/backoffice-backend/pkg/db/models"

// ExpenseDTO is the expense payload returned to clients.
type ExpenseDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expenseDate"`
	Notes       *string `json:"notes"`
	CreatedAt   string  `json:"createdAt"`
}

// NewExpenseDTO maps the persisted row to its client shape.
func NewExpenseDTO(expense *models.Expense) *ExpenseDTO {
	return &ExpenseDTO{
		ID:          expense.ID,
		Title:       expense.Title,
		Category:    expense.Category,
		Amount:      expense.Amount,
		ExpenseDate: expense.ExpenseDate,
		Notes:       expense.Notes,
		CreatedAt:   expense.CreatedAt,
	}
}
