// Package model defines the domain records for expenses, categories, and the
// transient view filters.
package model

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pennyflow/penny/internal/common"
)

// Expense is a single recorded spending event. Expenses are immutable once
// created; they disappear only when their category is deleted.
type Expense struct {
	ID         string    `json:"id"`
	Amount     float64   `json:"amount"`
	CategoryID string    `json:"categoryId"`
	Note       string    `json:"note,omitempty"`
	Date       time.Time `json:"date"`
}

// ExpenseDraft is an expense before the store assigns its ID.
type ExpenseDraft struct {
	Amount     float64
	CategoryID string
	Note       string
	Date       time.Time
}

// NewExpenseID generates a collision-free expense identifier.
func NewExpenseID() string {
	return uuid.NewString()
}

// ParseAmount validates free-text amount input. It accepts a decimal number
// that is finite and strictly greater than zero.
func ParseAmount(input string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, common.ErrInvalidAmount
	}
	return amount, nil
}

// ValidateDraft enforces the expense preconditions: a positive amount and a
// chosen category. The store re-checks these before persisting.
func ValidateDraft(d ExpenseDraft) error {
	if math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) || d.Amount <= 0 {
		return common.ErrInvalidAmount
	}
	if strings.TrimSpace(d.CategoryID) == "" {
		return common.ErrCategoryRequired
	}
	return nil
}
