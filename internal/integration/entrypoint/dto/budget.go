package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Month    string  `json:"month" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Month    string  `json:"month" binding:"required"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	Month     string    `json:"month"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBudgetResponse converts a domain Budget entity to its response DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		Category:  budget.Category.String(),
		Amount:    budget.Amount.String(),
		Month:     budget.Month,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts budget entities to response DTOs.
func ToBudgetListResponse(budgets []*entity.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return responses
}
