package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// ledgerSnapshotRepository implements the adapter.LedgerSnapshotRepository interface.
type ledgerSnapshotRepository struct {
	db *gorm.DB
}

// NewLedgerSnapshotRepository creates a new ledger snapshot repository instance.
func NewLedgerSnapshotRepository(db *gorm.DB) adapter.LedgerSnapshotRepository {
	return &ledgerSnapshotRepository{
		db: db,
	}
}

// GetSnapshot reads expenses, payment modes and budgets in one pass. Each
// caller gets its own copy, so downstream aggregation can run concurrently.
func (r *ledgerSnapshotRepository) GetSnapshot(ctx context.Context) (*adapter.LedgerSnapshot, error) {
	var expenseModels []model.ExpenseModel
	if err := r.db.WithContext(ctx).Order("date ASC, created_at ASC").Find(&expenseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	var modeModels []model.PaymentModeModel
	if err := r.db.WithContext(ctx).Find(&modeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to read payment modes: %w", err)
	}

	var budgetModels []model.BudgetModel
	if err := r.db.WithContext(ctx).Find(&budgetModels).Error; err != nil {
		return nil, fmt.Errorf("failed to read budgets: %w", err)
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	modes := make([]*entity.PaymentMode, len(modeModels))
	for i, mm := range modeModels {
		modes[i] = mm.ToEntity()
	}
	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}

	return &adapter.LedgerSnapshot{
		Expenses:     expenses,
		PaymentModes: modes,
		Budgets:      budgets,
		TakenAt:      time.Now().UTC(),
	}, nil
}
