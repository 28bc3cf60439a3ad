package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// A single connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	if err := db.AutoMigrate(&model.PaymentModeModel{}, &model.ExpenseModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedExpense(t *testing.T, repo adapter.ExpenseRepository, title string, isEMI bool, modeID uuid.UUID) {
	t.Helper()

	expense := &entity.Expense{
		ID:            uuid.New(),
		Title:         title,
		Amount:        decimal.RequireFromString("1000"),
		Category:      entity.CategoryShopping,
		Date:          time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentModeID: modeID,
		IsEMI:         isEMI,
	}
	if isEMI {
		expense.EMI = &entity.EMITerms{
			TenureMonths:  12,
			MonthlyAmount: decimal.RequireFromString("83.33"),
			TotalAmount:   decimal.RequireFromString("1000"),
		}
	}
	if err := repo.Create(context.Background(), expense); err != nil {
		t.Fatalf("Create(%s) error = %v", title, err)
	}
}

func TestExpenseRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	modeID := uuid.New()

	for i := 0; i < 3; i++ {
		seedExpense(t, repo, fmt.Sprintf("Laptop %d", i), true, modeID)
	}
	seedExpense(t, repo, "Groceries", false, modeID)

	t.Run("filters installment expenses", func(t *testing.T) {
		result, err := repo.FindByFilter(context.Background(), adapter.ExpenseFilter{OnlyEMI: true}, adapter.ExpensePagination{Page: 1, Limit: 10})
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 3 {
			t.Errorf("Total = %d, want 3", result.Total)
		}
		if len(result.Expenses) != 3 {
			t.Errorf("len(Expenses) = %d, want 3", len(result.Expenses))
		}
	})

	t.Run("clamps a zero limit", func(t *testing.T) {
		result, err := repo.FindByFilter(context.Background(), adapter.ExpenseFilter{OnlyEMI: true}, adapter.ExpensePagination{Page: 1, Limit: 0})
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if len(result.Expenses) != 3 {
			t.Errorf("len(Expenses) = %d, want 3", len(result.Expenses))
		}
		if result.TotalPages != 1 {
			t.Errorf("TotalPages = %d, want 1", result.TotalPages)
		}
	})

	t.Run("clamps negative page and limit", func(t *testing.T) {
		result, err := repo.FindByFilter(context.Background(), adapter.ExpenseFilter{}, adapter.ExpensePagination{Page: -1, Limit: -5})
		if err != nil {
			t.Fatalf("FindByFilter() error = %v", err)
		}
		if result.Total != 4 {
			t.Errorf("Total = %d, want 4", result.Total)
		}
		if len(result.Expenses) != 4 {
			t.Errorf("len(Expenses) = %d, want 4", len(result.Expenses))
		}
	})
}
