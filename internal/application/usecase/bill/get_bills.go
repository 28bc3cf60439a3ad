package bill

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetBillsInput represents the input for the bill grouping report.
type GetBillsInput struct {
	Year  int
	Month int
}

// BillExpense is one expense within a payment mode's bill.
type BillExpense struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Date       time.Time       `json:"date"`
	IsEMI      bool            `json:"is_emi"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	IsPaid     bool            `json:"is_paid"`
}

// BillGroup is the settlement view for one payment mode in a month.
type BillGroup struct {
	PaymentModeID   string          `json:"payment_mode_id"`
	PaymentModeName string          `json:"payment_mode_name"`
	PaymentModeType string          `json:"payment_mode_type"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	UnpaidAmount    decimal.Decimal `json:"unpaid_amount"`
	ExpenseCount    int             `json:"expense_count"`
	PaidCount       int             `json:"paid_count"`
	UnpaidCount     int             `json:"unpaid_count"`
	Expenses        []BillExpense   `json:"expenses"`
}

// GetBillsOutput represents the output of the bill grouping report.
type GetBillsOutput struct {
	Year  int         `json:"year"`
	Month int         `json:"month"`
	Bills []BillGroup `json:"bills"`
}

// GetBillsUseCase groups a month's expenses by payment mode.
type GetBillsUseCase struct {
	snapshotRepo adapter.LedgerSnapshotRepository
}

// NewGetBillsUseCase creates a new GetBillsUseCase instance.
func NewGetBillsUseCase(snapshotRepo adapter.LedgerSnapshotRepository) *GetBillsUseCase {
	return &GetBillsUseCase{snapshotRepo: snapshotRepo}
}

// Execute groups the target month's expenses into per-payment-mode bills.
func (uc *GetBillsUseCase) Execute(ctx context.Context, input GetBillsInput) (*GetBillsOutput, error) {
	if input.Year < 1 {
		return nil, domainerror.NewBillError(domainerror.ErrCodeInvalidBillYear, "invalid bill year", domainerror.ErrInvalidBillYear)
	}
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBillError(domainerror.ErrCodeInvalidBillMonth, "invalid bill month", domainerror.ErrInvalidBillMonth)
	}

	snapshot, err := uc.snapshotRepo.GetSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger snapshot: %w", err)
	}

	return computeBills(snapshot, input.Year, input.Month), nil
}

// computeBills is the pure grouping over a snapshot.
func computeBills(snapshot *adapter.LedgerSnapshot, year, month int) *GetBillsOutput {
	modes := snapshot.PaymentModeByID()
	groups := make(map[string]*BillGroup)

	for _, expense := range snapshot.Expenses {
		if expense.Date.Year() != year || int(expense.Date.Month()) != month {
			continue
		}

		modeID := expense.PaymentModeID.String()
		group, ok := groups[modeID]
		if !ok {
			group = &BillGroup{PaymentModeID: modeID}
			if mode := modes[modeID]; mode != nil {
				group.PaymentModeName = mode.Name
				group.PaymentModeType = string(mode.Type)
			}
			groups[modeID] = group
		}

		paid := expense.EffectivePaidAmount()
		group.TotalAmount = group.TotalAmount.Add(expense.Amount)
		group.PaidAmount = group.PaidAmount.Add(paid)
		group.ExpenseCount++
		if expense.IsPaid || paid.IsPositive() {
			group.PaidCount++
		}
		group.Expenses = append(group.Expenses, BillExpense{
			ID:         expense.ID.String(),
			Title:      expense.Title,
			Amount:     expense.Amount,
			Category:   string(expense.Category),
			Date:       expense.Date,
			IsEMI:      expense.IsEMI,
			PaidAmount: paid,
			IsPaid:     expense.IsPaid,
		})
	}

	bills := make([]BillGroup, 0, len(groups))
	for _, group := range groups {
		group.UnpaidAmount = group.TotalAmount.Sub(group.PaidAmount)
		group.UnpaidCount = group.ExpenseCount - group.PaidCount
		sort.Slice(group.Expenses, func(i, j int) bool {
			if !group.Expenses[i].Date.Equal(group.Expenses[j].Date) {
				return group.Expenses[i].Date.Before(group.Expenses[j].Date)
			}
			return group.Expenses[i].ID < group.Expenses[j].ID
		})
		bills = append(bills, *group)
	}

	sort.Slice(bills, func(i, j int) bool {
		if !bills[i].TotalAmount.Equal(bills[j].TotalAmount) {
			return bills[i].TotalAmount.GreaterThan(bills[j].TotalAmount)
		}
		return bills[i].PaymentModeID < bills[j].PaymentModeID
	})

	return &GetBillsOutput{Year: year, Month: month, Bills: bills}
}
