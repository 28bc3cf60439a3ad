package adapter

import (
	"context"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// LedgerSnapshot is a point-in-time read of the whole ledger. Aggregation and
// bill grouping are pure transforms over a snapshot, so concurrent requests
// can run in parallel as long as each gets its own copy.
type LedgerSnapshot struct {
	Expenses     []*entity.Expense
	PaymentModes []*entity.PaymentMode
	Budgets      []*entity.Budget
	TakenAt      time.Time
}

// PaymentModeByID builds a lookup table from the snapshot's payment modes.
func (s *LedgerSnapshot) PaymentModeByID() map[string]*entity.PaymentMode {
	modes := make(map[string]*entity.PaymentMode, len(s.PaymentModes))
	for _, mode := range s.PaymentModes {
		modes[mode.ID.String()] = mode
	}
	return modes
}

// LedgerSnapshotRepository supplies ledger snapshots to the read-side pipeline.
type LedgerSnapshotRepository interface {
	// GetSnapshot reads expenses, payment modes and budgets in one pass.
	GetSnapshot(ctx context.Context) (*LedgerSnapshot, error)
}
