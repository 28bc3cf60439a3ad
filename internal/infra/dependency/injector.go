// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/application/usecase/bill"
	"github.com/expense-tracker/backend/internal/application/usecase/budget"
	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/application/usecase/emi"
	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/payment"
	"github.com/expense-tracker/backend/internal/application/usecase/paymentmode"
	"github.com/expense-tracker/backend/internal/infra/server/router"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The aggregate cache may be nil; aggregates are then recomputed per request.
func NewInjector(cfg *config.Config, db *gorm.DB, aggregateCache adapter.AggregateCache, dbHealthChecker func() bool) *Injector {
	// Create repositories
	expenseRepo := persistence.NewExpenseRepository(db)
	paymentModeRepo := persistence.NewPaymentModeRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	snapshotRepo := persistence.NewLedgerSnapshotRepository(db)

	// Create EMI use cases
	calculateEMIUseCase := emi.NewCalculateEMIUseCase()
	listEMIsUseCase := emi.NewListEMIsUseCase(expenseRepo, paymentModeRepo)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, paymentModeRepo, aggregateCache)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, paymentModeRepo, aggregateCache)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, aggregateCache)

	// Create payment lifecycle use cases
	markPaidUseCase := payment.NewMarkPaidUseCase(expenseRepo, aggregateCache, nil)
	markUnpaidUseCase := payment.NewMarkUnpaidUseCase(expenseRepo, aggregateCache, nil)

	// Create payment mode use cases
	listPaymentModesUseCase := paymentmode.NewListPaymentModesUseCase(paymentModeRepo)
	createPaymentModeUseCase := paymentmode.NewCreatePaymentModeUseCase(paymentModeRepo, aggregateCache)
	updatePaymentModeUseCase := paymentmode.NewUpdatePaymentModeUseCase(paymentModeRepo, aggregateCache)
	deletePaymentModeUseCase := paymentmode.NewDeletePaymentModeUseCase(paymentModeRepo, aggregateCache)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, aggregateCache)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, aggregateCache)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, aggregateCache)

	// Create aggregation use cases
	getOverviewUseCase := dashboard.NewGetOverviewUseCase(snapshotRepo, aggregateCache, nil)
	getBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(snapshotRepo, aggregateCache, nil)
	getBudgetUsageUseCase := dashboard.NewGetBudgetUsageUseCase(snapshotRepo, aggregateCache)
	getTrendsUseCase := dashboard.NewGetExpenseTrendsUseCase(snapshotRepo, aggregateCache, nil)
	getInsightsUseCase := dashboard.NewGetInsightsUseCase(snapshotRepo, aggregateCache, nil)
	getBillsUseCase := bill.NewGetBillsUseCase(snapshotRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	emiController := controller.NewEMIController(calculateEMIUseCase, listEMIsUseCase)
	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		getExpenseUseCase,
		createExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		markPaidUseCase,
		markUnpaidUseCase,
	)
	paymentModeController := controller.NewPaymentModeController(
		listPaymentModesUseCase,
		createPaymentModeUseCase,
		updatePaymentModeUseCase,
		deletePaymentModeUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)
	billController := controller.NewBillController(getBillsUseCase)
	dashboardController := controller.NewDashboardController(
		getOverviewUseCase,
		getBreakdownUseCase,
		getBudgetUsageUseCase,
		getTrendsUseCase,
		getInsightsUseCase,
	)

	r := router.NewRouter(
		healthController,
		emiController,
		expenseController,
		paymentModeController,
		budgetController,
		billController,
		dashboardController,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
