// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	emiController         *controller.EMIController
	expenseController     *controller.ExpenseController
	paymentModeController *controller.PaymentModeController
	budgetController      *controller.BudgetController
	billController        *controller.BillController
	dashboardController   *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	emiController *controller.EMIController,
	expenseController *controller.ExpenseController,
	paymentModeController *controller.PaymentModeController,
	budgetController *controller.BudgetController,
	billController *controller.BillController,
	dashboardController *controller.DashboardController,
) *Router {
	return &Router{
		healthController:      healthController,
		emiController:         emiController,
		expenseController:     expenseController,
		paymentModeController: paymentModeController,
		budgetController:      budgetController,
		billController:        billController,
		dashboardController:   dashboardController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.emiController != nil {
			v1.POST("/emi/calculate", r.emiController.Calculate)
			v1.GET("/emis", r.emiController.List)
		}

		if r.expenseController != nil {
			expenses := v1.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PUT("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
				expenses.POST("/:id/mark-paid", r.expenseController.MarkPaid)
				expenses.POST("/:id/mark-unpaid", r.expenseController.MarkUnpaid)
			}
		}

		if r.paymentModeController != nil {
			modes := v1.Group("/payment-modes")
			{
				modes.GET("", r.paymentModeController.List)
				modes.POST("", r.paymentModeController.Create)
				modes.PUT("/:id", r.paymentModeController.Update)
				modes.DELETE("/:id", r.paymentModeController.Delete)
			}
		}

		if r.budgetController != nil {
			budgets := v1.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.POST("", r.budgetController.Create)
				budgets.PUT("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		if r.billController != nil {
			v1.GET("/bills", r.billController.List)
		}

		if r.dashboardController != nil {
			dashboard := v1.Group("/dashboard")
			{
				dashboard.GET("/overview", r.dashboardController.Overview)
				dashboard.GET("/category-breakdown", r.dashboardController.CategoryBreakdown)
				dashboard.GET("/budget-usage", r.dashboardController.BudgetUsage)
				dashboard.GET("/trends", r.dashboardController.Trends)
				dashboard.GET("/insights", r.dashboardController.Insights)
			}
		}
	}
}
