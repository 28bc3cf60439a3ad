package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	overviewUseCase  *dashboard.GetOverviewUseCase
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase
	usageUseCase     *dashboard.GetBudgetUsageUseCase
	trendsUseCase    *dashboard.GetExpenseTrendsUseCase
	insightsUseCase  *dashboard.GetInsightsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	overviewUseCase *dashboard.GetOverviewUseCase,
	breakdownUseCase *dashboard.GetCategoryBreakdownUseCase,
	usageUseCase *dashboard.GetBudgetUsageUseCase,
	trendsUseCase *dashboard.GetExpenseTrendsUseCase,
	insightsUseCase *dashboard.GetInsightsUseCase,
) *DashboardController {
	return &DashboardController{
		overviewUseCase:  overviewUseCase,
		breakdownUseCase: breakdownUseCase,
		usageUseCase:     usageUseCase,
		trendsUseCase:    trendsUseCase,
		insightsUseCase:  insightsUseCase,
	}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	output, err := c.overviewUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err, "Failed to compute overview")
		return
	}
	ctx.JSON(http.StatusOK, output)
}

// CategoryBreakdown handles GET /dashboard/category-breakdown requests.
func (c *DashboardController) CategoryBreakdown(ctx *gin.Context) {
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err, "Failed to compute category breakdown")
		return
	}
	ctx.JSON(http.StatusOK, output)
}

// BudgetUsage handles GET /dashboard/budget-usage requests.
func (c *DashboardController) BudgetUsage(ctx *gin.Context) {
	output, err := c.usageUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err, "Failed to compute budget usage")
		return
	}
	ctx.JSON(http.StatusOK, output)
}

// Trends handles GET /dashboard/trends requests.
func (c *DashboardController) Trends(ctx *gin.Context) {
	output, err := c.trendsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err, "Failed to compute expense trends")
		return
	}
	ctx.JSON(http.StatusOK, output)
}

// Insights handles GET /dashboard/insights requests.
func (c *DashboardController) Insights(ctx *gin.Context) {
	output, err := c.insightsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleDashboardError(ctx, err, "Failed to compute insights")
		return
	}
	ctx.JSON(http.StatusOK, output)
}

func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error, message string) {
	slog.Error(message, "error", err, "path", ctx.FullPath())
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: message,
	})
}
