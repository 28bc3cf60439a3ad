package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/application/usecase/payment"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints, including the paid/unpaid
// lifecycle.
type ExpenseController struct {
	listUseCase       *expense.ListExpensesUseCase
	getUseCase        *expense.GetExpenseUseCase
	createUseCase     *expense.CreateExpenseUseCase
	updateUseCase     *expense.UpdateExpenseUseCase
	deleteUseCase     *expense.DeleteExpenseUseCase
	markPaidUseCase   *payment.MarkPaidUseCase
	markUnpaidUseCase *payment.MarkUnpaidUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	markPaidUseCase *payment.MarkPaidUseCase,
	markUnpaidUseCase *payment.MarkUnpaidUseCase,
) *ExpenseController {
	return &ExpenseController{
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		createUseCase:     createUseCase,
		updateUseCase:     updateUseCase,
		deleteUseCase:     deleteUseCase,
		markPaidUseCase:   markPaidUseCase,
		markUnpaidUseCase: markUnpaidUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	var input expense.ListExpensesInput

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			input.EndDate = &endDate
		}
	}
	if categoryStr := ctx.Query("category"); categoryStr != "" {
		input.Category = &categoryStr
	}
	if modeIDStr := ctx.Query("payment_mode_id"); modeIDStr != "" {
		if modeID, err := uuid.Parse(modeIDStr); err == nil {
			input.PaymentModeID = &modeID
		}
	}
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(result))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, ok := c.parseExpenseID(ctx)
	if !ok {
		return
	}

	result, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(result))
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	modeID, err := uuid.Parse(req.PaymentModeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment mode ID format",
		})
		return
	}

	input := expense.CreateExpenseInput{
		Title:         req.Title,
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      req.Category,
		Date:          date,
		Description:   req.Description,
		PaymentModeID: modeID,
		EMI:           toEMITermsInput(req.EMI),
	}

	result, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(result))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, ok := c.parseExpenseID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingExpenseFields),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidExpenseDate),
		})
		return
	}

	modeID, err := uuid.Parse(req.PaymentModeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment mode ID format",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:     id,
		Title:         req.Title,
		Amount:        decimal.NewFromFloat(req.Amount),
		Category:      req.Category,
		Date:          date,
		Description:   req.Description,
		PaymentModeID: modeID,
		EMI:           toEMITermsInput(req.EMI),
	}

	result, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(result))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, ok := c.parseExpenseID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// MarkPaid handles POST /expenses/:id/mark-paid requests.
func (c *ExpenseController) MarkPaid(ctx *gin.Context) {
	id, ok := c.parseExpenseID(ctx)
	if !ok {
		return
	}

	var req dto.MarkPaidRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	input := payment.MarkPaidInput{ExpenseID: id}
	if req.PaidAmount != nil {
		amount := decimal.NewFromFloat(*req.PaidAmount)
		input.PaidAmount = &amount
	}
	if req.PaidDate != nil {
		paidDate, err := time.Parse("2006-01-02", *req.PaidDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid paid date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaidDate = &paidDate
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseStateResponse(output))
}

// MarkUnpaid handles POST /expenses/:id/mark-unpaid requests.
func (c *ExpenseController) MarkUnpaid(ctx *gin.Context) {
	id, ok := c.parseExpenseID(ctx)
	if !ok {
		return
	}

	output, err := c.markUnpaidUseCase.Execute(ctx.Request.Context(), payment.MarkUnpaidInput{ExpenseID: id})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseStateResponse(output))
}

func (c *ExpenseController) parseExpenseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func toEMITermsInput(req *dto.EMITermsRequest) *expense.EMITermsInput {
	if req == nil {
		return nil
	}
	return &expense.EMITermsInput{
		TenureMonths:       req.TenureMonths,
		AnnualInterestRate: decimal.NewFromFloat(req.AnnualInterestRate),
		ProcessingFee:      decimal.NewFromFloat(req.ProcessingFee),
		GSTRate:            decimal.NewFromFloat(req.GSTRate),
	}
}

// handleExpenseError maps domain errors raised by expense operations to HTTP
// status codes.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	var emiErr *domainerror.EMIError
	if errors.As(err, &emiErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: emiErr.Message,
			Code:  string(emiErr.Code),
		})
		return
	}

	var modeErr *domainerror.PaymentModeError
	if errors.As(err, &modeErr) {
		status := http.StatusBadRequest
		if modeErr.Code == domainerror.ErrCodePaymentModeNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: modeErr.Message,
			Code:  string(modeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeExpenseConflict:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseCategory,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidPaidAmount,
		domainerror.ErrCodeExpenseTitleRequired,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
