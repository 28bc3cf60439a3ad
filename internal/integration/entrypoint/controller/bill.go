package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/bill"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// BillController handles the per-payment-mode bill settlement view.
type BillController struct {
	getBillsUseCase *bill.GetBillsUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(getBillsUseCase *bill.GetBillsUseCase) *BillController {
	return &BillController{
		getBillsUseCase: getBillsUseCase,
	}
}

// List handles GET /bills requests. Year and month default to the current
// calendar month.
func (c *BillController) List(ctx *gin.Context) {
	now := time.Now()
	input := bill.GetBillsInput{
		Year:  now.Year(),
		Month: int(now.Month()),
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year",
				Code:  string(domainerror.ErrCodeInvalidBillYear),
			})
			return
		}
		input.Year = year
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid month",
				Code:  string(domainerror.ErrCodeInvalidBillMonth),
			})
			return
		}
		input.Month = month
	}

	output, err := c.getBillsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleBillError maps bill error codes to HTTP status codes.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
