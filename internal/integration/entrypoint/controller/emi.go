package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/usecase/emi"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// EMIController handles EMI calculation and listing endpoints.
type EMIController struct {
	calculateUseCase *emi.CalculateEMIUseCase
	listUseCase      *emi.ListEMIsUseCase
}

// NewEMIController creates a new EMI controller instance.
func NewEMIController(
	calculateUseCase *emi.CalculateEMIUseCase,
	listUseCase *emi.ListEMIsUseCase,
) *EMIController {
	return &EMIController{
		calculateUseCase: calculateUseCase,
		listUseCase:      listUseCase,
	}
}

// Calculate handles POST /emi/calculate requests.
func (c *EMIController) Calculate(ctx *gin.Context) {
	var req dto.CalculateEMIRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := emi.CalculateEMIInput{
		Principal:          decimal.NewFromFloat(req.Principal),
		TenureMonths:       req.TenureMonths,
		AnnualInterestRate: decimal.NewFromFloat(req.AnnualInterestRate),
		ProcessingFee:      decimal.NewFromFloat(req.ProcessingFee),
		GSTRate:            decimal.NewFromFloat(req.GSTRate),
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEMIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalculateEMIResponse(output))
}

// List handles GET /emis requests.
func (c *EMIController) List(ctx *gin.Context) {
	input := emi.ListEMIsInput{Page: 1, Limit: 50}
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

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve EMIs",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEMIListResponse(output))
}

// handleEMIError maps EMI error codes to HTTP status codes.
func (c *EMIController) handleEMIError(ctx *gin.Context, err error) {
	var emiErr *domainerror.EMIError
	if errors.As(err, &emiErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: emiErr.Message,
			Code:  string(emiErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
