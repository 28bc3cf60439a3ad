package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/paymentmode"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// PaymentModeController handles payment mode endpoints.
type PaymentModeController struct {
	listUseCase   *paymentmode.ListPaymentModesUseCase
	createUseCase *paymentmode.CreatePaymentModeUseCase
	updateUseCase *paymentmode.UpdatePaymentModeUseCase
	deleteUseCase *paymentmode.DeletePaymentModeUseCase
}

// NewPaymentModeController creates a new payment mode controller instance.
func NewPaymentModeController(
	listUseCase *paymentmode.ListPaymentModesUseCase,
	createUseCase *paymentmode.CreatePaymentModeUseCase,
	updateUseCase *paymentmode.UpdatePaymentModeUseCase,
	deleteUseCase *paymentmode.DeletePaymentModeUseCase,
) *PaymentModeController {
	return &PaymentModeController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /payment-modes requests.
func (c *PaymentModeController) List(ctx *gin.Context) {
	modes, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve payment modes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentModeListResponse(modes))
}

// Create handles POST /payment-modes requests.
func (c *PaymentModeController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentModeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := paymentmode.CreatePaymentModeInput{
		Name:  req.Name,
		Type:  req.Type,
		Icon:  req.Icon,
		Color: req.Color,
	}

	mode, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentModeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentModeResponse(mode))
}

// Update handles PUT /payment-modes/:id requests.
func (c *PaymentModeController) Update(ctx *gin.Context) {
	id, ok := c.parsePaymentModeID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePaymentModeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := paymentmode.UpdatePaymentModeInput{
		ID:    id,
		Name:  req.Name,
		Type:  req.Type,
		Icon:  req.Icon,
		Color: req.Color,
	}

	mode, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePaymentModeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentModeResponse(mode))
}

// Delete handles DELETE /payment-modes/:id requests.
func (c *PaymentModeController) Delete(ctx *gin.Context) {
	id, ok := c.parsePaymentModeID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handlePaymentModeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *PaymentModeController) parsePaymentModeID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment mode ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handlePaymentModeError maps payment mode error codes to HTTP status codes.
func (c *PaymentModeController) handlePaymentModeError(ctx *gin.Context, err error) {
	var modeErr *domainerror.PaymentModeError
	if errors.As(err, &modeErr) {
		ctx.JSON(c.getStatusCodeForPaymentModeError(modeErr.Code), dto.ErrorResponse{
			Error: modeErr.Message,
			Code:  string(modeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPaymentModeError maps payment mode error codes to HTTP status codes.
func (c *PaymentModeController) getStatusCodeForPaymentModeError(code domainerror.PaymentModeErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentModeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePaymentModeNameTaken,
		domainerror.ErrCodePaymentModeInUse:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPaymentModeType,
		domainerror.ErrCodePaymentModeNameRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
