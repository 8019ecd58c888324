package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pennyflow/backend/internal/application/usecase/finance"
	domainerror "github.com/pennyflow/backend/internal/domain/error"
	"github.com/pennyflow/backend/internal/integration/entrypoint/dto"
	"github.com/pennyflow/backend/internal/integration/entrypoint/middleware"
)

// FinanceController handles transaction, budget and bill endpoints.
type FinanceController struct {
	listTransactions  *finance.ListTransactionsUseCase
	createTransaction *finance.CreateTransactionUseCase
	listBudgets       *finance.ListBudgetsUseCase
	createBudget      *finance.CreateBudgetUseCase
	listBills         *finance.ListBillsUseCase
	createBill        *finance.CreateBillUseCase
}

// NewFinanceController creates a new finance controller instance.
func NewFinanceController(
	listTransactions *finance.ListTransactionsUseCase,
	createTransaction *finance.CreateTransactionUseCase,
	listBudgets *finance.ListBudgetsUseCase,
	createBudget *finance.CreateBudgetUseCase,
	listBills *finance.ListBillsUseCase,
	createBill *finance.CreateBillUseCase,
) *FinanceController {
	return &FinanceController{
		listTransactions:  listTransactions,
		createTransaction: createTransaction,
		listBudgets:       listBudgets,
		createBudget:      createBudget,
		listBills:         listBills,
		createBill:        createBill,
	}
}

// ListTransactions handles GET /transactions requests.
func (c *FinanceController) ListTransactions(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	transactions, err := c.listTransactions.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, transaction := range transactions {
		responses = append(responses, dto.TransactionResponseFromEntity(transaction))
	}
	ctx.JSON(http.StatusOK, responses)
}

// CreateTransaction handles POST /transactions requests.
func (c *FinanceController) CreateTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	transaction, err := c.createTransaction.Execute(ctx.Request.Context(), finance.CreateTransactionInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidTransactionType) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create transaction"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.TransactionResponseFromEntity(transaction))
}

// ListBudgets handles GET /budgets requests.
func (c *FinanceController) ListBudgets(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	budgets, err := c.listBudgets.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list budgets"})
		return
	}

	responses := make([]dto.BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		responses = append(responses, dto.BudgetResponseFromEntity(budget))
	}
	ctx.JSON(http.StatusOK, responses)
}

// CreateBudget handles POST /budgets requests.
func (c *FinanceController) CreateBudget(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	budget, err := c.createBudget.Execute(ctx.Request.Context(), finance.CreateBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Limit:    req.Limit,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrNegativeBudgetLimit) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: err.Error(),
				Code:  string(domainerror.ErrCodeNegativeBudgetLimit),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create budget"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.BudgetResponseFromEntity(budget))
}

// ListBills handles GET /bills requests.
func (c *FinanceController) ListBills(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	bills, err := c.listBills.Execute(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to list bills"})
		return
	}

	responses := make([]dto.BillResponse, 0, len(bills))
	for _, bill := range bills {
		responses = append(responses, dto.BillResponseFromEntity(bill))
	}
	ctx.JSON(http.StatusOK, responses)
}

// CreateBill handles POST /bills requests.
func (c *FinanceController) CreateBill(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bill, err := c.createBill.Execute(ctx.Request.Context(), finance.CreateBillInput{
		UserID:        userID,
		Name:          req.Name,
		Amount:        req.Amount,
		DueDate:       req.DueDate,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create bill"})
		return
	}

	ctx.JSON(http.StatusCreated, dto.BillResponseFromEntity(bill))
}
