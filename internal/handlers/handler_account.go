package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brisabank/bank_ledger_app/internal/apperrors"
	"github.com/brisabank/bank_ledger_app/internal/core/domain"
	portssvc "github.com/brisabank/bank_ledger_app/internal/core/ports/services"
	"github.com/brisabank/bank_ledger_app/internal/dto"
	"github.com/brisabank/bank_ledger_app/internal/middleware"
	"github.com/brisabank/bank_ledger_app/internal/utils/money"
)

// accountHandler handles HTTP requests related to accounts, including the
// deposit/withdraw operations and statement generation.
type accountHandler struct {
	accountService   portssvc.AccountSvcFacade
	ledgerService    portssvc.LedgerSvcFacade
	statementService portssvc.StatementSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, ls portssvc.LedgerSvcFacade, ss portssvc.StatementSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:   as,
		ledgerService:    ls,
		statementService: ss,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, ledgerService portssvc.LedgerSvcFacade, statementService portssvc.StatementSvcFacade) {
	h := newAccountHandler(accountService, ledgerService, statementService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountNumber", h.getAccount)
		accounts.POST("/:accountNumber/deposits", h.deposit)
		accounts.POST("/:accountNumber/withdrawals", h.withdraw)
		accounts.GET("/:accountNumber/statement", h.statement)
	}
}

// accountNumberParam parses the path account number; a non-numeric value is
// reported as 400 and ok=false.
func accountNumberParam(c *gin.Context) (int64, bool) {
	number, err := strconv.ParseInt(c.Param("accountNumber"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account number"})
		return 0, false
	}
	return number, true
}

// listAccounts godoc
// @Summary List all accounts
// @Description Returns the read-only listing view of every account
// @Tags accounts
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	summaries, err := h.accountService.ListAccountSummaries(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list account summaries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	responses := make([]dto.AccountSummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = dto.ToAccountSummaryResponse(s)
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: responses})
}

// getAccount godoc
// @Summary Get an account by number
// @Tags accounts
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountNumber} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccount(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deposit godoc
// @Summary Deposit into an account
// @Description Credits the amount and records a deposit transaction
// @Tags ledger
// @Accept json
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param movement body dto.MovementRequest true "Amount to deposit"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Rejected by a ledger rule"
// @Router /accounts/{accountNumber}/deposits [post]
func (h *accountHandler) deposit(c *gin.Context) {
	h.movement(c, h.ledgerService.Deposit)
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Debits the amount and records a withdrawal transaction
// @Tags ledger
// @Accept json
// @Produce json
// @Param accountNumber path int true "Account number"
// @Param movement body dto.MovementRequest true "Amount to withdraw"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Rejected by a ledger rule"
// @Router /accounts/{accountNumber}/withdrawals [post]
func (h *accountHandler) withdraw(c *gin.Context) {
	h.movement(c, h.ledgerService.Withdraw)
}

// movement is the shared deposit/withdraw flow: parse the amount at the
// boundary, run the ledger operation, map rule rejections to 422.
func (h *accountHandler) movement(c *gin.Context, op func(ctx context.Context, accountNumber int64, amount decimal.Decimal) (*domain.Transaction, decimal.Decimal, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for movement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := money.ParseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, balance, err := op(c.Request.Context(), number, amount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		if kind, rejected := ruleKind(err); rejected {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "kind": kind})
			return
		}
		logger.Error("Ledger operation failed", slog.String("error", err.Error()), slog.Int64("account_number", number))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn, balance))
}

// ruleKind maps a ledger rule rejection to its wire identifier.
func ruleKind(err error) (string, bool) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return "INVALID_AMOUNT", true
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS", true
	case errors.Is(err, apperrors.ErrWithdrawalCapExceeded):
		return "WITHDRAWAL_CAP_EXCEEDED", true
	case errors.Is(err, apperrors.ErrWithdrawalCountExceeded):
		return "WITHDRAWAL_COUNT_EXCEEDED", true
	case errors.Is(err, apperrors.ErrDailyDepositCapExceeded):
		return "DAILY_DEPOSIT_CAP_EXCEEDED", true
	}
	return "", false
}

// statement godoc
// @Summary Generate an account statement
// @Description Returns deposits and withdrawals ordered by timestamp plus the net balance
// @Tags accounts
// @Produce json
// @Param accountNumber path int true "Account number"
// @Success 200 {object} dto.StatementResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /accounts/{accountNumber}/statement [get]
func (h *accountHandler) statement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number, ok := accountNumberParam(c)
	if !ok {
		return
	}

	st, err := h.statementService.Statement(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to generate statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate statement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(st))
}
