package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Ledger rule rejections. All of them are recoverable: the operation is
// refused and account state is left untouched.
var (
	// ErrInvalidAmount rejects deposits and withdrawals of zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds rejects withdrawals larger than the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalCapExceeded rejects a single withdrawal above the checking-account limit.
	ErrWithdrawalCapExceeded = errors.New("withdrawal amount exceeds the per-withdrawal limit")

	// ErrWithdrawalCountExceeded rejects a withdrawal once the account has used up
	// its allowed number of withdrawals.
	ErrWithdrawalCountExceeded = errors.New("withdrawal count limit reached")

	// ErrDailyDepositCapExceeded rejects a deposit that would push the calendar-day
	// deposit total above the checking-account limit.
	ErrDailyDepositCapExceeded = errors.New("daily deposit limit exceeded")
)

// ErrNoAccountsForClient indicates that a resolved client owns no accounts,
// so there is no account to operate on.
var ErrNoAccountsForClient = errors.New("client has no accounts")
