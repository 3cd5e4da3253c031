package repositories

import "errors"

// Sentinel errors returned by repositories. Services branch on these to
// distinguish "absent" from an opaque store failure.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSaldoNotFound    = errors.New("saldo not found")
	ErrTopupNotFound    = errors.New("topup not found")
	ErrWithdrawNotFound = errors.New("withdraw not found")
	ErrTransferNotFound = errors.New("transfer not found")
	ErrDuplicateEmail   = errors.New("email already registered")
)
