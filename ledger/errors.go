package ledger

import "errors"

var (
	// Lifecycle errors
	ErrNotInitialized     = errors.New("ledger: not initialized")
	ErrAlreadyInitialized = errors.New("ledger: already initialized")

	// Access control errors
	ErrUnauthorized = errors.New("ledger: unauthorized account")
	ErrPaused       = errors.New("ledger: ledger is paused")
	ErrBlocked      = errors.New("ledger: account is blocked")
	ErrFrozen       = errors.New("ledger: account is frozen")

	// Bookkeeping errors
	ErrInsufficientBalance   = errors.New("ledger: insufficient balance")
	ErrInsufficientAllowance = errors.New("ledger: insufficient allowance")
	ErrSupplyOverflow        = errors.New("ledger: supply overflow")

	// Audit errors
	ErrSupplyMismatch = errors.New("ledger: supply does not match balance sum")
)
