package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInsufficientFunds = 4001
	CodeInvalidAmount     = 4002
	CodeInvalidUserID     = 4003
	CodeInvalidName       = 4004
	CodeUserNotFound      = 4040
	CodeItemNotFound      = 4041
	CodeQuestNotFound     = 4042
	CodeMemberNotFound    = 4043
	CodePurchaseInFlight  = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStore          = 5030
)

// Base error types
var (
	// ErrInsufficientFunds is returned when a wallet cannot cover a deduction
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidAmount is returned when a grant or price amount is not acceptable
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidExternalID is returned when the external identity string is empty
	ErrInvalidExternalID = errors.New("external id cannot be empty")

	// ErrInvalidName is returned when a catalog name or title is blank
	ErrInvalidName = errors.New("name cannot be empty")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrWalletNotFound is returned when a user exists without a wallet row
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrItemNotFound is returned when the requested item doesn't exist
	ErrItemNotFound = errors.New("item not found")

	// ErrQuestNotFound is returned when the requested quest doesn't exist
	ErrQuestNotFound = errors.New("quest not found")

	// ErrMemberNotFound is returned when a trigger target cannot be resolved
	// against the member roster
	ErrMemberNotFound = errors.New("member not found in roster")

	// ErrPurchaseInFlight is returned when a purchase for the same
	// (user, item) pair is already being processed
	ErrPurchaseInFlight = errors.New("purchase already in flight")

	// ErrDuplicateUser is returned when an insert races another creator
	// for the same external identity
	ErrDuplicateUser = errors.New("user already exists")

	// ErrNotEnoughItems is returned when a redemption needs more of an item
	// than the user holds
	ErrNotEnoughItems = errors.New("not enough items to redeem")

	// ErrStoreUnavailable is returned when the ledger store fails for reasons
	// other than a domain condition
	ErrStoreUnavailable = errors.New("ledger store unavailable")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidExternalID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidName):
		return CodeInvalidName
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrWalletNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrItemNotFound), errors.Is(err, ErrNotEnoughItems):
		return CodeItemNotFound
	case errors.Is(err, ErrQuestNotFound):
		return CodeQuestNotFound
	case errors.Is(err, ErrMemberNotFound):
		return CodeMemberNotFound
	case errors.Is(err, ErrPurchaseInFlight):
		return CodePurchaseInFlight
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStore
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected deduction
type InsufficientFundsError struct {
	UserID  uint64
	Amount  int64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %d, available %d",
		e.UserID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, amount, balance int64) error {
	return &InsufficientFundsError{
		UserID:  userID,
		Amount:  amount,
		Balance: balance,
	}
}

// PurchaseInFlightError reports a purchase rejected because the same
// (user, item) key is already being processed
type PurchaseInFlightError struct {
	UserID uint64
	ItemID uint64
}

// Error implements the error interface
func (e *PurchaseInFlightError) Error() string {
	return fmt.Sprintf("purchase in flight for user %d, item %d", e.UserID, e.ItemID)
}

// Is checks if the target error is an ErrPurchaseInFlight
func (e *PurchaseInFlightError) Is(target error) bool {
	return target == ErrPurchaseInFlight
}

// LogFields returns a map of fields for structured logging
func (e *PurchaseInFlightError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "purchase_in_flight",
		"user_id":    e.UserID,
		"item_id":    e.ItemID,
		"error_code": CodePurchaseInFlight,
	}
}

// StoreError wraps an underlying persistence failure with operation context.
// Side effects performed before the failure are not rolled back.
type StoreError struct {
	Operation string
	Key       string
	Err       error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %q failed for key %s: %v", e.Operation, e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrStoreUnavailable
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *StoreError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "store_error",
		"operation":  e.Operation,
		"key":        e.Key,
		"error":      e.Err.Error(),
		"error_code": CodeStore,
	}
}

// NewStoreError creates a StoreError carrying the failed operation and key
func NewStoreError(operation, key string, err error) error {
	return &StoreError{Operation: operation, Key: key, Err: err}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsPurchaseInFlightError checks if the error is a concurrent-purchase rejection
func IsPurchaseInFlightError(err error) bool {
	return errors.Is(err, ErrPurchaseInFlight)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrWalletNotFound) ||
		errors.Is(err, ErrItemNotFound) ||
		errors.Is(err, ErrQuestNotFound) ||
		errors.Is(err, ErrMemberNotFound)
}

// IsStoreError checks if the error is an infrastructure-level store failure
func IsStoreError(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
