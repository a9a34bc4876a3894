package domain

import "errors"

// Ошибки слоя репозитория.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
)

// Бизнес-ошибки. Замкнутый набор: сервисы не возвращают ничего, кроме
// перечисленного здесь (плюс обертки через %w).
var (
	ErrCardNotFound        = errors.New("credit card not found")
	ErrItemsInvalid        = errors.New("items are not valid")
	ErrQuantityInvalid     = errors.New("item quantity is out of range")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPaymentInvalid      = errors.New("payment amount is not valid")
	ErrNoPaymentRequired   = errors.New("no payment is required")
	ErrOwnershipMismatch   = errors.New("resource belongs to another customer")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrCommitFailed единственная ошибка, возникающая посреди операции записи.
	// Всегда сопровождается откатом транзакции целиком.
	ErrCommitFailed = errors.New("commit failed")

	ErrEmailTaken        = errors.New("email already in use")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrCustomerInactive  = errors.New("customer account is deactivated")
	ErrCustomerInvalid   = errors.New("customer data is not valid")
)
