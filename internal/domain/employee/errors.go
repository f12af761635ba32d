package employee

import (
	"errors"
	"fmt"
)

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCPFHashExists    = errors.New("an employee with this CPF is already registered")
	ErrAccountLocked    = errors.New("account temporarily locked")
)

// AccountLockedError carries the remaining lock time so the kiosk can show
// an estimate. errors.Is(err, ErrAccountLocked) matches it.
type AccountLockedError struct {
	RemainingMinutes int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked, try again in %d minutes", e.RemainingMinutes)
}

func (e *AccountLockedError) Is(target error) bool {
	return target == ErrAccountLocked
}
