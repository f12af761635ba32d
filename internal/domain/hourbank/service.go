package hourbank

import (
	"context"
	"time"
)

// HourBankService manages the compensatory-time ledger and its aggregate.
type HourBankService interface {
	// PostAutomatic replaces the automatic entry for (employee, refDate)
	// with the given signed minutes, then recomputes the balance
	PostAutomatic(ctx context.Context, employeeID string, refDate time.Time, minutes int) error

	// RecomputeBalance rebuilds the employee's aggregate from scratch over
	// all approved entries
	RecomputeBalance(ctx context.Context, employeeID string) (Balance, error)

	// CreateManualEntry inserts a pending manual adjustment
	CreateManualEntry(ctx context.Context, req CreateManualEntryRequest, createdBy string) (LedgerEntryResponse, error)

	// Approve marks a pending manual entry approved and recomputes the
	// balance
	Approve(ctx context.Context, entryID string, approvedBy string) (LedgerEntryResponse, error)

	// Reject marks a pending manual entry rejected and recomputes the
	// balance
	Reject(ctx context.Context, entryID string, approvedBy string) (LedgerEntryResponse, error)

	// ListLedger returns ledger entries, all or for one employee
	ListLedger(ctx context.Context, employeeID string) ([]LedgerEntryResponse, error)

	// GetBalance returns the employee's current aggregate (zero when never
	// computed)
	GetBalance(ctx context.Context, employeeID string) (BalanceResponse, error)

	// ListBalances returns all employee balances (admin view)
	ListBalances(ctx context.Context) ([]BalanceResponse, error)
}
