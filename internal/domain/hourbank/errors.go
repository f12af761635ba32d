package hourbank

import "errors"

// Hour-bank domain errors
var (
	ErrEntryNotFound        = errors.New("hour bank ledger entry not found")
	ErrEntryNotPending      = errors.New("ledger entry has already been approved or rejected")
	ErrAutomaticEntryFrozen = errors.New("automatic ledger entries cannot be modified manually")
)
