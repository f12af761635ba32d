package punch

import "time"

// Punch is a single attendance event. Rows are immutable once written;
// corrections happen through hour-bank adjustment entries, never by
// mutating punches.
type Punch struct {
	ID         string
	EmployeeID string
	DeviceID   string
	Unit       string
	Type       Type
	PunchedAt  time.Time
	Status     Status
	SelfieURL  string
	CreatedAt  time.Time
}

type Type string

const (
	TypeEntry      Type = "entry"
	TypeExit       Type = "exit"
	TypeBreakStart Type = "break_start"
	TypeBreakEnd   Type = "break_end"
)

type Status string

const (
	StatusOK         Status = "ok"
	StatusSuspicious Status = "suspicious"
	StatusAdjusted   Status = "adjusted"
	StatusPending    Status = "pending"
)

// TypeForCount classifies the next punch from the number of punches the
// employee already has today. The first four follow the standard day shape
// (entry, break start, break end, exit); beyond that the type alternates by
// parity and break semantics are not reintroduced.
func TypeForCount(count int) Type {
	switch count {
	case 0:
		return TypeEntry
	case 1:
		return TypeBreakStart
	case 2:
		return TypeBreakEnd
	case 3:
		return TypeExit
	default:
		if count%2 == 0 {
			return TypeEntry
		}
		return TypeExit
	}
}
