package employee

import "time"

type Employee struct {
	ID             string
	Name           string
	Email          *string
	CPFHash        string
	CPFEncrypted   *string
	PINHash        string
	Position       *string
	SectorID       *string
	Role           Role
	PhotoURL       *string
	Active         bool
	FailedAttempts int
	LockedUntil    *time.Time
	HireDate       *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	SectorName *string
}

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleHR      Role = "hr"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleHR),
	string(RoleManager),
	string(RoleStaff),
}

// HasAdminAccess reports whether the role can open the admin panel.
func (r Role) HasAdminAccess() bool {
	return r == RoleAdmin || r == RoleHR
}
