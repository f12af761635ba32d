package timesheet

type TimesheetResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	WorkDate        string  `json:"work_date"`
	FirstPunchAt    *string `json:"first_punch_at,omitempty"`
	LastPunchAt     *string `json:"last_punch_at,omitempty"`
	WorkedMinutes   int     `json:"worked_minutes"`
	BreakMinutes    int     `json:"break_minutes"`
	ExpectedMinutes int     `json:"expected_minutes"`
	BalanceMinutes  int     `json:"balance_minutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
}
