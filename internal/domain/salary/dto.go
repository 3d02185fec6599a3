package salary

// PaySalaryRequest - admin action paying one employee for one period.
// Monetary fields arrive as decimal strings.
type PaySalaryRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	Amount      string  `json:"amount"`
	Bonus       string  `json:"bonus,omitempty"`
	Deductions  string  `json:"deductions,omitempty"`
	PaymentDate string  `json:"payment_date"`
	Notes       *string `json:"notes,omitempty"`
}
