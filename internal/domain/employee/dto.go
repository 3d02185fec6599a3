package employee

// CreateEmployeeRequest - payload for registering an employee
type CreateEmployeeRequest struct {
	HatcheryID            string  `json:"hatchery_id"`
	Name                  string  `json:"name"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	Position              string  `json:"position"`
	Department            string  `json:"department"`
	BaseSalary            string  `json:"base_salary"`
	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`
}
