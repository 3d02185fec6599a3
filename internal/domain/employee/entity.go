package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee entity
type Employee struct {
	ID         string
	HatcheryID string

	Name       string
	Email      string
	Phone      string
	Position   string
	Department string
	BaseSalary decimal.Decimal

	EmergencyContactName  *string
	EmergencyContactPhone *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
