package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FullName   string
	Email      string
	Role       Role
	Department string
	BaseSalary *decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// AutomationEligible reports whether attendance automation processes this
// employee. Administrators are never auto-marked.
func (e Employee) AutomationEligible() bool {
	return e.Role == RoleEmployee || e.Role == RoleManager
}

// EmployedOn reports whether the employee was already employed on the given
// calendar day. CreatedAt is the earliest date eligible for automation.
func (e Employee) EmployedOn(day time.Time) bool {
	hired := time.Date(e.CreatedAt.Year(), e.CreatedAt.Month(), e.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(hired)
}
