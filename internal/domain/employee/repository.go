package employee

import "context"

type EmployeeRepository interface {
	// GetByID returns a single employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListAutomationEligible returns employees with role employee or manager,
	// ordered by creation date.
	ListAutomationEligible(ctx context.Context) ([]Employee, error)

	// ListByRole returns all employees holding the given role.
	ListByRole(ctx context.Context, role Role) ([]Employee, error)
}
