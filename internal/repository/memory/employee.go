// Package memory provides thread-safe in-memory repository implementations
// for package tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/opshr/workforce-automation/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

// Add seeds an employee.
func (r *EmployeeRepository) Add(e employee.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.employees[e.ID] = e
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) ListAutomationEligible(_ context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []employee.Employee
	for _, e := range r.employees {
		if e.AutomationEligible() {
			result = append(result, e)
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

func (r *EmployeeRepository) ListByRole(_ context.Context, role employee.Role) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []employee.Employee
	for _, e := range r.employees {
		if e.Role == role {
			result = append(result, e)
		}
	}
	sortByCreatedAt(result)
	return result, nil
}

func sortByCreatedAt(employees []employee.Employee) {
	sort.Slice(employees, func(i, j int) bool {
		if employees[i].CreatedAt.Equal(employees[j].CreatedAt) {
			return employees[i].ID < employees[j].ID
		}
		return employees[i].CreatedAt.Before(employees[j].CreatedAt)
	})
}
