package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/opshr/workforce-automation/internal/domain/attendance"
)

type attendanceKey struct {
	EmployeeID string
	Day        string // YYYY-MM-DD
}

type AttendanceRepository struct {
	mu      sync.Mutex
	records map[attendanceKey]attendance.Attendance

	// FailFor makes writes and existence checks for the given employee fail,
	// for batch-resilience tests.
	FailFor map[string]error
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[attendanceKey]attendance.Attendance),
		FailFor: make(map[string]error),
	}
}

func (r *AttendanceRepository) key(employeeID string, day time.Time) attendanceKey {
	return attendanceKey{EmployeeID: employeeID, Day: day.Format("2006-01-02")}
}

func (r *AttendanceRepository) ExistsForDate(_ context.Context, employeeID string, day time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.FailFor[employeeID]; err != nil {
		return false, err
	}
	_, ok := r.records[r.key(employeeID, day)]
	return ok, nil
}

// InsertIfAbsent mirrors the ON CONFLICT DO NOTHING semantics of the
// PostgreSQL implementation: check and insert happen under one lock.
func (r *AttendanceRepository) InsertIfAbsent(_ context.Context, record attendance.Attendance) (attendance.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.FailFor[record.EmployeeID]; err != nil {
		return "", err
	}

	k := r.key(record.EmployeeID, record.Date)
	if _, ok := r.records[k]; ok {
		return attendance.AlreadyExists, nil
	}

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.records[k] = record
	return attendance.Inserted, nil
}

// Get returns the stored record for test assertions.
func (r *AttendanceRepository) Get(employeeID string, day time.Time) (attendance.Attendance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[r.key(employeeID, day)]
	return rec, ok
}

// Count returns the number of stored records.
func (r *AttendanceRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}
