package attendance

import "time"

// Outcome describes what happened for a single (employee, day) marking pass.
type Outcome string

const (
	OutcomeCreated               Outcome = "created"
	OutcomeAlreadyExists         Outcome = "already_exists"
	OutcomeSkippedNotYetEmployed Outcome = "skipped_not_yet_employed"
	OutcomeSkippedNonWorkingDay  Outcome = "skipped_non_working_day"
	OutcomeSkippedOnLeave        Outcome = "skipped_on_leave"
	OutcomeFailed                Outcome = "failed"
)

// InsertResult is the tagged result of the atomic insert-if-absent primitive.
type InsertResult string

const (
	Inserted      InsertResult = "inserted"
	AlreadyExists InsertResult = "already_exists"
)

// DaySummary tallies one MarkAllForDate run.
type DaySummary struct {
	Date           time.Time `json:"date"`
	TotalEmployees int       `json:"total_employees"`
	Processed      int       `json:"processed"`
	Skipped        int       `json:"skipped"`
	AlreadyExists  int       `json:"already_exists"`
}

// EmployeeBackfillSummary tallies one employee's full-history backfill.
type EmployeeBackfillSummary struct {
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	From          time.Time `json:"from"`
	To            time.Time `json:"to"`
	Processed     int       `json:"processed"`
	Skipped       int       `json:"skipped"`
	AlreadyExists int       `json:"already_exists"`
}

// HistoricalSummary aggregates a BackfillAllHistorical run.
type HistoricalSummary struct {
	TotalEmployees     int                       `json:"total_employees"`
	TotalProcessed     int                       `json:"total_processed"`
	TotalSkipped       int                       `json:"total_skipped"`
	TotalAlreadyExists int                       `json:"total_already_exists"`
	PerEmployee        []EmployeeBackfillSummary `json:"per_employee"`
}
