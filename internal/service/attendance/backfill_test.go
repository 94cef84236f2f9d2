package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opshr/workforce-automation/internal/domain/attendance"
	"github.com/opshr/workforce-automation/internal/domain/employee"
)

func TestBackfillRange_InvalidRange(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.BackfillRange(context.Background(), wednesday, wednesday.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, attendance.ErrInvalidRange)
}

func TestBackfillRange_SingleDay(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", employee.RoleEmployee, wednesday.AddDate(-1, 0, 0))

	summaries, err := env.svc.BackfillRange(context.Background(), wednesday, wednesday)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Processed)
}

func TestBackfillRange_SpansWeekend(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", employee.RoleEmployee, wednesday.AddDate(-1, 0, 0))
	ctx := context.Background()

	// Wednesday 2024-06-12 through Monday 2024-06-17.
	monday := saturday.AddDate(0, 0, 2)
	summaries, err := env.svc.BackfillRange(ctx, wednesday, monday)
	require.NoError(t, err)
	require.Len(t, summaries, 6)

	processed := 0
	for _, s := range summaries {
		processed += s.Processed
	}
	assert.Equal(t, 4, processed, "records only for the four weekdays")
	assert.Equal(t, 4, env.attendances.Count())

	_, ok := env.attendances.Get("emp-1", saturday)
	assert.False(t, ok)
	_, ok = env.attendances.Get("emp-1", sunday)
	assert.False(t, ok)
}

func TestBackfillRange_CancelledContext(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", employee.RoleEmployee, wednesday.AddDate(-1, 0, 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summaries, err := env.svc.BackfillRange(ctx, wednesday, wednesday.AddDate(0, 0, 10))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, summaries)
}

func TestBackfillAllHistorical_FromHireDateThroughYesterday(t *testing.T) {
	env := newTestEnv()
	yesterday := normalizeDay(time.Now().UTC()).AddDate(0, 0, -1)
	hired := yesterday.AddDate(0, 0, -6)
	env.addEmployee("emp-1", employee.RoleEmployee, hired)
	ctx := context.Background()

	wantWorking := 0
	for day := hired; !day.After(yesterday); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
			wantWorking++
		}
	}

	result, err := env.svc.BackfillAllHistorical(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalEmployees)
	assert.Equal(t, wantWorking, result.TotalProcessed)
	require.Len(t, result.PerEmployee, 1)
	assert.Equal(t, hired, result.PerEmployee[0].From)
	assert.Equal(t, yesterday, result.PerEmployee[0].To)

	// The day before the hire date and the still-running current day stay
	// untouched.
	_, ok := env.attendances.Get("emp-1", hired.AddDate(0, 0, -1))
	assert.False(t, ok)
	_, ok = env.attendances.Get("emp-1", yesterday.AddDate(0, 0, 1))
	assert.False(t, ok)
}

func TestBackfillAllHistorical_Rerun(t *testing.T) {
	env := newTestEnv()
	yesterday := normalizeDay(time.Now().UTC()).AddDate(0, 0, -1)
	env.addEmployee("emp-1", employee.RoleEmployee, yesterday.AddDate(0, 0, -6))
	ctx := context.Background()

	first, err := env.svc.BackfillAllHistorical(ctx)
	require.NoError(t, err)

	second, err := env.svc.BackfillAllHistorical(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, second.TotalProcessed)
	assert.Equal(t, first.TotalProcessed, second.TotalAlreadyExists)
}

func TestBackfillAllHistorical_HiredToday(t *testing.T) {
	env := newTestEnv()
	env.addEmployee("emp-1", employee.RoleEmployee, normalizeDay(time.Now().UTC()))

	result, err := env.svc.BackfillAllHistorical(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.TotalProcessed)
	assert.Equal(t, 0, env.attendances.Count())
}
