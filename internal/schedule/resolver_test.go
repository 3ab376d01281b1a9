package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-lavrov/RS-SchedulerService/internal/domain"
)

func weeklyTemplate() *domain.ScheduleTemplate {
	return &domain.ScheduleTemplate{
		ID:         "sched_001",
		EmployeeID: "emp_001",
		Type:       domain.ScheduleTemplateTypeWeekly,
		IsActive:   true,
		Data: domain.TemplateData{
			QuickSchedule: domain.QuickSchedule{
				MondayToFriday: domain.DayRule{
					Working: true,
					Start:   "09:00",
					End:     "18:00",
					Break:   &domain.BreakRange{Start: "12:00", End: "13:00"},
				},
				Saturday: domain.DayRule{
					Working: true,
					Start:   "10:00",
					End:     "15:00",
				},
				Sunday: domain.DayRule{Working: false},
			},
		},
	}
}

func TestResolveWorkWindow(t *testing.T) {
	tpl := weeklyTemplate()

	t.Run("weekday uses monday to friday rule", func(t *testing.T) {
		// 2026-04-15 - среда
		window, working := ResolveWorkWindow(tpl, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))
		require.True(t, working)
		require.NotNil(t, window)
		assert.Equal(t, "09:00", window.Start.String())
		assert.Equal(t, "18:00", window.End.String())
		require.NotNil(t, window.Break)
		assert.Equal(t, "12:00-13:00", window.Break.String())
	})

	t.Run("saturday uses saturday rule", func(t *testing.T) {
		// 2026-04-18 - суббота
		window, working := ResolveWorkWindow(tpl, time.Date(2026, 4, 18, 0, 0, 0, 0, time.UTC))
		require.True(t, working)
		assert.Equal(t, "10:00", window.Start.String())
		assert.Equal(t, "15:00", window.End.String())
		assert.Nil(t, window.Break)
	})

	t.Run("sunday is not working", func(t *testing.T) {
		// 2026-04-19 - воскресенье
		window, working := ResolveWorkWindow(tpl, time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC))
		assert.False(t, working)
		assert.Nil(t, window)
	})

	t.Run("nil template means not working", func(t *testing.T) {
		window, working := ResolveWorkWindow(nil, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))
		assert.False(t, working)
		assert.Nil(t, window)
	})

	t.Run("inactive template means not working", func(t *testing.T) {
		inactive := weeklyTemplate()
		inactive.IsActive = false
		window, working := ResolveWorkWindow(inactive, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC))
		assert.False(t, working)
		assert.Nil(t, window)
	})
}
