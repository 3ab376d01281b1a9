package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v-lavrov/RS-SchedulerService/pkg/types"
)

func TestGrid_Default(t *testing.T) {
	labels, err := Grid(DefaultGridConfig())
	require.NoError(t, err)

	// 06:00..23:30 с шагом 30 минут
	require.Len(t, labels, 36)
	assert.Equal(t, types.TimeString("06:00"), labels[0])
	assert.Equal(t, types.TimeString("06:30"), labels[1])
	assert.Equal(t, types.TimeString("23:00"), labels[34])
	assert.Equal(t, types.TimeString("23:30"), labels[35])

	// Метки строго возрастают
	for i := 1; i < len(labels); i++ {
		assert.True(t, labels[i-1].IsBefore(labels[i]),
			"labels must be ordered: %s before %s", labels[i-1], labels[i])
	}
}

func TestGrid_CustomConfig(t *testing.T) {
	labels, err := Grid(GridConfig{
		DayStart:    "09:00",
		DayEnd:      "11:00",
		StepMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, labels)
}

func TestGrid_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  GridConfig
	}{
		{name: "end before start", cfg: GridConfig{DayStart: "10:00", DayEnd: "09:00", StepMinutes: 30}},
		{name: "zero step", cfg: GridConfig{DayStart: "06:00", DayEnd: "23:30", StepMinutes: 0}},
		{name: "bad start", cfg: GridConfig{DayStart: "25:00", DayEnd: "23:30", StepMinutes: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Grid(tt.cfg)
			require.Error(t, err)
		})
	}
}
