package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:45", want: "09:45"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "out of range hours", input: "24:00", wantErr: true},
		{name: "out of range minutes", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "10:00", minutes: 15, want: "10:15"},
		{name: "carry across hour boundary", start: "09:45", minutes: 30, want: "10:15"},
		{name: "exact hour", start: "09:30", minutes: 30, want: "10:00"},
		{name: "multi hour", start: "08:00", minutes: 150, want: "10:30"},
		{name: "carry at 55 minutes", start: "10:55", minutes: 10, want: "11:05"},
		{name: "to end of day", start: "23:00", minutes: 59, want: "23:59"},
		{name: "past midnight", start: "23:30", minutes: 60, wantErr: true},
		{name: "negative past day start", start: "00:10", minutes: -20, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:15").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 615, m)

	_, err = TimeString("bad").Minutes()
	require.Error(t, err)
}

func TestTimeString_Sub(t *testing.T) {
	d, err := TimeString("12:30").Sub("10:00")
	require.NoError(t, err)
	assert.Equal(t, 150, d)

	d, err = TimeString("10:00").Sub("12:30")
	require.NoError(t, err)
	assert.Equal(t, -150, d)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))

	// Некорректные значения не упорядочены
	assert.False(t, TimeString("bad").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("bad"))
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 4, 15, 9, 5, 0, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	ts, err := NewTimeStringFromMinutes(615)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	_, err = NewTimeStringFromMinutes(24 * 60)
	require.Error(t, err)

	_, err = NewTimeStringFromMinutes(-1)
	require.Error(t, err)
}
