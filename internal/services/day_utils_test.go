package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateAtLocationUsesLocalCalendarDay(t *testing.T) {
	location := time.FixedZone("UTC+3", 3*60*60)
	value := time.Date(2024, time.January, 10, 22, 30, 0, 0, time.UTC)

	got := DateAtLocation(value, location)

	assert.Equal(t, time.Date(2024, time.January, 11, 0, 0, 0, 0, location), got)
}

func TestTodayAnchorsLocalDayAtUTCMidnight(t *testing.T) {
	location := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, time.January, 11, 3, 0, 0, 0, time.UTC)

	assert.Equal(t, mustDay("2024-01-10"), Today(now, location))
}

func TestDayRangeSpansOneCalendarDay(t *testing.T) {
	start, end := DayRange(time.Date(2024, time.February, 29, 18, 45, 0, 0, time.UTC))

	assert.Equal(t, mustDay("2024-02-29"), start)
	assert.Equal(t, mustDay("2024-03-01"), end)
}

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain date", raw: "2024-01-10", want: "2024-01-10"},
		{name: "surrounding spaces", raw: " 2024-01-10 ", want: "2024-01-10"},
		{name: "rfc3339 keeps wall clock day", raw: "2024-01-10T23:30:00-05:00", want: "2024-01-10"},
		{name: "garbage", raw: "10/01/2024", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, mustDay(tt.want), got)
		})
	}
}

func TestWeekEnd(t *testing.T) {
	tests := []struct {
		name         string
		day          string
		weekStartsOn time.Weekday
		want         string
	}{
		{name: "sunday start from sunday", day: "2024-01-07", weekStartsOn: time.Sunday, want: "2024-01-13"},
		{name: "sunday start from wednesday", day: "2024-01-10", weekStartsOn: time.Sunday, want: "2024-01-13"},
		{name: "sunday start from saturday", day: "2024-01-13", weekStartsOn: time.Sunday, want: "2024-01-13"},
		{name: "monday start from monday", day: "2024-01-08", weekStartsOn: time.Monday, want: "2024-01-14"},
		{name: "monday start from sunday", day: "2024-01-14", weekStartsOn: time.Monday, want: "2024-01-14"},
		{name: "crosses month", day: "2024-01-29", weekStartsOn: time.Sunday, want: "2024-02-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, mustDay(tt.want), WeekEnd(mustDay(tt.day), tt.weekStartsOn))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	weekday, ok := ParseWeekday("Monday")
	assert.True(t, ok)
	assert.Equal(t, time.Monday, weekday)

	weekday, ok = ParseWeekday("sat")
	assert.True(t, ok)
	assert.Equal(t, time.Saturday, weekday)

	_, ok = ParseWeekday("someday")
	assert.False(t, ok)
}
