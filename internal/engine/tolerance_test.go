package engine_test

import (
	"testing"
	"time"

	"github.com/limbo/habinook/internal/engine"
	"github.com/stretchr/testify/assert"
)

func TestIsTimeWithinTolerance(t *testing.T) {
	t.Parallel()
	targetDate := time.Date(2025, 7, 25, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc          string
		LoggedAt      time.Time
		ScheduledTime string
		TimezoneID    string
		Tolerance     int
		Expected      bool
	}{
		{
			Desc:          "within tolerance",
			LoggedAt:      time.Date(2025, 7, 25, 10, 15, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      true,
		},
		{
			Desc:          "exactly at window start",
			LoggedAt:      time.Date(2025, 7, 25, 9, 30, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      true,
		},
		{
			Desc:          "exactly at window end",
			LoggedAt:      time.Date(2025, 7, 25, 10, 30, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      true,
		},
		{
			Desc:          "one minute before window",
			LoggedAt:      time.Date(2025, 7, 25, 9, 29, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      false,
		},
		{
			Desc:          "one minute after window",
			LoggedAt:      time.Date(2025, 7, 25, 10, 31, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      false,
		},
		{
			Desc:          "zoned schedule, 14:00 in UTC+4 is 10:00 UTC",
			LoggedAt:      time.Date(2025, 7, 25, 10, 15, 0, 0, time.UTC),
			ScheduledTime: "14:00",
			TimezoneID:    "Asia/Tbilisi",
			Tolerance:     30,
			Expected:      true,
		},
		{
			Desc:          "zoned schedule crossing utc date boundary",
			LoggedAt:      time.Date(2025, 7, 26, 1, 15, 0, 0, time.UTC),
			ScheduledTime: "21:00",
			TimezoneID:    "America/New_York",
			Tolerance:     120,
			Expected:      true,
		},
		{
			Desc:          "small tolerance passes close match",
			LoggedAt:      time.Date(2025, 7, 25, 10, 5, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     10,
			Expected:      true,
		},
		{
			Desc:          "small tolerance rejects far match",
			LoggedAt:      time.Date(2025, 7, 25, 10, 11, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     10,
			Expected:      false,
		},
		{
			Desc:          "zero tolerance needs exact match",
			LoggedAt:      time.Date(2025, 7, 25, 10, 0, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     0,
			Expected:      true,
		},
		{
			Desc:          "negative tolerance matches nothing",
			LoggedAt:      time.Date(2025, 7, 25, 10, 0, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "UTC",
			Tolerance:     -5,
			Expected:      false,
		},
		{
			Desc:          "midnight slot",
			LoggedAt:      time.Date(2025, 7, 25, 0, 15, 0, 0, time.UTC),
			ScheduledTime: "00:00",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      true,
		},
		{
			Desc:          "end of day slot",
			LoggedAt:      time.Date(2025, 7, 25, 23, 45, 0, 0, time.UTC),
			ScheduledTime: "23:59",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      true,
		},
		{
			Desc:          "wrong separator fails closed",
			LoggedAt:      time.Date(2025, 7, 25, 10, 15, 0, 0, time.UTC),
			ScheduledTime: "10-00",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      false,
		},
		{
			Desc:          "non numeric components fail closed",
			LoggedAt:      time.Date(2025, 7, 25, 10, 15, 0, 0, time.UTC),
			ScheduledTime: "aa:bb",
			TimezoneID:    "UTC",
			Tolerance:     30,
			Expected:      false,
		},
		{
			Desc:          "unknown timezone fails closed",
			LoggedAt:      time.Date(2025, 7, 25, 10, 15, 0, 0, time.UTC),
			ScheduledTime: "10:00",
			TimezoneID:    "Mars/Olympus",
			Tolerance:     30,
			Expected:      false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			result := engine.IsTimeWithinTolerance(tc.LoggedAt, targetDate, tc.ScheduledTime, tc.TimezoneID, tc.Tolerance)
			assert.Equal(t, tc.Expected, result)
		})
	}
}

func TestIsTimeWithinToleranceDST(t *testing.T) {
	t.Parallel()
	// 09:00 in Berlin is 08:00 UTC in winter and 07:00 UTC in summer.
	winter := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	summer := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	assert.True(t, engine.IsTimeWithinTolerance(
		time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC), winter, "09:00", "Europe/Berlin", 15))
	assert.False(t, engine.IsTimeWithinTolerance(
		time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC), summer, "09:00", "Europe/Berlin", 15))
	assert.True(t, engine.IsTimeWithinTolerance(
		time.Date(2025, 7, 15, 7, 0, 0, 0, time.UTC), summer, "09:00", "Europe/Berlin", 15))
}
