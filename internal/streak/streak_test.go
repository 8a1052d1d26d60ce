package streak_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/mirela/brainplay/internal/streak"
)

var today = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.Local)

func day(offset int) string {
	return today.AddDate(0, 0, offset).Format("2006-01-02")
}

func TestCurrent_Empty(t *testing.T) {
	assert.Equal(t, 0, streak.Current(nil, today))
}

func TestCurrent_OnlyToday(t *testing.T) {
	assert.Equal(t, 1, streak.Current([]string{day(0)}, today))
}

func TestCurrent_ConsecutiveDaysEndingToday(t *testing.T) {
	dates := []string{day(-3), day(-2), day(-1), day(0)}
	assert.Equal(t, 4, streak.Current(dates, today))
}

func TestCurrent_TodayMissing(t *testing.T) {
	// Yesterday and before are completed but today is not: streak is 0.
	dates := []string{day(-2), day(-1)}
	assert.Equal(t, 0, streak.Current(dates, today))
}

func TestCurrent_GapBreaksContinuity(t *testing.T) {
	// Today completed, yesterday missing, older history present: streak
	// resets to 1, not 0.
	dates := []string{day(-4), day(-3), day(0)}
	assert.Equal(t, 1, streak.Current(dates, today))
}

func TestCurrent_DuplicatesDoNotDoubleCount(t *testing.T) {
	dates := []string{day(0), day(0), day(-1), day(-1)}
	assert.Equal(t, 2, streak.Current(dates, today))
}

func TestLongest_Empty(t *testing.T) {
	assert.Equal(t, 0, streak.Longest(nil))
}

func TestLongest_SingleDay(t *testing.T) {
	assert.Equal(t, 1, streak.Longest([]string{day(0)}))
}

func TestLongest_FindsMaxAcrossDisjointRuns(t *testing.T) {
	// A 3-day run, a gap, then a 2-day run.
	dates := []string{day(-10), day(-9), day(-8), day(-2), day(-1)}
	assert.Equal(t, 3, streak.Longest(dates))
}

func TestLongest_LaterRunWins(t *testing.T) {
	dates := []string{day(-10), day(-9), day(-4), day(-3), day(-2), day(-1)}
	assert.Equal(t, 4, streak.Longest(dates))
}

func TestLongest_UnsortedInput(t *testing.T) {
	dates := []string{day(-1), day(-3), day(-2)}
	assert.Equal(t, 3, streak.Longest(dates))
}

func TestLongest_IgnoresMalformedDates(t *testing.T) {
	dates := []string{day(-1), "not-a-date", day(0)}
	assert.Equal(t, 2, streak.Longest(dates))
}

func TestCurrent_AcrossMonthBoundary(t *testing.T) {
	firstOfMonth := time.Date(2025, time.July, 1, 9, 0, 0, 0, time.Local)
	dates := []string{"2025-06-29", "2025-06-30", "2025-07-01"}
	assert.Equal(t, 3, streak.Current(dates, firstOfMonth))
}
