// Package streak computes daily challenge streaks from completion dates.
package streak

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

// Current counts consecutive completed calendar days ending at today
// (inclusive). If today itself is not completed the streak is 0, no
// matter how long the run before it was. Duplicate and malformed dates
// are ignored.
func Current(dates []string, today time.Time) int {
	completed := dateSet(dates)
	if len(completed) == 0 {
		return 0
	}

	count := 0
	day := truncate(today)
	for completed[day.Format(dateLayout)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// Longest returns the length of the longest run of consecutive calendar
// days anywhere in the completion set.
func Longest(dates []string) int {
	completed := dateSet(dates)
	if len(completed) == 0 {
		return 0
	}

	days := make([]time.Time, 0, len(completed))
	for d := range completed {
		parsed, err := time.ParseInLocation(dateLayout, d, time.Local)
		if err != nil {
			continue
		}
		days = append(days, parsed)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 0, 0
	for i, day := range days {
		if i > 0 && days[i-1].AddDate(0, 0, 1).Equal(day) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// dateSet de-duplicates the input; completing the same date twice must
// not double-count.
func dateSet(dates []string) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		if _, err := time.ParseInLocation(dateLayout, d, time.Local); err != nil {
			continue
		}
		set[d] = true
	}
	return set
}

func truncate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
