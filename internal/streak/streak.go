// Package streak derives consecutive-day runs from a habit's completions.
//
// All functions are pure: "today" is always passed in, never read from
// the wall clock, so results are reproducible and safe to compute from
// any goroutine.
package streak

import "github.com/avinash6817/habit-ticker/internal/datekey"

// Summary groups the figures shown on a habit card.
type Summary struct {
	Current int `json:"current"`
	Best    int `json:"best"`
	Total   int `json:"total"`
}

// Current counts consecutive completed days walking back from today.
// If today itself is not completed the streak is 0; there is no
// fallback to yesterday.
//
// today must be a real key. The zero key is a caller bug; it is never a
// member of a Set, so it yields 0 rather than a streak for some other
// day. Keys from outside the process are validated by datekey.Parse or
// datekey.NormalizeChecked before they get here.
func Current(completions datekey.Set, today datekey.DateKey) int {
	n := 0
	for day := today; completions.Has(day); {
		n++
		prev := day.Prev()
		if prev == day {
			break
		}
		day = prev
	}
	return n
}

// Best returns the longest run of consecutive days anywhere in the set.
// It is 0 only for an empty set.
func Best(completions datekey.Set) int {
	return BestSorted(completions.Sorted())
}

// BestSorted is Best over keys already in ascending order without
// duplicates, for callers that keep a sorted slice per habit.
func BestSorted(days []datekey.DateKey) int {
	if len(days) == 0 {
		return 0
	}
	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Next() == days[i] {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

// Summarize computes current, best and total completions for one habit.
func Summarize(completions datekey.Set, today datekey.DateKey) Summary {
	return Summary{
		Current: Current(completions, today),
		Best:    Best(completions),
		Total:   completions.Len(),
	}
}
