// Package ratio computes the per-day share of habits completed, used to
// fill the date scroller and calendar progress rings.
package ratio

import (
	"sort"

	"github.com/avinash6817/habit-ticker/internal/datekey"
)

// Habit is the read-only view of a habit the aggregator needs.
type Habit struct {
	ID          int64
	CreatedAt   datekey.DateKey
	Completions datekey.Set
}

// Ratio is Completed out of Eligible habits for one day.
type Ratio struct {
	Completed int `json:"completed"`
	Eligible  int `json:"eligible"`
}

// Value returns the ratio in [0,1]. A day with no eligible habits is 0.
func (r Ratio) Value() float64 {
	if r.Eligible == 0 {
		return 0
	}
	return float64(r.Completed) / float64(r.Eligible)
}

// Full reports whether every eligible habit was completed.
func (r Ratio) Full() bool {
	return r.Eligible > 0 && r.Completed == r.Eligible
}

// DayRatio pairs a day with its ratio.
type DayRatio struct {
	Day   datekey.DateKey
	Ratio Ratio
}

// CompletionRatio counts habits created on or before day, and how many
// of those were completed on day.
func CompletionRatio(habits []Habit, day datekey.DateKey) Ratio {
	var r Ratio
	for _, h := range habits {
		if h.CreatedAt.After(day) {
			continue
		}
		r.Eligible++
		if h.Completions.Has(day) {
			r.Completed++
		}
	}
	return r
}

// Aggregator evaluates ratios for ascending days without re-filtering the
// habit list each time: habits are sorted by creation day once and join
// the eligible set as the cursor passes their creation day.
type Aggregator struct {
	pending  []Habit
	eligible []Habit
	last     datekey.DateKey
}

// NewAggregator copies and sorts habits by creation day.
func NewAggregator(habits []Habit) *Aggregator {
	pending := make([]Habit, len(habits))
	copy(pending, habits)
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return &Aggregator{pending: pending}
}

// At returns the ratio for day. Days must be passed in ascending order;
// ok is false when day precedes a day already visited.
func (a *Aggregator) At(day datekey.DateKey) (r Ratio, ok bool) {
	if !a.last.IsZero() && day.Before(a.last) {
		return Ratio{}, false
	}
	a.last = day

	n := 0
	for n < len(a.pending) && !a.pending[n].CreatedAt.After(day) {
		n++
	}
	a.eligible = append(a.eligible, a.pending[:n]...)
	a.pending = a.pending[n:]

	r.Eligible = len(a.eligible)
	for _, h := range a.eligible {
		if h.Completions.Has(day) {
			r.Completed++
		}
	}
	return r, true
}

// Window returns a ratio for each day. Ascending days use the incremental
// aggregator; any other order falls back to CompletionRatio per day.
func Window(habits []Habit, days []datekey.DateKey) []DayRatio {
	out := make([]DayRatio, len(days))
	if !ascending(days) {
		for i, d := range days {
			out[i] = DayRatio{Day: d, Ratio: CompletionRatio(habits, d)}
		}
		return out
	}

	agg := NewAggregator(habits)
	for i, d := range days {
		r, _ := agg.At(d)
		out[i] = DayRatio{Day: d, Ratio: r}
	}
	return out
}

func ascending(days []datekey.DateKey) bool {
	for i := 1; i < len(days); i++ {
		if days[i].Before(days[i-1]) {
			return false
		}
	}
	return true
}
