package streak

import (
	"testing"

	"github.com/avinash6817/habit-ticker/internal/datekey"
)

func mustSet(t *testing.T, keys ...string) datekey.Set {
	t.Helper()
	s, err := datekey.NewSet(keys...)
	if err != nil {
		t.Fatalf("NewSet(%v): %v", keys, err)
	}
	return s
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name        string
		completions []string
		today       string
		wantCurrent int
		wantBest    int
	}{
		{
			name:        "three consecutive days ending today",
			completions: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
			today:       "2024-01-03",
			wantCurrent: 3,
			wantBest:    3,
		},
		{
			name:        "gap breaks the chain",
			completions: []string{"2024-01-01", "2024-01-03"},
			today:       "2024-01-03",
			wantCurrent: 1,
			wantBest:    1,
		},
		{
			name:        "year boundary",
			completions: []string{"2023-12-31", "2024-01-01"},
			today:       "2024-01-01",
			wantCurrent: 2,
			wantBest:    2,
		},
		{
			name:        "today not completed",
			completions: []string{"2024-01-01", "2024-01-02"},
			today:       "2024-01-03",
			wantCurrent: 0,
			wantBest:    2,
		},
		{
			name:        "empty",
			completions: nil,
			today:       "2024-01-03",
			wantCurrent: 0,
			wantBest:    0,
		},
		{
			name:        "best run in the past",
			completions: []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-05", "2024-03-06"},
			today:       "2024-03-06",
			wantCurrent: 2,
			wantBest:    4,
		},
		{
			name:        "unsorted input",
			completions: []string{"2024-05-03", "2024-05-01", "2024-05-02"},
			today:       "2024-05-03",
			wantCurrent: 3,
			wantBest:    3,
		},
		{
			name:        "completions after today are ignored by current",
			completions: []string{"2024-05-01", "2024-05-02"},
			today:       "2024-05-01",
			wantCurrent: 1,
			wantBest:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := mustSet(t, tt.completions...)
			today := datekey.MustParse(tt.today)

			if got := Current(set, today); got != tt.wantCurrent {
				t.Errorf("Current() = %d, want %d", got, tt.wantCurrent)
			}
			if got := Best(set); got != tt.wantBest {
				t.Errorf("Best() = %d, want %d", got, tt.wantBest)
			}
		})
	}
}

func TestProperties(t *testing.T) {
	sets := [][]string{
		{"2024-01-01"},
		{"2024-01-01", "2024-01-02", "2024-01-04"},
		{"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02"},
		{"2024-02-28", "2024-03-01"},
	}
	days := datekey.Range(datekey.MustParse("2023-12-25"), datekey.MustParse("2024-03-05"))

	for _, keys := range sets {
		set := mustSet(t, keys...)
		best := Best(set)
		if best < 1 {
			t.Errorf("Best(%v) = %d, want >= 1 for non-empty set", keys, best)
		}
		for _, today := range days {
			cur := Current(set, today)
			if cur > best {
				t.Errorf("Current(%v, %s) = %d exceeds Best = %d", keys, today, cur, best)
			}
			if !set.Has(today) && cur != 0 {
				t.Errorf("Current(%v, %s) = %d, want 0 when today is not completed", keys, today, cur)
			}
			if again := Current(set, today); again != cur {
				t.Errorf("Current is not deterministic: %d then %d", cur, again)
			}
		}
		if Best(set) != best {
			t.Error("Best is not deterministic")
		}
	}
}

func TestZeroToday(t *testing.T) {
	set := mustSet(t, "2024-01-01")
	if got := Current(set, datekey.DateKey{}); got != 0 {
		t.Errorf("Current(zero today) = %d, want 0", got)
	}
}

func TestCurrentStopsAtFirstKey(t *testing.T) {
	set := mustSet(t, "0000-01-01", "0000-01-02")
	if got := Current(set, datekey.MustParse("0000-01-02")); got != 2 {
		t.Errorf("Current at the start of the key range = %d, want 2", got)
	}
}

func TestBestSortedMatchesBest(t *testing.T) {
	set := mustSet(t, "2024-01-10", "2024-01-11", "2024-01-12", "2024-01-20")
	if BestSorted(set.Sorted()) != Best(set) {
		t.Error("BestSorted and Best disagree")
	}
}

func TestSummarize(t *testing.T) {
	set := mustSet(t, "2024-01-01", "2024-01-02", "2024-01-05", "2024-01-06", "2024-01-07")
	got := Summarize(set, datekey.MustParse("2024-01-07"))
	want := Summary{Current: 3, Best: 3, Total: 5}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}
