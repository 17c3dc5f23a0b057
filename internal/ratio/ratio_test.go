package ratio

import (
	"math"
	"testing"

	"github.com/avinash6817/habit-ticker/internal/datekey"
)

func habit(t *testing.T, id int64, created string, completions ...string) Habit {
	t.Helper()
	set, err := datekey.NewSet(completions...)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return Habit{ID: id, CreatedAt: datekey.MustParse(created), Completions: set}
}

func TestCompletionRatio(t *testing.T) {
	tests := []struct {
		name   string
		habits []Habit
		day    string
		want   Ratio
		value  float64
	}{
		{
			name:   "no habits",
			habits: nil,
			day:    "2024-01-05",
			want:   Ratio{},
			value:  0,
		},
		{
			name: "second habit created after day is excluded",
			habits: []Habit{
				habit(t, 1, "2024-01-01", "2024-01-05"),
				habit(t, 2, "2024-01-10"),
			},
			day:   "2024-01-05",
			want:  Ratio{Completed: 1, Eligible: 1},
			value: 1,
		},
		{
			name: "every habit created after day",
			habits: []Habit{
				habit(t, 1, "2024-02-01", "2024-02-01"),
				habit(t, 2, "2024-02-03"),
			},
			day:   "2024-01-31",
			want:  Ratio{},
			value: 0,
		},
		{
			name: "created on the day counts",
			habits: []Habit{
				habit(t, 1, "2024-01-05"),
				habit(t, 2, "2024-01-01", "2024-01-05"),
				habit(t, 3, "2024-01-02", "2024-01-04"),
			},
			day:   "2024-01-05",
			want:  Ratio{Completed: 1, Eligible: 3},
			value: 1.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionRatio(tt.habits, datekey.MustParse(tt.day))
			if got != tt.want {
				t.Errorf("CompletionRatio() = %+v, want %+v", got, tt.want)
			}
			if v := got.Value(); math.Abs(v-tt.value) > 1e-9 || math.IsNaN(v) {
				t.Errorf("Value() = %v, want %v", v, tt.value)
			}
		})
	}
}

func TestFull(t *testing.T) {
	if (Ratio{}).Full() {
		t.Error("empty ratio should not be full")
	}
	if !(Ratio{Completed: 2, Eligible: 2}).Full() {
		t.Error("2/2 should be full")
	}
	if (Ratio{Completed: 1, Eligible: 2}).Full() {
		t.Error("1/2 should not be full")
	}
}

func TestWindowMatchesPerDay(t *testing.T) {
	habits := []Habit{
		habit(t, 3, "2024-01-20", "2024-01-20", "2024-01-22"),
		habit(t, 1, "2024-01-01", "2024-01-01", "2024-01-02", "2024-01-20"),
		habit(t, 2, "2024-01-10", "2024-01-10", "2024-01-21", "2024-01-22"),
	}
	days := datekey.Range(datekey.MustParse("2023-12-30"), datekey.MustParse("2024-01-31"))

	got := Window(habits, days)
	if len(got) != len(days) {
		t.Fatalf("Window returned %d entries, want %d", len(got), len(days))
	}
	for i, d := range days {
		want := CompletionRatio(habits, d)
		if got[i].Day != d || got[i].Ratio != want {
			t.Errorf("Window[%s] = %+v, want %+v", d, got[i].Ratio, want)
		}
	}
}

func TestWindowUnsortedFallsBack(t *testing.T) {
	habits := []Habit{habit(t, 1, "2024-01-01", "2024-01-03")}
	days := []datekey.DateKey{datekey.MustParse("2024-01-03"), datekey.MustParse("2024-01-01")}

	got := Window(habits, days)
	if got[0].Ratio != (Ratio{Completed: 1, Eligible: 1}) {
		t.Errorf("first = %+v", got[0].Ratio)
	}
	if got[1].Ratio != (Ratio{Completed: 0, Eligible: 1}) {
		t.Errorf("second = %+v", got[1].Ratio)
	}
}

func TestAggregatorRejectsBackwards(t *testing.T) {
	agg := NewAggregator([]Habit{habit(t, 1, "2024-01-01")})
	if _, ok := agg.At(datekey.MustParse("2024-01-05")); !ok {
		t.Fatal("first At should succeed")
	}
	if _, ok := agg.At(datekey.MustParse("2024-01-05")); !ok {
		t.Error("repeating the same day should succeed")
	}
	if _, ok := agg.At(datekey.MustParse("2024-01-04")); ok {
		t.Error("At should refuse a day before the cursor")
	}
}

func TestIdempotent(t *testing.T) {
	habits := []Habit{habit(t, 1, "2024-01-01", "2024-01-02"), habit(t, 2, "2024-01-02")}
	day := datekey.MustParse("2024-01-02")
	if CompletionRatio(habits, day) != CompletionRatio(habits, day) {
		t.Error("CompletionRatio is not deterministic")
	}
}
