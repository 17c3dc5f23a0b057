package datekey

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewSetCollapsesDuplicates(t *testing.T) {
	s, err := NewSet("2024-01-03", "2024-01-01", "2024-01-03", "2024-01-02")
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	want := []DateKey{MustParse("2024-01-01"), MustParse("2024-01-02"), MustParse("2024-01-03")}
	if got := s.Sorted(); !reflect.DeepEqual(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}
}

func TestNewSetRejectsMalformed(t *testing.T) {
	_, err := NewSet("2024-01-01", "2024-1-2")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("NewSet error = %v, want ErrMalformed", err)
	}
}

func TestSetAdd(t *testing.T) {
	var s Set
	day := MustParse("2024-05-05")
	s.Add(day)
	s.Add(day)
	s.Add(DateKey{})
	if !s.Has(day) || s.Len() != 1 {
		t.Fatalf("after Add: Has=%v Len=%d", s.Has(day), s.Len())
	}
	if s.Has(DateKey{}) {
		t.Error("zero key was stored")
	}

	o := SetOf(day, DateKey{}, day.Next())
	if o.Len() != 2 {
		t.Errorf("SetOf Len() = %d, want 2", o.Len())
	}
}

func TestRange(t *testing.T) {
	got := Range(MustParse("2023-12-30"), MustParse("2024-01-02"))
	want := []string{"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02"}
	if len(got) != len(want) {
		t.Fatalf("Range returned %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("Range[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if r := Range(MustParse("2024-01-02"), MustParse("2024-01-01")); r != nil {
		t.Errorf("reversed Range = %v, want nil", r)
	}
}

func TestLastN(t *testing.T) {
	today := MustParse("2024-03-01")
	days := LastN(today, 100)
	if len(days) != 100 {
		t.Fatalf("LastN returned %d days", len(days))
	}
	if days[len(days)-1] != today {
		t.Errorf("last day = %s, want %s", days[len(days)-1], today)
	}
	if days[0].String() != "2023-11-23" {
		t.Errorf("first day = %s, want 2023-11-23", days[0])
	}
	if LastN(today, 0) != nil {
		t.Error("LastN(0) should be nil")
	}
}

func TestMonthOf(t *testing.T) {
	tests := []struct {
		day  string
		want int
	}{
		{"2024-02-10", 29},
		{"2023-02-10", 28},
		{"2024-04-30", 30},
		{"2024-12-01", 31},
	}
	for _, tt := range tests {
		days := MonthOf(MustParse(tt.day))
		if len(days) != tt.want {
			t.Errorf("MonthOf(%s) has %d days, want %d", tt.day, len(days), tt.want)
			continue
		}
		if days[0].Day() != 1 || days[0].Month() != MustParse(tt.day).Month() {
			t.Errorf("MonthOf(%s) starts at %s", tt.day, days[0])
		}
	}

	first, err := ParseMonth("2024-02")
	if err != nil || first.String() != "2024-02-01" {
		t.Errorf("ParseMonth = %s, %v", first, err)
	}
	if _, err := ParseMonth("2024-2"); err == nil {
		t.Error("ParseMonth accepted unpadded month")
	}
}
