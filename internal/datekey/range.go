package datekey

import "time"

// Range returns every day from start to end inclusive, ascending.
// It returns nil when end is before start or either key is zero.
func Range(start, end DateKey) []DateKey {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil
	}
	var days []DateKey
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// LastN returns the n days ending at today, oldest first.
func LastN(today DateKey, n int) []DateKey {
	if n <= 0 || today.IsZero() {
		return nil
	}
	return Range(today.AddDays(-(n - 1)), today)
}

// MonthOf returns every day in k's calendar month.
func MonthOf(k DateKey) []DateKey {
	if k.IsZero() {
		return nil
	}
	y, m, _ := k.Time().Date()
	first := Normalize(time.Date(y, m, 1, 12, 0, 0, 0, time.UTC))
	last := Normalize(time.Date(y, m+1, 0, 12, 0, 0, 0, time.UTC))
	return Range(first, last)
}

// ParseMonth accepts "YYYY-MM" and returns the first day of that month.
func ParseMonth(s string) (DateKey, error) {
	return Parse(s + "-01")
}
