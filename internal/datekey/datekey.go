// Package datekey converts calendar dates to canonical YYYY-MM-DD keys.
//
// A DateKey is the only currency used for completion membership and
// streak comparisons. Keys are produced by Normalize (from a time.Time)
// or Parse (from text); both guarantee the fixed-width, zero-padded form,
// so lexical order on String() is chronological order.
package datekey

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the canonical key format.
const Layout = "2006-01-02"

// MinYear and MaxYear bound the years a ten-character key can carry.
const (
	MinYear = 0
	MaxYear = 9999
)

// ErrMalformed is wrapped by every error Parse and NormalizeChecked return.
var ErrMalformed = errors.New("malformed date key")

// DateKey is a calendar day in canonical YYYY-MM-DD form.
// The zero value is not a valid key; use IsZero to detect it.
type DateKey struct {
	s string
}

// Normalize returns the key for t's calendar date in t's own location.
// Time of day is ignored. Dates outside MinYear..MaxYear saturate to
// 0000-01-01 or 9999-12-31, so times read from storage go through
// NormalizeChecked.
func Normalize(t time.Time) DateKey {
	y, m, d := t.Date()
	return fromDate(y, m, d)
}

// NormalizeIn converts t to loc before taking its calendar date.
// A nil loc means time.Local.
func NormalizeIn(t time.Time, loc *time.Location) DateKey {
	if loc == nil {
		loc = time.Local
	}
	return Normalize(t.In(loc))
}

// NormalizeChecked is NormalizeIn that fails for years a key cannot hold
// instead of clamping them.
func NormalizeChecked(t time.Time, loc *time.Location) (DateKey, error) {
	if loc == nil {
		loc = time.Local
	}
	if y := t.In(loc).Year(); y < MinYear || y > MaxYear {
		return DateKey{}, fmt.Errorf("%w: year %d outside %d..%d", ErrMalformed, y, MinYear, MaxYear)
	}
	return NormalizeIn(t, loc), nil
}

// Parse validates s and returns its key. s must be exactly ten
// characters, zero-padded, and name a real calendar date.
func Parse(s string) (DateKey, error) {
	if len(s) != len(Layout) {
		return DateKey{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrMalformed, s)
	}
	t, err := time.Parse(Layout, s)
	if err != nil {
		return DateKey{}, fmt.Errorf("%w: %q: %v", ErrMalformed, s, err)
	}
	k := Normalize(t)
	if k.s != s {
		return DateKey{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrMalformed, s)
	}
	return k, nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(s string) DateKey {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

func fromDate(y int, m time.Month, d int) DateKey {
	switch {
	case y < MinYear:
		y, m, d = MinYear, time.January, 1
	case y > MaxYear:
		y, m, d = MaxYear, time.December, 31
	}
	return DateKey{s: fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)}
}

// String returns the canonical YYYY-MM-DD form ("" for the zero value).
func (k DateKey) String() string { return k.s }

// IsZero reports whether k is the zero value.
func (k DateKey) IsZero() bool { return k.s == "" }

// Time returns midnight UTC of the key's day.
func (k DateKey) Time() time.Time {
	t, _ := time.Parse(Layout, k.s)
	return t
}

// In returns midnight of the key's day in loc.
func (k DateKey) In(loc *time.Location) time.Time {
	y, m, d := k.Time().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or +1 depending on whether k is before, equal to
// or after other.
func (k DateKey) Compare(other DateKey) int {
	switch {
	case k.s < other.s:
		return -1
	case k.s > other.s:
		return 1
	default:
		return 0
	}
}

func (k DateKey) Before(other DateKey) bool { return k.s < other.s }
func (k DateKey) After(other DateKey) bool  { return k.s > other.s }

// AddDays steps n calendar days (negative n steps back). Arithmetic is
// done at noon UTC so daylight-saving shifts never skip or repeat a day.
// Stepping past either end of the key range stays on the end day.
func (k DateKey) AddDays(n int) DateKey {
	y, m, d := k.Time().Date()
	return Normalize(time.Date(y, m, d+n, 12, 0, 0, 0, time.UTC))
}

func (k DateKey) Next() DateKey { return k.AddDays(1) }
func (k DateKey) Prev() DateKey { return k.AddDays(-1) }

// Month returns the key's "YYYY-MM" prefix.
func (k DateKey) Month() string {
	if len(k.s) < 7 {
		return ""
	}
	return k.s[:7]
}

// Day returns the day of month.
func (k DateKey) Day() int {
	return k.Time().Day()
}

// MarshalText implements encoding.TextMarshaler.
func (k DateKey) MarshalText() ([]byte, error) {
	return []byte(k.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects malformed keys.
func (k *DateKey) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
