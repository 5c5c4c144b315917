package model

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the filter sentinel selecting every period, day or session.
const All = "ALL"

// Day is a normalized day-of-week label. Values outside Days are kept as
// their upper-cased source text.
type Day string

const (
	Monday    Day = "MONDAY"
	Tuesday   Day = "TUESDAY"
	Wednesday Day = "WEDNESDAY"
	Thursday  Day = "THURSDAY"
	Friday    Day = "FRIDAY"
)

// Days is the closed, ordered teaching-day domain.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

// Session is a normalized session slot label.
type Session string

// Sessions is the closed, ordered session domain.
var Sessions = []Session{"1", "2", "3", "4"}

// Source sheets use Indonesian day names.
var dayAliases = map[string]Day{
	"MONDAY":    Monday,
	"SENIN":     Monday,
	"TUESDAY":   Tuesday,
	"SELASA":    Tuesday,
	"WEDNESDAY": Wednesday,
	"RABU":      Wednesday,
	"THURSDAY":  Thursday,
	"KAMIS":     Thursday,
	"FRIDAY":    Friday,
	"JUMAT":     Friday,
	"JUM'AT":    Friday,
}

var allAliases = map[string]bool{All: true, "SEMUA": true}

// Upper upper-cases s without trimming it. It is safe for concurrent use.
func Upper(s string) string {
	c := upperPool.Get().(cases.Caser)
	defer upperPool.Put(c)
	return c.String(s)
}

// A Caser keeps state between calls and must not be shared by goroutines.
var upperPool = sync.Pool{New: func() any { return cases.Upper(language.Und) }}

// NormalizeKey trims and upper-cases a categorical value.
func NormalizeKey(s string) string { return Upper(strings.TrimSpace(s)) }

// IsAll reports whether a filter value selects everything.
func IsAll(s string) bool { return allAliases[NormalizeKey(s)] }

// NormalizeFilter returns All for any spelling of the sentinel and the
// normalized key otherwise.
func NormalizeFilter(s string) string {
	if s == "" || IsAll(s) {
		return All
	}
	return NormalizeKey(s)
}

// ParseDay normalizes a raw day value.
func ParseDay(raw string) Day {
	key := NormalizeKey(raw)
	if d, ok := dayAliases[key]; ok {
		return d
	}
	return Day(key)
}

// Known reports whether d belongs to Days.
func (d Day) Known() bool {
	for _, v := range Days {
		if v == d {
			return true
		}
	}
	return false
}

// DayFilter resolves a day filter argument to All or one of Days. Unknown
// values fall back to All.
func DayFilter(raw string) string {
	if IsAll(raw) || strings.TrimSpace(raw) == "" {
		return All
	}
	if d := ParseDay(raw); d.Known() {
		return string(d)
	}
	return All
}

// ParseSession normalizes a raw session value. Integral numbers such as
// "2.0" collapse to "2".
func ParseSession(raw string) Session {
	key := NormalizeKey(raw)
	if v, err := strconv.ParseFloat(key, 64); err == nil && v == math.Trunc(v) && math.Abs(v) < 1<<53 {
		return Session(strconv.FormatInt(int64(v), 10))
	}
	return Session(key)
}

// Known reports whether s belongs to Sessions.
func (s Session) Known() bool {
	for _, v := range Sessions {
		if v == s {
			return true
		}
	}
	return false
}

// SessionFilter resolves a session filter argument to All or one of
// Sessions. Unknown values fall back to All.
func SessionFilter(raw string) string {
	if IsAll(raw) || strings.TrimSpace(raw) == "" {
		return All
	}
	if s := ParseSession(raw); s.Known() {
		return string(s)
	}
	return All
}

// SlotLabel formats a day and session the way charts show them.
func SlotLabel(d Day, s Session) string { return string(d) + " - " + string(s) }
