// Package week parses ISO 8601 week identifiers ("2025-21") and turns them
// into date ranges. Two range conventions exist side by side: reporting
// queries use a half-open Monday..next-Monday window, while the per-user
// weekly view uses an inclusive Monday..Sunday pair.
package week

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/neocare/neocare-server/internal/domain"
)

var (
	// ErrFormat reports an identifier that does not match YYYY-WW.
	ErrFormat = errors.New("week must use the YYYY-WW format")
	// ErrRange reports a well-formed identifier whose week number does not
	// exist in the given year.
	ErrRange = errors.New("week number out of range for year")
)

var weekPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Week identifies one ISO 8601 week.
type Week struct {
	Year int
	Num  int
}

// Parse validates an identifier like "2025-21" and returns the week.
// The week number must exist in the ISO year: 1..52 always, 53 only in
// years that have 53 ISO weeks.
func Parse(s string) (Week, error) {
	m := weekPattern.FindStringSubmatch(s)
	if m == nil {
		return Week{}, ErrFormat
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return Week{}, ErrFormat
	}
	num, err := strconv.Atoi(m[2])
	if err != nil {
		return Week{}, ErrFormat
	}
	if num < 1 || num > weeksInYear(year) {
		return Week{}, fmt.Errorf("%w: %q", ErrRange, s)
	}
	return Week{Year: year, Num: num}, nil
}

// String formats the week back to its YYYY-WW identifier.
func (w Week) String() string {
	return fmt.Sprintf("%04d-%02d", w.Year, w.Num)
}

// Monday returns the first day of the week.
//
// The standard library has no inverse of Time.ISOWeek, so this anchors on
// January 4th, which by definition always falls in ISO week 1 of its year.
func (w Week) Monday() domain.Date {
	anchor := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.UTC)
	// Weekday with Monday=0.
	offset := (int(anchor.Weekday()) + 6) % 7
	week1Monday := anchor.AddDate(0, 0, -offset)
	return domain.DateOf(week1Monday.AddDate(0, 0, (w.Num-1)*7))
}

// Range returns the half-open reporting window [Monday, next Monday).
func (w Week) Range() (start, end domain.Date) {
	start = w.Monday()
	return start, start.AddDays(7)
}

// CalendarRange returns the inclusive [Monday, Sunday] pair shown to users.
func (w Week) CalendarRange() (start, end domain.Date) {
	start = w.Monday()
	return start, start.AddDays(6)
}

// Of returns the ISO week containing the given date.
func Of(d domain.Date) Week {
	year, num := d.Time().ISOWeek()
	return Week{Year: year, Num: num}
}

// weeksInYear reports how many ISO weeks the year has: 52, or 53 when
// December 28th (always in the last ISO week) lands in week 53.
func weeksInYear(year int) int {
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}
