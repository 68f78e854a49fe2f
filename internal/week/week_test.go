package week

import (
	"errors"
	"testing"
	"time"

	"github.com/neocare/neocare-server/internal/domain"
)

func TestParseValid(t *testing.T) {
	w, err := Parse("2025-21")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w.Year != 2025 || w.Num != 21 {
		t.Errorf("got %+v", w)
	}
	if w.String() != "2025-21" {
		t.Errorf("String: got %q", w.String())
	}
}

func TestParseFormatErrors(t *testing.T) {
	for _, s := range []string{"", "2025", "2025-5", "2025-W21", "25-21", "2025-211", "2025-ab", " 2025-21"} {
		_, err := Parse(s)
		if !errors.Is(err, ErrFormat) {
			t.Errorf("Parse(%q): got %v, want ErrFormat", s, err)
		}
	}
}

func TestParseRangeErrors(t *testing.T) {
	for _, s := range []string{"2025-00", "2025-54", "2025-99"} {
		_, err := Parse(s)
		if !errors.Is(err, ErrRange) {
			t.Errorf("Parse(%q): got %v, want ErrRange", s, err)
		}
	}
}

func TestParseWeek53(t *testing.T) {
	// 2020 has 53 ISO weeks, 2025 has 52.
	if _, err := Parse("2020-53"); err != nil {
		t.Errorf("2020-53 should be valid: %v", err)
	}
	if _, err := Parse("2025-53"); !errors.Is(err, ErrRange) {
		t.Errorf("2025-53 should be out of range, got %v", err)
	}
}

func TestMonday(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Date
	}{
		// Week 1 of 2025 starts in the previous calendar year.
		{"2025-01", domain.NewDate(2024, time.December, 30)},
		{"2025-21", domain.NewDate(2025, time.May, 19)},
		{"2021-01", domain.NewDate(2021, time.January, 4)},
		{"2020-53", domain.NewDate(2020, time.December, 28)},
	}
	for _, tt := range tests {
		w, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := w.Monday(); got != tt.want {
			t.Errorf("Monday(%s): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRangeIsHalfOpenWeek(t *testing.T) {
	w := Week{Year: 2025, Num: 21}
	start, end := w.Range()
	if start != domain.NewDate(2025, time.May, 19) {
		t.Errorf("start: got %v", start)
	}
	if end != domain.NewDate(2025, time.May, 26) {
		t.Errorf("end: got %v", end)
	}
}

func TestCalendarRangeEndsOnSunday(t *testing.T) {
	w := Week{Year: 2025, Num: 21}
	start, end := w.CalendarRange()
	if start != domain.NewDate(2025, time.May, 19) {
		t.Errorf("start: got %v", start)
	}
	if end != domain.NewDate(2025, time.May, 25) {
		t.Errorf("end: got %v", end)
	}
	if end.Time().Weekday() != time.Sunday {
		t.Errorf("end should be a Sunday, got %v", end.Time().Weekday())
	}
}

func TestLastWeekOfYearRange(t *testing.T) {
	// The week after the last one of the year must roll into week 1 of the
	// next ISO year without arithmetic overflow.
	w := Week{Year: 2020, Num: 53}
	_, end := w.Range()
	if end != domain.NewDate(2021, time.January, 4) {
		t.Errorf("end: got %v", end)
	}
}

func TestOfRoundTrip(t *testing.T) {
	for _, s := range []string{"2021-01", "2020-53", "2025-21", "2024-52"} {
		w, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q): %v", s, err)
		}
		if got := Of(w.Monday()); got != w {
			t.Errorf("Of(Monday(%s)): got %v", s, got)
		}
	}
}
