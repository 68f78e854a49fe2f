package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.May, 14)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2025-05-14"` {
		t.Errorf("marshal: got %s", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip: got %v, want %v", back, d)
	}
}

func TestDateZeroMarshalsNull(t *testing.T) {
	data, err := json.Marshal(Date{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "null" {
		t.Errorf("got %s, want null", data)
	}

	var d Date
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsZero() {
		t.Error("null should unmarshal to zero date")
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2025-13-01", "14/05/2025", "2025-05-14T00:00:00Z"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q): expected error", s)
		}
	}
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2025, time.January, 1)
	b := a.AddDays(1)

	if !b.After(a) || a.After(b) {
		t.Error("After is wrong")
	}
	if !a.Before(b) || b.Before(a) {
		t.Error("Before is wrong")
	}
}

func TestCardUpdateAppliesOnlySetFields(t *testing.T) {
	card := &Card{
		Title:       "original",
		Description: "desc",
		ListID:      3,
	}

	newTitle := "renamed"
	CardUpdate{Title: &newTitle}.Apply(card)

	if card.Title != "renamed" {
		t.Errorf("Title: got %q", card.Title)
	}
	if card.Description != "desc" {
		t.Errorf("Description should be untouched, got %q", card.Description)
	}
	if card.ListID != 3 {
		t.Errorf("ListID should be untouched, got %d", card.ListID)
	}
	if card.UpdatedAt.IsZero() {
		t.Error("Apply should touch UpdatedAt")
	}
}

func TestSubtaskUpdateApply(t *testing.T) {
	st := &Subtask{Title: "write tests", Completed: false}

	done := true
	SubtaskUpdate{Completed: &done}.Apply(st)

	if !st.Completed {
		t.Error("Completed should be set")
	}
	if st.Title != "write tests" {
		t.Errorf("Title should be untouched, got %q", st.Title)
	}
}

func TestWorkLogUpdateApply(t *testing.T) {
	wl := &WorkLog{Date: NewDate(2025, time.March, 3), Hours: 2, Note: "pairing"}

	hours := 4.5
	WorkLogUpdate{Hours: &hours}.Apply(wl)

	if wl.Hours != 4.5 {
		t.Errorf("Hours: got %v", wl.Hours)
	}
	if wl.Note != "pairing" {
		t.Errorf("Note should be untouched, got %q", wl.Note)
	}
	if wl.UpdatedAt.IsZero() {
		t.Error("Apply should touch UpdatedAt")
	}
}
