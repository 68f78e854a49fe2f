package domain

import "time"

// WorkLog is a dated record of hours spent by a user on a card.
type WorkLog struct {
	ID        int64     `json:"id"`
	CardID    int64     `json:"card_id"`
	UserID    int64     `json:"user_id"`
	Date      Date      `json:"date"`
	Hours     float64   `json:"hours"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Touch updates the worklog's modification timestamp.
func (w *WorkLog) Touch() {
	w.UpdatedAt = time.Now()
}

// WorkLogUpdate is an explicit partial update for a worklog.
type WorkLogUpdate struct {
	Date  *Date
	Hours *float64
	Note  *string
}

// Apply merges the set fields into the worklog and touches it.
func (u WorkLogUpdate) Apply(w *WorkLog) {
	if u.Date != nil {
		w.Date = *u.Date
	}
	if u.Hours != nil {
		w.Hours = *u.Hours
	}
	if u.Note != nil {
		w.Note = *u.Note
	}
	w.Touch()
}
