package domain

import "time"

// Card is a task item belonging to a board and positioned in one list.
// UserID is the responsible user; zero means unassigned.
type Card struct {
	ID          int64     `json:"id"`
	BoardID     int64     `json:"board_id"`
	ListID      int64     `json:"list_id"`
	UserID      int64     `json:"user_id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     Date      `json:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Touch updates the card's modification timestamp.
func (c *Card) Touch() {
	c.UpdatedAt = time.Now()
}

// CardUpdate is an explicit partial update for a card.
// Only non-nil fields are applied; unknown fields cannot sneak in because
// every settable field is spelled out here.
type CardUpdate struct {
	Title       *string
	Description *string
	DueDate     *Date
	ListID      *int64
}

// Apply merges the set fields into the card and touches it.
// List moves are validated by the service before Apply is called.
func (u CardUpdate) Apply(c *Card) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.DueDate != nil {
		c.DueDate = *u.DueDate
	}
	if u.ListID != nil {
		c.ListID = *u.ListID
	}
	c.Touch()
}

// Label is a simple name+color tag attached to a card.
// Labels are removed together with their card.
type Label struct {
	ID     int64  `json:"id"`
	CardID int64  `json:"card_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// Subtask is a checklist entry on a card with a completion flag.
// Subtasks are removed together with their card.
type Subtask struct {
	ID        int64  `json:"id"`
	CardID    int64  `json:"card_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// SubtaskUpdate is an explicit partial update for a subtask.
type SubtaskUpdate struct {
	Title     *string
	Completed *bool
}

// Apply merges the set fields into the subtask.
func (u SubtaskUpdate) Apply(s *Subtask) {
	if u.Title != nil {
		s.Title = *u.Title
	}
	if u.Completed != nil {
		s.Completed = *u.Completed
	}
}

// CardSummary is a card augmented with the aggregates shown on the board:
// total logged hours, attached labels, and subtask completion counts.
type CardSummary struct {
	Card
	TotalHours        float64 `json:"total_hours"`
	Labels            []Label `json:"labels"`
	SubtasksTotal     int     `json:"subtasks_total"`
	SubtasksCompleted int     `json:"subtasks_completed"`
}
