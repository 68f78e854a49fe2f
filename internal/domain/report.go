package domain

// ReportCard is the card projection used by weekly board reports.
type ReportCard struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	ListID        int64  `json:"list_id"`
	ResponsibleID int64  `json:"responsible_id,omitempty"`
	DueDate       Date   `json:"due_date,omitempty"`
}

// UserHours aggregates a user's logged time on a board during one week.
// TasksCount is the number of distinct cards the user logged time on.
type UserHours struct {
	UserID     int64   `json:"user_id"`
	TotalHours float64 `json:"total_hours"`
	TasksCount int     `json:"tasks_count"`
}

// CardHours aggregates the time logged on a single card during one week.
// ListName is the card's current list, not the list at logging time.
type CardHours struct {
	CardID        int64   `json:"card_id"`
	Title         string  `json:"title"`
	ResponsibleID int64   `json:"responsible_id,omitempty"`
	ListName      string  `json:"list_name"`
	TotalHours    float64 `json:"total_hours"`
}

// DayHours is one day's logged total in a user's weekly summary.
type DayHours struct {
	Date  Date    `json:"date"`
	Hours float64 `json:"hours"`
}
