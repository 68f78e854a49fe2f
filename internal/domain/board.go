package domain

// Seed list names created for every new user's default board.
// "Por hacer" doubles as the default landing list for new cards.
const (
	ListNameTodo       = "Por hacer"
	ListNameInProgress = "En curso"
	ListNameDone       = "Hecho"
)

// DefaultBoardName is the name of the board created at registration.
const DefaultBoardName = "Tablero principal"

// Board is a user-owned kanban workspace containing lists and cards.
type Board struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

// List is a named, ordered column within a board.
// Order is an ordering hint, not a strictly enforced unique position.
type List struct {
	ID      int64  `json:"id"`
	BoardID int64  `json:"board_id"`
	Name    string `json:"name"`
	Order   int    `json:"order"`
}
