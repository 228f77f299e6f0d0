package model

// Status is the lifecycle state of a todo.
type Status string

// Todo status values.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is the urgency of a todo.
type Priority string

// Todo priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the known priority values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank maps a priority to its sort rank, high first. SQLite's text collation
// would order the raw values high < low < medium, so list reads remap to this
// numeric rank before sorting.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 3
}

// Todo is one unit of work. IDs are caller-supplied, not auto-assigned: the
// create path of a save inserts the given id as-is.
type Todo struct {
	ID         int64    `json:"id" db:"id"`
	TodoListID int64    `json:"todo_list_id" db:"todo_list_id"`
	Content    string   `json:"content" db:"content"`
	Status     Status   `json:"status" db:"status"`
	Priority   Priority `json:"priority" db:"priority"`
	CreatedAt  int64    `json:"created_at" db:"created_at"`
	UpdatedAt  int64    `json:"updated_at" db:"updated_at"`
}
