package model

// TodoList is a named collection of todos belonging to exactly one project.
//
// NumCompleted and TotalCount are derived statistics maintained by storage
// triggers whenever member todos are inserted, updated, or deleted. They are
// initialized to zero at creation, so downstream arithmetic never has to
// handle a null.
type TodoList struct {
	ID           int64  `json:"id" db:"id"`
	ProjectID    int64  `json:"project_id" db:"project_id"`
	Name         string `json:"name" db:"name"`
	Description  string `json:"description" db:"description"`
	NumCompleted int64  `json:"num_completed" db:"num_completed"`
	TotalCount   int64  `json:"total_count" db:"total_count"`
	CreatedAt    int64  `json:"created_at" db:"created_at"`
	UpdatedAt    int64  `json:"updated_at" db:"updated_at"`
}
