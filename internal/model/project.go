package model

// Project is one row per uniquely-identified filesystem location.
// Location acts as the natural key used by bootstrap; Name defaults to the
// last path segment of Location at creation time.
type Project struct {
	ID                int64  `json:"id" db:"id"`
	Name              string `json:"name" db:"name"`
	Location          string `json:"location" db:"location"`
	DefaultTodoListID *int64 `json:"default_todo_list_id,omitempty" db:"default_todo_list_id"`
	CreatedAt         int64  `json:"created_at" db:"created_at"`
	UpdatedAt         int64  `json:"updated_at" db:"updated_at"`
}
