package model

// Setting is a generic key/value row. The table is reserved for future use;
// the only writer today is the store itself, which records an instance id on
// first open.
type Setting struct {
	Key   string `json:"key" db:"key"`
	Value string `json:"value" db:"value"`
}
