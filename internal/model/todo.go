package model

// Todo is the domain model for a todo entry.
// Identity is the pointer, not the text; two entries may share text.
type Todo struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}
