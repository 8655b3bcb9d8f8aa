package models

// Label represents a tag that can be applied to tasks
type Label struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID implements the GetID interface for quiet mode output
func (l *Label) GetID() int {
	return l.ID
}

// CreateLabel is the payload for creating a label
type CreateLabel struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
