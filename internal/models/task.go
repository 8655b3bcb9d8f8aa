package models

// Task represents a single tracked task with the labels attached to it.
// Labels is rebuilt from the task_labels relation on every read.
type Task struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Completed bool    `json:"completed"`
	Labels    []Label `json:"labels"`
}

// GetID implements the GetID interface for quiet mode output
func (t *Task) GetID() int {
	return t.ID
}

// LabelIDs returns the ids of the task's labels in order
func (t *Task) LabelIDs() []int {
	ids := make([]int, len(t.Labels))
	for i, l := range t.Labels {
		ids[i] = l.ID
	}
	return ids
}

// CreateTask is the payload for creating a task
type CreateTask struct {
	Title  string `json:"title" validate:"required,min=1,max=100"`
	Labels []int  `json:"labels"`
}

// UpdateTask is the payload for a partial task update.
// Fields with pointers are optional - nil means don't update.
// A non-nil Labels, even an empty one, replaces the task's whole label set.
type UpdateTask struct {
	Title     *string `json:"title,omitempty" validate:"omitnil,min=1,max=100"`
	Completed *bool   `json:"completed,omitempty"`
	Labels    *[]int  `json:"labels,omitempty"`
}
