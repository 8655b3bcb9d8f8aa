// Package styles holds the lipgloss styles for human-readable CLI output
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tally/internal/models"
)

// Palette
const (
	colorAccent  = "#7D56F4"
	colorSubtle  = "#6C6C6C"
	colorSuccess = "#04B575"
	colorError   = "#FF5F87"
	colorLabel   = "#F1A7FE"
)

var (
	// Text styles
	TitleStyle    = lipgloss.NewStyle().Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSubtle))
	FieldStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)) // For field names like "Labels:"

	// Status styles
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSuccess))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorError))

	chipStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLabel))
)

// RenderLabelChip renders a label as "[name]"
func RenderLabelChip(label models.Label) string {
	return chipStyle.Render("[" + label.Name + "]")
}

// checkbox renders the completion state
func checkbox(completed bool) string {
	if completed {
		return SuccessStyle.Render("[x]")
	}
	return SubtitleStyle.Render("[ ]")
}

func renderChips(labels []models.Label) string {
	chips := make([]string, len(labels))
	for i, l := range labels {
		chips[i] = RenderLabelChip(l)
	}
	return strings.Join(chips, " ")
}

// RenderTask renders a task with its fields on separate lines
func RenderTask(task *models.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n", checkbox(task.Completed), TitleStyle.Render(task.Title),
		SubtitleStyle.Render(fmt.Sprintf("#%d", task.ID)))

	labels := SubtitleStyle.Render("none")
	if len(task.Labels) > 0 {
		labels = renderChips(task.Labels)
	}
	fmt.Fprintf(&b, "  %s %s", FieldStyle.Render("Labels:"), labels)
	return b.String()
}

// RenderTaskLine renders a task on one line
// Format: "[ ] #3 Title [label] [label]"
func RenderTaskLine(task *models.Task) string {
	line := fmt.Sprintf("%s %s %s", checkbox(task.Completed),
		SubtitleStyle.Render(fmt.Sprintf("#%-4d", task.ID)), task.Title)
	if len(task.Labels) > 0 {
		line += " " + renderChips(task.Labels)
	}
	return line
}

// RenderTaskList renders one line per task
func RenderTaskList(tasks []*models.Task) string {
	if len(tasks) == 0 {
		return SubtitleStyle.Render("No tasks found")
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = RenderTaskLine(t)
	}
	return strings.Join(lines, "\n")
}

// RenderLabelList renders a table of labels
func RenderLabelList(labels []*models.Label) string {
	if len(labels) == 0 {
		return SubtitleStyle.Render("No labels found")
	}

	var b strings.Builder
	b.WriteString(FieldStyle.Render(fmt.Sprintf("  %-4s %s", "ID", "Name")))
	b.WriteString("\n  " + strings.Repeat("-", 30))
	for _, l := range labels {
		fmt.Fprintf(&b, "\n  %-4d %s", l.ID, l.Name)
	}
	return b.String()
}
