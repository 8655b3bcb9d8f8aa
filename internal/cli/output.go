package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/tally/internal/cli/styles"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/validation"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to stdout and stderr
	Out    io.Writer
	ErrOut io.Writer
}

// Deleted is the result of a delete command
type Deleted struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
}

// Message is a plain informational result
type Message struct {
	Text string `json:"message"`
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		return f.printIDs(data)
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	return f.writeError(code, message, suggestion, nil)
}

// Fail reports err in the active output mode
func (f *OutputFormatter) Fail(err error) error {
	var verr *validation.ValidationError
	if errors.As(err, &verr) {
		return f.writeError(ErrorCode(err), "validation failed", "", verr.Violations)
	}
	return f.writeError(ErrorCode(err), err.Error(), "", nil)
}

func (f *OutputFormatter) writeError(code, message, suggestion string, violations []validation.Violation) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		if len(violations) > 0 {
			errData["violations"] = violations
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	w := f.errOut()
	fmt.Fprintln(w, styles.ErrorStyle.Render("Error")+" "+message)
	for _, v := range violations {
		fmt.Fprintf(w, "  - %s\n", v.String())
	}
	if suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", suggestion)
	}
	return nil
}

// printIDs writes one id per line, or nothing for results without ids
func (f *OutputFormatter) printIDs(data any) error {
	w := f.out()
	switch v := data.(type) {
	case interface{ GetID() int }:
		_, err := fmt.Fprintf(w, "%d\n", v.GetID())
		return err
	case []*models.Task:
		for _, t := range v {
			if _, err := fmt.Fprintf(w, "%d\n", t.ID); err != nil {
				return err
			}
		}
	case []*models.Label:
		for _, l := range v {
			if _, err := fmt.Fprintf(w, "%d\n", l.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	w := f.out()
	var err error
	switch v := data.(type) {
	case *models.Task:
		_, err = fmt.Fprintln(w, styles.RenderTask(v))
	case []*models.Task:
		_, err = fmt.Fprintln(w, styles.RenderTaskList(v))
	case *models.Label:
		_, err = fmt.Fprintln(w, styles.SuccessStyle.Render("Label")+" "+styles.RenderLabelChip(*v)+fmt.Sprintf(" (ID: %d)", v.ID))
	case []*models.Label:
		_, err = fmt.Fprintln(w, styles.RenderLabelList(v))
	case *Deleted:
		_, err = fmt.Fprintf(w, "%s %s %d deleted\n", styles.SuccessStyle.Render("OK"), v.Kind, v.ID)
	case *Message:
		_, err = fmt.Fprintln(w, v.Text)
	default:
		_, err = fmt.Fprintf(w, "%+v\n", data)
	}
	return err
}
