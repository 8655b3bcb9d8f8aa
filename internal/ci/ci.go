// Package ci runs the tally checks (format, vet, test, coverage, build) concurrently
// and prints a pass/fail summary.
package ci

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

const (
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// CoverageThreshold is the minimum total statement coverage in percent
const CoverageThreshold = 60.0

// Step is one check. Check inspects the command output and returns a failure
// message, or "" when the step passed.
type Step struct {
	Name  string
	Cmd   []string
	Check func(output string) string
}

type StepResult struct {
	Name    string
	Passed  bool
	Output  string
	Message string
}

type Runner struct {
	steps   []Step
	out     io.Writer
	results []StepResult
	mu      sync.Mutex
}

// NewRunner creates a runner printing to out
func NewRunner(out io.Writer, steps ...Step) *Runner {
	return &Runner{
		steps:   steps,
		out:     out,
		results: make([]StepResult, 0, len(steps)),
	}
}

// DefaultSteps are the checks run by mage ci
func DefaultSteps() []Step {
	return []Step{
		{Name: "Format Check", Cmd: []string{"gofmt", "-s", "-l", "."}, Check: checkUnformatted},
		{Name: "Vet", Cmd: []string{"go", "vet", "./..."}},
		{Name: "Test", Cmd: []string{"go", "test", "-race", "-coverprofile=coverage.out", "-covermode=atomic", "./..."}},
		{Name: "Build", Cmd: []string{"go", "build", "-o", "bin/tally", "."}},
	}
}

// CoverageStep reads coverage.out; run it after the Test step
func CoverageStep() Step {
	return Step{
		Name: "Coverage Threshold",
		Cmd:  []string{"go", "tool", "cover", "-func=coverage.out"},
		Check: func(output string) string {
			coverage, ok := ParseCoverage(output)
			if !ok {
				return "Failed to read coverage"
			}
			if coverage < CoverageThreshold {
				return fmt.Sprintf("Coverage is %.1f%% - below %.0f%% threshold", coverage, CoverageThreshold)
			}
			return ""
		},
	}
}

func (r *Runner) addResult(result StepResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

// Run executes all steps concurrently and returns 1 if any failed
func (r *Runner) Run(ctx context.Context) int {
	fmt.Fprintf(r.out, "%s======================================%s\n", colorBlue, colorReset)
	fmt.Fprintf(r.out, "%s     Running CI Pipeline             %s\n", colorBlue, colorReset)
	fmt.Fprintf(r.out, "%s======================================%s\n", colorBlue, colorReset)
	fmt.Fprintln(r.out)

	var wg sync.WaitGroup
	for _, step := range r.steps {
		wg.Add(1)
		go func(s Step) {
			defer wg.Done()
			r.addResult(runStep(ctx, s))
		}(step)
	}
	wg.Wait()

	return r.printSummary()
}

// Results returns the finished step results
func (r *Runner) Results() []StepResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]StepResult(nil), r.results...)
}

func runStep(ctx context.Context, s Step) StepResult {
	cmd := exec.CommandContext(ctx, s.Cmd[0], s.Cmd[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return StepResult{
			Name:    s.Name,
			Output:  out.String(),
			Message: fmt.Sprintf("%s failed: %v", s.Name, err),
		}
	}

	if s.Check != nil {
		if msg := s.Check(out.String()); msg != "" {
			return StepResult{Name: s.Name, Output: out.String(), Message: msg}
		}
	}

	return StepResult{Name: s.Name, Passed: true, Message: s.Name + " passed"}
}

func checkUnformatted(output string) string {
	if strings.TrimSpace(output) != "" {
		return "Files not formatted (run 'gofmt -s -w .')"
	}
	return ""
}

// ParseCoverage extracts the total percentage from go tool cover -func output
func ParseCoverage(output string) (float64, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return 0, false
		}
		var coverage float64
		if _, err := fmt.Sscanf(fields[len(fields)-1], "%f%%", &coverage); err != nil {
			return 0, false
		}
		return coverage, true
	}
	return 0, false
}

func (r *Runner) printSummary() int {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s======================================%s\n", colorBlue, colorReset)
	fmt.Fprintf(r.out, "%s          CI Summary                 %s\n", colorBlue, colorReset)
	fmt.Fprintf(r.out, "%s======================================%s\n", colorBlue, colorReset)
	fmt.Fprintln(r.out)

	// passed first, then failed
	var passed, failed []StepResult
	for _, result := range r.Results() {
		if result.Passed {
			passed = append(passed, result)
		} else {
			failed = append(failed, result)
		}
	}

	for _, result := range passed {
		fmt.Fprintf(r.out, "%sPASS%s  %s\n", colorGreen, colorReset, result.Name)
	}

	for _, result := range failed {
		fmt.Fprintf(r.out, "%sFAIL%s  %s", colorRed, colorReset, result.Name)
		if result.Message != "" {
			fmt.Fprintf(r.out, " - %s", result.Message)
		}
		fmt.Fprintln(r.out)
		if result.Output != "" {
			fmt.Fprintf(r.out, "%s%s%s\n", colorYellow, result.Output, colorReset)
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s======================================%s\n", colorBlue, colorReset)
	if len(failed) == 0 {
		fmt.Fprintf(r.out, "%s     All CI steps passed             %s\n", colorGreen, colorReset)
	} else {
		fmt.Fprintf(r.out, "%s     CI Pipeline Failed              %s\n", colorRed, colorReset)
		fmt.Fprintf(r.out, "%s     Failed: %d/%d steps%s\n", colorRed, len(failed), len(passed)+len(failed), colorReset)
	}
	fmt.Fprintf(r.out, "%s======================================%s\n", colorBlue, colorReset)

	if len(failed) > 0 {
		return 1
	}
	return 0
}
