package task

import (
	"context"
	"fmt"
	"testing"

	"github.com/thenoetrevino/tally/internal/testutil"
)

// ============================================================================
// BENCHMARKS
// ============================================================================

// BenchmarkListTasks measures the join and fold over a populated store
func BenchmarkListTasks(b *testing.B) {
	repo := testutil.SetupTestRepo(b)

	var labelIDs []int
	for i := range 5 {
		labelIDs = append(labelIDs, testutil.CreateTestLabel(b, repo, fmt.Sprintf("label-%d", i)).ID)
	}
	for i := range 200 {
		testutil.CreateTestTask(b, repo, fmt.Sprintf("task-%d", i), labelIDs[:i%len(labelIDs)]...)
	}

	svc := NewService(repo, discard)
	ctx := context.Background()

	for b.Loop() {
		if _, err := svc.ListTasks(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
