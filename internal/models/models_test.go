package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		kind     error
		message  string
		notKinds []error
	}{
		{"not found", &NotFoundError{ID: 7}, ErrNotFound, "entity 7 not found", []error{ErrDuplicate, ErrUnexpected}},
		{"duplicate", &DuplicateError{ID: 3}, ErrDuplicate, "duplicate of entity 3", []error{ErrNotFound, ErrUnexpected}},
		{"unexpected", &UnexpectedError{Op: "get task", Err: errors.New("disk full")}, ErrUnexpected, "get task: disk full", []error{ErrNotFound, ErrDuplicate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("wrapped: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.kind)
			assert.Equal(t, tt.message, tt.err.Error())
			for _, other := range tt.notKinds {
				assert.NotErrorIs(t, wrapped, other)
			}
		})
	}
}

func TestErrors_AsCarriesID(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create label: %w", &DuplicateError{ID: 42})

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, 42, dup.ID)
}

func TestUnexpected(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Unexpected("op", nil))

	cause := errors.New("boom")
	err := Unexpected("delete task", cause)
	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, cause)

	// Kinded errors pass through untouched
	nf := &NotFoundError{ID: 1}
	assert.Same(t, nf, Unexpected("get task", nf))
}

// ============================================================================
// Wire Shape Tests
// ============================================================================

func TestTask_JSONShape(t *testing.T) {
	t.Parallel()

	task := Task{ID: 1, Title: "T", Labels: []Label{{ID: 2, Name: "work"}}}
	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"T","completed":false,"labels":[{"id":2,"name":"work"}]}`, string(data))
}

func TestUpdateTask_DistinguishesOmittedFromEmptyLabels(t *testing.T) {
	t.Parallel()

	var omitted UpdateTask
	require.NoError(t, json.Unmarshal([]byte(`{"completed":true}`), &omitted))
	assert.Nil(t, omitted.Labels)
	require.NotNil(t, omitted.Completed)
	assert.True(t, *omitted.Completed)

	var empty UpdateTask
	require.NoError(t, json.Unmarshal([]byte(`{"labels":[]}`), &empty))
	require.NotNil(t, empty.Labels)
	assert.Empty(t, *empty.Labels)
}

func TestTask_LabelIDs(t *testing.T) {
	t.Parallel()

	task := &Task{Labels: []Label{{ID: 5}, {ID: 2}}}
	assert.Equal(t, []int{5, 2}, task.LabelIDs())
	assert.Equal(t, 0, (&Task{}).GetID())
}
