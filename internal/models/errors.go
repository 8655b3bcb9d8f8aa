package models

import (
	"errors"
	"fmt"
)

// Error kinds returned by the stores. Match them with errors.Is;
// use errors.As to reach the typed value and its id.
var (
	// ErrNotFound indicates the referenced task or label does not exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a create collided with an existing unique value
	ErrDuplicate = errors.New("duplicate")

	// ErrUnexpected indicates a storage failure the caller cannot recover from
	ErrUnexpected = errors.New("unexpected storage error")
)

// NotFoundError carries the id that could not be found
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateError carries the id of the entity that already holds the value
type DuplicateError struct {
	ID int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate of entity %d", e.ID)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// UnexpectedError wraps a lower-level storage fault with the operation that hit it
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// Unexpected wraps err as an UnexpectedError. Errors that already carry
// a kind are returned unchanged.
func Unexpected(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) || errors.Is(err, ErrUnexpected) {
		return err
	}
	return &UnexpectedError{Op: op, Err: err}
}
