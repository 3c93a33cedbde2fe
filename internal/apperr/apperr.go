// Package apperr defines the error taxonomy shared by the tracker
// core: not-found, invalid-transition, validation, and collaborator
// failures. Callers classify errors with the Is* helpers rather than
// inspecting messages.
package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError reports that an entity id has no backing row.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NewNotFound returns a NotFoundError for the given entity kind and id.
func NewNotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InvalidTransitionError reports a lifecycle move that the state
// machine does not permit.
type InvalidTransitionError struct {
	From   string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s: %s", e.From, e.Reason)
}

// NewInvalidTransition returns an InvalidTransitionError.
func NewInvalidTransition(from, reason string) error {
	return &InvalidTransitionError{From: from, Reason: reason}
}

// IsInvalidTransition reports whether err is (or wraps) an
// InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var it *InvalidTransitionError
	return errors.As(err, &it)
}

// ValidationError reports a rejected field value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// NewValidation returns a ValidationError for the given field.
func NewValidation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CollaboratorError wraps an opaque failure from an external
// collaborator (the store or the notification feed). The operation is
// terminal for the caller; the core never retries.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e *CollaboratorError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// NewCollaborator wraps err as a CollaboratorError for operation op.
func NewCollaborator(op string, err error) error {
	return &CollaboratorError{Op: op, Err: err}
}

// IsCollaborator reports whether err is (or wraps) a CollaboratorError.
func IsCollaborator(err error) bool {
	var ce *CollaboratorError
	return errors.As(err, &ce)
}
