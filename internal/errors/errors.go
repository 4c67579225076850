// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not in the current legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidDepth indicates a perft depth below one.
	ErrInvalidDepth = errors.New("invalid perft depth")

	// ErrGameNotFound indicates an unknown game session ID.
	ErrGameNotFound = errors.New("game not found")

	// ErrNothingToUndo indicates an undo on a game with no moves played.
	ErrNothingToUndo = errors.New("no move to undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENField names one of the six FEN fields.
type FENField int

const (
	FieldCount FENField = iota // the string does not have six fields
	FieldPlacement
	FieldSideToMove
	FieldCastling
	FieldEnPassant
	FieldHalfmove
	FieldFullmove
)

var fenFieldNames = [...]string{
	"field count", "piece placement", "side to move", "castling",
	"en passant", "halfmove clock", "fullmove number",
}

// String returns the name of the field.
func (f FENField) String() string {
	if f >= 0 && int(f) < len(fenFieldNames) {
		return fenFieldNames[f]
	}
	return "unknown field"
}

// FENError reports which FEN field failed validation.
type FENError struct {
	Err    error    // The underlying error, normally ErrInvalidFEN
	Field  FENField // The field that failed
	Value  string   // The offending field text (empty for FieldCount)
	Reason string   // Short explanation
}

// Error returns a formatted error message including the field context.
func (e *FENError) Error() string {
	var parts []string
	parts = append(parts, e.Field.String())
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	context := strings.Join(parts, " ")

	if e.Err != nil {
		return fmt.Sprintf("%v: %s", e.Err, context)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError wraps a move rejection with the move text and the position
// it was attempted in.
type MoveError struct {
	Err  error  // The underlying error, normally ErrIllegalMove
	Move string // UCI text of the rejected move
	FEN  string // Position the move was attempted in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}
	context := strings.Join(parts, " in ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// InternalError signals a broken engine invariant. It is a programming
// defect, not a user-facing error, and is raised with panic.
type InternalError struct {
	Op     string // Operation that detected the inconsistency
	Detail string
}

// Error returns the formatted defect description.
func (e *InternalError) Error() string {
	return fmt.Sprintf("internal inconsistency in %s: %s", e.Op, e.Detail)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It is a convenience re-export so callers need only this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
