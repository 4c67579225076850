package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrInvalidDepth", ErrInvalidDepth, ErrInvalidDepth},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrNothingToUndo", ErrNothingToUndo, ErrNothingToUndo},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies that sentinels do not match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidFEN) {
		t.Error("errors.Is(ErrIllegalMove, ErrInvalidFEN) = true, want false")
	}
	if errors.Is(ErrInvalidFEN, ErrInvalidDepth) {
		t.Error("errors.Is(ErrInvalidFEN, ErrInvalidDepth) = true, want false")
	}
}

// TestFENError_Error verifies the error message format
func TestFENError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FENError
		contains []string
	}{
		{
			name: "full context",
			err: &FENError{
				Err:    ErrInvalidFEN,
				Field:  FieldEnPassant,
				Value:  "e4",
				Reason: "rank must be 3 or 6",
			},
			contains: []string{"invalid FEN", "en passant", `"e4"`, "rank must be 3 or 6"},
		},
		{
			name: "field count",
			err: &FENError{
				Err:    ErrInvalidFEN,
				Field:  FieldCount,
				Reason: "want 6 fields, got 4",
			},
			contains: []string{"field count", "got 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("FENError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestFENError_As verifies that errors.As works through further wrapping
func TestFENError_As(t *testing.T) {
	fenErr := &FENError{Err: ErrInvalidFEN, Field: FieldHalfmove, Value: "99"}
	wrapped := fmt.Errorf("loading position: %w", fenErr)

	var extracted *FENError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As(wrapped, *FENError) = false, want true")
	}
	if extracted.Field != FieldHalfmove {
		t.Errorf("extracted.Field = %v, want %v", extracted.Field, FieldHalfmove)
	}
	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError verifies message and unwrapping of MoveError
func TestMoveError(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrIllegalMove,
		Move: "e1g1",
		FEN:  "4k3/8/8/8/8/8/8/4K2R w - - 0 1",
	}

	msg := moveErr.Error()
	for _, s := range []string{"e1g1", "4k3/8", "illegal move"} {
		if !strings.Contains(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(moveErr, ErrIllegalMove) {
		t.Error("errors.Is(moveErr, ErrIllegalMove) = false, want true")
	}
	if got := (&MoveError{Err: ErrIllegalMove}).Error(); got != ErrIllegalMove.Error() {
		t.Errorf("bare MoveError.Error() = %q, want %q", got, ErrIllegalMove.Error())
	}
}

// TestInternalError verifies that internal errors are not illegal-move errors
func TestInternalError(t *testing.T) {
	err := &InternalError{Op: "perft", Detail: "generated move rejected"}
	if errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(InternalError, ErrIllegalMove) = true, want false")
	}
	if !strings.Contains(err.Error(), "perft") {
		t.Errorf("InternalError.Error() = %q, should contain %q", err.Error(), "perft")
	}
}

// TestWrap verifies Wrap and Wrapf
func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}

	err := Wrapf(ErrInvalidDepth, "depth %d", 0)
	if !Is(err, ErrInvalidDepth) {
		t.Errorf("Is(Wrapf(ErrInvalidDepth)) = false, want true")
	}
	if err.Error() != "depth 0: invalid perft depth" {
		t.Errorf("Wrapf() = %q, want %q", err.Error(), "depth 0: invalid perft depth")
	}
}
