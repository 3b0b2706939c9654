// Package errors provides sentinel errors and error types for hotseat-chess.
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

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPiece indicates a move from an empty square.
	ErrNoPiece = errors.New("no piece on source square")

	// ErrNotYourTurn indicates a move of the side not to move.
	ErrNotYourTurn = errors.New("piece belongs to the side not to move")

	// ErrGameOver indicates a move after checkmate or stalemate.
	ErrGameOver = errors.New("game is over")

	// ErrOffBoard indicates a coordinate outside the 8x8 grid. Board access
	// panics with it: reaching it is a programming error.
	ErrOffBoard = errors.New("square off the board")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStopped indicates a count abandoned before it finished.
	ErrStopped = errors.New("stopped before completion")
)

// MoveError wraps a rejected move with its game context. It implements the
// error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply the move would have been
	Side string // Side to move when the move was attempted
	Move string // Coordinate text of the move, e.g. "e2e4"
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError describes which field of a FEN string could not be read.
type FENError struct {
	Err      error  // The underlying error
	Field    string // FEN field name, e.g. "placement"
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with the field and context.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
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
