package chess

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput = errors.New("expected a piece name and a coordinate")
	ErrInvalidSquare  = errors.New("invalid square")
	ErrUnknownPiece   = errors.New("unknown piece")
	ErrWhitePieceKind = errors.New("white piece must be a pawn or a rook")
	ErrWhiteSquare    = errors.New("square is held by the white piece")
	ErrSquareOccupied = errors.New("square already holds a black piece")
	ErrLimitExceeded  = errors.New("piece limit exceeded")
	ErrTooManyPieces  = errors.New("too many black pieces")
	ErrNoBlackPieces  = errors.New("at least one black piece is required")
)

// LimitError reports a placement rejected because the black side already
// has as many pieces of that kind as a standard set allows.
type LimitError struct {
	Kind  PieceKind
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: at most %d %s", ErrLimitExceeded, e.Limit, e.Kind)
}

func (e *LimitError) Unwrap() error {
	return ErrLimitExceeded
}
