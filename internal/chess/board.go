package chess

import (
	"cmp"
	"fmt"
	"slices"
)

// BlackPieces holds the black side of the setup. Pieces are only ever
// added, and every addition is checked against the white square, the
// squares already taken and the per-kind limits.
type BlackPieces struct {
	white  Square
	pieces map[Square]PieceKind
	counts map[PieceKind]int
}

func NewBlackPieces(white Square) *BlackPieces {
	return &BlackPieces{
		white:  white,
		pieces: make(map[Square]PieceKind),
		counts: make(map[PieceKind]int),
	}
}

// Place puts a black piece of the given kind on sq. The set is left
// unchanged when an error is returned.
func (b *BlackPieces) Place(kind PieceKind, sq Square) error {
	limit, ok := Limits[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPiece, kind)
	}
	if !sq.onBoard() {
		return fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}
	if sq == b.white {
		return fmt.Errorf("%w: %s", ErrWhiteSquare, sq)
	}
	if held, taken := b.pieces[sq]; taken {
		return fmt.Errorf("%w: %s on %s", ErrSquareOccupied, held, sq)
	}
	if len(b.pieces) >= MaxBlackPieces {
		return fmt.Errorf("%w: limit is %d", ErrTooManyPieces, MaxBlackPieces)
	}
	if b.counts[kind] >= limit {
		return &LimitError{Kind: kind, Limit: limit}
	}

	b.pieces[sq] = kind
	b.counts[kind]++
	return nil
}

func (b *BlackPieces) Len() int {
	return len(b.pieces)
}

func (b *BlackPieces) Count(kind PieceKind) int {
	return b.counts[kind]
}

// Remaining returns how many more pieces of kind may still be placed.
func (b *BlackPieces) Remaining(kind PieceKind) int {
	return Limits[kind] - b.counts[kind]
}

func (b *BlackPieces) Full() bool {
	return len(b.pieces) >= MaxBlackPieces
}

func (b *BlackPieces) At(sq Square) (PieceKind, bool) {
	kind, ok := b.pieces[sq]
	return kind, ok
}

// Squares returns the occupied squares in board order: a1, b1, ... h8.
func (b *BlackPieces) Squares() []Square {
	squares := make([]Square, 0, len(b.pieces))
	for sq := range b.pieces {
		squares = append(squares, sq)
	}
	slices.SortFunc(squares, func(x, y Square) int {
		if c := cmp.Compare(x.Rank, y.Rank); c != 0 {
			return c
		}
		return cmp.Compare(x.File, y.File)
	})
	return squares
}
