package chess

import "fmt"

type PieceKind string

const (
	King   PieceKind = "king"
	Queen  PieceKind = "queen"
	Rook   PieceKind = "rook"
	Bishop PieceKind = "bishop"
	Knight PieceKind = "knight"
	Pawn   PieceKind = "pawn"
)

// PieceKinds lists every kind in the order they are offered to the user.
var PieceKinds = []PieceKind{Pawn, Rook, Knight, Bishop, Queen, King}

// Limits maps each kind to the number of black pieces of that kind a
// standard set contains.
var Limits = map[PieceKind]int{
	King:   1,
	Queen:  1,
	Rook:   2,
	Bishop: 2,
	Knight: 2,
	Pawn:   8,
}

// MaxBlackPieces is the size of a full black set.
const MaxBlackPieces = 16

// Symbol returns the single letter used on the text board.
func (k PieceKind) Symbol() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return "?"
}

// Square names a board position by file letter and rank number. Values
// off the board are allowed so that callers can probe neighbours freely;
// they never match a placed piece.
type Square struct {
	File byte
	Rank int
}

func (s Square) String() string {
	return fmt.Sprintf("%c%d", s.File, s.Rank)
}

func (s Square) onBoard() bool {
	return s.File >= 'a' && s.File <= 'h' && s.Rank >= 1 && s.Rank <= 8
}

func (s Square) offset(df, dr int) Square {
	return Square{File: byte(int(s.File) + df), Rank: s.Rank + dr}
}

// WhitePiece is the single piece white controls.
type WhitePiece struct {
	Kind   PieceKind
	Square Square
}

func (w WhitePiece) String() string {
	return fmt.Sprintf("(%s, %s)", w.Kind, w.Square)
}

// Capture is a black piece the white piece can take in one move.
type Capture struct {
	Square Square
	Kind   PieceKind
}

func (c Capture) String() string {
	return fmt.Sprintf("(%s, %s)", c.Square, c.Kind)
}
