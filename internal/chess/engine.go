package chess

import (
	"github.com/notnil/chess"
)

// Engine mirrors a finished setup onto a notnil/chess board, which gives
// us FEN export and a color-aware drawing of the position.
type Engine struct {
	board *chess.Board
}

func NewEngine(white WhitePiece, black *BlackPieces) *Engine {
	pieces := map[chess.Square]chess.Piece{
		toSquare(white.Square): chess.NewPiece(toPieceType(white.Kind), chess.White),
	}
	for _, sq := range black.Squares() {
		kind, _ := black.At(sq)
		pieces[toSquare(sq)] = chess.NewPiece(toPieceType(kind), chess.Black)
	}

	return &Engine{
		board: chess.NewBoard(pieces),
	}
}

// FEN returns the piece placement field of the position.
func (e *Engine) FEN() string {
	return e.board.String()
}

// Draw renders the board with unicode pieces, white and black distinct.
func (e *Engine) Draw() string {
	return e.board.Draw()
}

func toSquare(sq Square) chess.Square {
	file := int(sq.File - 'a')
	rank := sq.Rank - 1
	return chess.Square(rank*8 + file)
}

func toPieceType(kind PieceKind) chess.PieceType {
	switch kind {
	case King:
		return chess.King
	case Queen:
		return chess.Queen
	case Rook:
		return chess.Rook
	case Bishop:
		return chess.Bishop
	case Knight:
		return chess.Knight
	case Pawn:
		return chess.Pawn
	default:
		return chess.NoPieceType
	}
}
