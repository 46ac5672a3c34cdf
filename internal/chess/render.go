package chess

import (
	"fmt"
	"strings"
)

const (
	emptySymbol = "."
	boardRule   = "    _______________"
	fileHeader  = "    a b c d e f g h"
)

// RenderBoard draws the board as an 8 row letter grid, rank 8 first, with
// the file letters underneath. Both colors use the same upper case
// letters; which piece is white is only known from the setup summary.
func RenderBoard(white WhitePiece, black *BlackPieces) string {
	board := make(map[Square]string, 64)
	for rank := 1; rank <= 8; rank++ {
		for file := byte('a'); file <= 'h'; file++ {
			board[Square{File: file, Rank: rank}] = emptySymbol
		}
	}

	board[white.Square] = white.Kind.Symbol()
	for sq, kind := range black.pieces {
		board[sq] = kind.Symbol()
	}

	var sb strings.Builder
	for rank := 8; rank >= 1; rank-- {
		fmt.Fprintf(&sb, "%d |", rank)
		for file := byte('a'); file <= 'h'; file++ {
			sb.WriteString(" ")
			sb.WriteString(board[Square{File: file, Rank: rank}])
		}
		sb.WriteString("\n")
	}
	sb.WriteString(boardRule + "\n")
	sb.WriteString(fileHeader + "\n")
	return sb.String()
}
