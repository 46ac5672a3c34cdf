package chess

import (
	"fmt"
	"strings"
)

// IsValidSquare reports whether text is a two character label such as
// "e4" with a file in a..h and a rank in 1..8.
func IsValidSquare(text string) bool {
	if len(text) != 2 {
		return false
	}
	file, rank := text[0], text[1]
	return file >= 'a' && file <= 'h' && rank >= '1' && rank <= '8'
}

func ParseSquare(text string) (Square, error) {
	if !IsValidSquare(text) {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, text)
	}
	return Square{File: text[0], Rank: int(text[1] - '0')}, nil
}

// IsPieceKind reports whether name is one of the six piece names.
func IsPieceKind(name string) bool {
	_, ok := Limits[PieceKind(name)]
	return ok
}

func ParsePieceKind(name string) (PieceKind, error) {
	if !IsPieceKind(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPiece, name)
	}
	return PieceKind(name), nil
}

// IsWhiteKind reports whether kind may be chosen for the white piece.
func IsWhiteKind(kind PieceKind) bool {
	return kind == Pawn || kind == Rook
}

// splitEntry splits a "<piece> <coord>" line into its two tokens.
func splitEntry(line string) (string, string, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("%w: got %d tokens", ErrMalformedInput, len(parts))
	}
	return parts[0], parts[1], nil
}

// ParseWhitePiece parses an entry such as "pawn c5".
func ParseWhitePiece(line string) (WhitePiece, error) {
	name, coord, err := splitEntry(line)
	if err != nil {
		return WhitePiece{}, err
	}
	if !IsWhiteKind(PieceKind(name)) {
		return WhitePiece{}, fmt.Errorf("%w: %q", ErrWhitePieceKind, name)
	}
	sq, err := ParseSquare(coord)
	if err != nil {
		return WhitePiece{}, err
	}
	return WhitePiece{Kind: PieceKind(name), Square: sq}, nil
}

// ParseBlackEntry parses an entry such as "knight a5". It does not check
// the square against the board state; see BlackPieces.Place.
func ParseBlackEntry(line string) (PieceKind, Square, error) {
	name, coord, err := splitEntry(line)
	if err != nil {
		return "", Square{}, err
	}
	kind, err := ParsePieceKind(name)
	if err != nil {
		return "", Square{}, err
	}
	sq, err := ParseSquare(coord)
	if err != nil {
		return "", Square{}, err
	}
	return kind, sq, nil
}
