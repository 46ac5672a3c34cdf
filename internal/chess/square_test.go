package chess

import (
	"errors"
	"testing"
)

func TestIsValidSquareAcceptsEveryBoardSquare(t *testing.T) {
	for file := byte('a'); file <= 'h'; file++ {
		for rank := byte('1'); rank <= '8'; rank++ {
			label := string([]byte{file, rank})
			if !IsValidSquare(label) {
				t.Errorf("IsValidSquare(%q) = false, expected true", label)
			}
		}
	}
}

func TestIsValidSquare(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"e4", true},
		{"a1", true},
		{"h8", true},
		{"i4", false},
		{"e9", false},
		{"e0", false},
		{"e", false},
		{"", false},
		{"e44", false},
		{"E4", false},
		{"4e", false},
		{"ee", false},
		{" e4", false},
	}

	for _, test := range tests {
		if result := IsValidSquare(test.input); result != test.expected {
			t.Errorf("IsValidSquare(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("c5")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sq != (Square{File: 'c', Rank: 5}) {
		t.Errorf("Expected c5, got %v", sq)
	}
	if sq.String() != "c5" {
		t.Errorf("Expected String() c5, got %s", sq.String())
	}

	if _, err := ParseSquare("z9"); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("Expected ErrInvalidSquare, got %v", err)
	}
}

func TestParsePieceKind(t *testing.T) {
	for _, kind := range PieceKinds {
		got, err := ParsePieceKind(string(kind))
		if err != nil {
			t.Errorf("ParsePieceKind(%s) returned error %v", kind, err)
		}
		if got != kind {
			t.Errorf("ParsePieceKind(%s) = %s", kind, got)
		}
	}

	for _, name := range []string{"", "Pawn", "dragon", "k"} {
		if _, err := ParsePieceKind(name); !errors.Is(err, ErrUnknownPiece) {
			t.Errorf("ParsePieceKind(%q): expected ErrUnknownPiece, got %v", name, err)
		}
	}
}

func TestParseWhitePiece(t *testing.T) {
	tests := []struct {
		line     string
		expected WhitePiece
		err      error
	}{
		{"pawn c5", WhitePiece{Kind: Pawn, Square: Square{'c', 5}}, nil},
		{"rook a1", WhitePiece{Kind: Rook, Square: Square{'a', 1}}, nil},
		{"  rook   h8 ", WhitePiece{Kind: Rook, Square: Square{'h', 8}}, nil},
		{"pawn", WhitePiece{}, ErrMalformedInput},
		{"pawn c5 extra", WhitePiece{}, ErrMalformedInput},
		{"", WhitePiece{}, ErrMalformedInput},
		{"queen d1", WhitePiece{}, ErrWhitePieceKind},
		{"dragon d1", WhitePiece{}, ErrWhitePieceKind},
		{"pawn i9", WhitePiece{}, ErrInvalidSquare},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			got, err := ParseWhitePiece(test.line)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Expected %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != test.expected {
				t.Errorf("Expected %v, got %v", test.expected, got)
			}
		})
	}
}

func TestParseBlackEntry(t *testing.T) {
	kind, sq, err := ParseBlackEntry("knight a5")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if kind != Knight || sq != (Square{'a', 5}) {
		t.Errorf("Expected knight a5, got %s %s", kind, sq)
	}

	if _, _, err := ParseBlackEntry("knight"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput, got %v", err)
	}
	if _, _, err := ParseBlackEntry("wizard a5"); !errors.Is(err, ErrUnknownPiece) {
		t.Errorf("Expected ErrUnknownPiece, got %v", err)
	}
	if _, _, err := ParseBlackEntry("knight a9"); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("Expected ErrInvalidSquare, got %v", err)
	}
}
