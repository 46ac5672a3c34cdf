package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type placement struct {
	kind  PieceKind
	label string
}

func setup(t *testing.T, white WhitePiece, pieces ...placement) *BlackPieces {
	t.Helper()
	black := NewBlackPieces(white.Square)
	for _, p := range pieces {
		if err := black.Place(p.kind, sq(p.label)); err != nil {
			t.Fatalf("Place(%s, %s): %v", p.kind, p.label, err)
		}
	}
	return black
}

func TestFindCapturablePieces(t *testing.T) {
	tests := []struct {
		name     string
		white    WhitePiece
		black    []placement
		expected []Capture
	}{
		{
			name:  "pawn takes both diagonals left first",
			white: WhitePiece{Kind: Pawn, Square: sq("c5")},
			black: []placement{{Knight, "d6"}, {Bishop, "b6"}},
			expected: []Capture{
				{Square: sq("b6"), Kind: Bishop},
				{Square: sq("d6"), Kind: Knight},
			},
		},
		{
			name:     "pawn ignores pieces straight ahead and behind",
			white:    WhitePiece{Kind: Pawn, Square: sq("e4")},
			black:    []placement{{Pawn, "e5"}, {Pawn, "d3"}, {Pawn, "f3"}, {Rook, "f5"}},
			expected: []Capture{{Square: sq("f5"), Kind: Rook}},
		},
		{
			name:     "pawn on the a file only looks right",
			white:    WhitePiece{Kind: Pawn, Square: sq("a2")},
			black:    []placement{{Queen, "b3"}, {Knight, "h3"}},
			expected: []Capture{{Square: sq("b3"), Kind: Queen}},
		},
		{
			name:     "pawn on the h file only looks left",
			white:    WhitePiece{Kind: Pawn, Square: sq("h2")},
			black:    []placement{{Queen, "g3"}, {Knight, "a3"}},
			expected: []Capture{{Square: sq("g3"), Kind: Queen}},
		},
		{
			name:     "pawn on the last rank has nothing to take",
			white:    WhitePiece{Kind: Pawn, Square: sq("d8")},
			black:    []placement{{Queen, "c7"}, {King, "e7"}},
			expected: nil,
		},
		{
			name:  "rook north and south",
			white: WhitePiece{Kind: Rook, Square: sq("d4")},
			black: []placement{{Bishop, "d1"}, {Knight, "d7"}},
			expected: []Capture{
				{Square: sq("d7"), Kind: Knight},
				{Square: sq("d1"), Kind: Bishop},
			},
		},
		{
			name:     "rook stops at the first blocker",
			white:    WhitePiece{Kind: Rook, Square: sq("a1")},
			black:    []placement{{Pawn, "a5"}, {Pawn, "a3"}},
			expected: []Capture{{Square: sq("a3"), Kind: Pawn}},
		},
		{
			name:  "rook in all four directions",
			white: WhitePiece{Kind: Rook, Square: sq("e5")},
			black: []placement{
				{Bishop, "h5"}, {Knight, "b5"}, {Pawn, "e2"}, {Queen, "e8"},
				{Pawn, "a5"}, {Pawn, "e1"},
			},
			expected: []Capture{
				{Square: sq("e8"), Kind: Queen},
				{Square: sq("e2"), Kind: Pawn},
				{Square: sq("b5"), Kind: Knight},
				{Square: sq("h5"), Kind: Bishop},
			},
		},
		{
			name:     "rook ignores diagonals",
			white:    WhitePiece{Kind: Rook, Square: sq("d4")},
			black:    []placement{{Pawn, "e5"}, {Pawn, "c3"}},
			expected: nil,
		},
		{
			name:     "rook adjacent piece",
			white:    WhitePiece{Kind: Rook, Square: sq("h8")},
			black:    []placement{{King, "g8"}, {Queen, "f8"}},
			expected: []Capture{{Square: sq("g8"), Kind: King}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			black := setup(t, tt.white, tt.black...)
			got := FindCapturablePieces(tt.white, black)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("FindCapturablePieces mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFindCapturablePiecesOtherKinds(t *testing.T) {
	white := WhitePiece{Kind: Queen, Square: sq("d4")}
	black := setup(t, white, placement{Pawn, "d5"})

	if got := FindCapturablePieces(white, black); len(got) != 0 {
		t.Errorf("Expected no captures for a queen, got %v", got)
	}
}
