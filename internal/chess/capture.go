package chess

type direction struct {
	df, dr int
}

// Rook rays are searched north, south, west, east.
var rookDirections = []direction{
	{0, 1},
	{0, -1},
	{-1, 0},
	{1, 0},
}

// Pawn captures are listed left diagonal first.
var pawnCaptureDirections = []direction{
	{-1, 1},
	{1, 1},
}

// FindCapturablePieces returns the black pieces the white piece can take
// with a single move, grouped by direction in a fixed order. Kinds other
// than pawn and rook have no capture rule and yield nothing.
func FindCapturablePieces(white WhitePiece, black *BlackPieces) []Capture {
	switch white.Kind {
	case Pawn:
		return pawnCaptures(white.Square, black)
	case Rook:
		return rookCaptures(white.Square, black)
	}
	return nil
}

func pawnCaptures(from Square, black *BlackPieces) []Capture {
	var captures []Capture
	for _, d := range pawnCaptureDirections {
		// Targets past the edge are never keys of black.
		target := from.offset(d.df, d.dr)
		if kind, ok := black.At(target); ok {
			captures = append(captures, Capture{Square: target, Kind: kind})
		}
	}
	return captures
}

func rookCaptures(from Square, black *BlackPieces) []Capture {
	var captures []Capture
	for _, d := range rookDirections {
		sq := from
		for {
			sq = sq.offset(d.df, d.dr)
			if !sq.onBoard() {
				break
			}
			if kind, ok := black.At(sq); ok {
				captures = append(captures, Capture{Square: sq, Kind: kind})
				break
			}
		}
	}
	return captures
}
