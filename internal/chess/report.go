package chess

import (
	"fmt"
	"strings"
)

// FormatSetup echoes the finished setup back to the user.
func FormatSetup(white WhitePiece, black *BlackPieces) string {
	entries := make([]string, 0, black.Len())
	for _, sq := range black.Squares() {
		kind, _ := black.At(sq)
		entries = append(entries, fmt.Sprintf("%s: %s", sq, kind))
	}

	var sb strings.Builder
	sb.WriteString("Game setup complete!\n")
	fmt.Fprintf(&sb, "White piece: %s\n", white)
	fmt.Fprintf(&sb, "Black pieces: {%s}\n", strings.Join(entries, ", "))
	return sb.String()
}

func FormatCaptures(captures []Capture) string {
	if len(captures) == 0 {
		return "No capturable pieces.\n"
	}
	entries := make([]string, len(captures))
	for i, c := range captures {
		entries[i] = c.String()
	}
	return fmt.Sprintf("Capturable black pieces: %s\n", strings.Join(entries, ", "))
}
