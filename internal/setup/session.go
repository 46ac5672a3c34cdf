// Package setup runs the interactive placement of the white piece and the
// black pieces over a line based console.
package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/justinabrahms/capturechess/internal/chess"
	"github.com/rs/zerolog"
)

const (
	whitePrompt = "Choose a figure (pawn or rook) and its coordinates (e.g. pawn c5): "
	blackPrompt = "Choose a figure from 1 to 16 and their coordinates (e.g.: knight a5), or type 'done' to finish: "
	doneCommand = "done"

	// Longest line accepted as an answer; anything longer is discarded.
	maxLineLength = 256
)

// Session reads answers from in and writes prompts and corrections to out.
// All state it builds is returned to the caller; nothing is kept between
// runs.
type Session struct {
	reader  *bufio.Reader
	out     io.Writer
	logger  zerolog.Logger
}

func NewSession(in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		reader:  bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}
}

// Run greets the user and collects the full setup. The only error it
// returns is io.ErrUnexpectedEOF (or a read error) when input ends before
// the setup is complete; overlong lines are rejected and re-prompted.
func (s *Session) Run() (chess.WhitePiece, *chess.BlackPieces, error) {
	s.println("Welcome to the Chess Capturing Game!")
	s.println("The game starts with the white piece.")

	white, err := s.ReadWhitePiece()
	if err != nil {
		return chess.WhitePiece{}, nil, err
	}

	black, err := s.ReadBlackPieces(white)
	if err != nil {
		return chess.WhitePiece{}, nil, err
	}
	return white, black, nil
}

// ReadWhitePiece prompts until a valid "<pawn|rook> <square>" line is read.
func (s *Session) ReadWhitePiece() (chess.WhitePiece, error) {
	for {
		line, err := s.readLine(whitePrompt)
		if errors.Is(err, chess.ErrMalformedInput) {
			s.reject(line, err, "pawn c5")
			continue
		}
		if err != nil {
			return chess.WhitePiece{}, err
		}

		white, err := chess.ParseWhitePiece(line)
		if err != nil {
			s.reject(line, err, "pawn c5")
			continue
		}

		s.logger.Debug().Str("kind", string(white.Kind)).Str("square", white.Square.String()).Msg("White piece placed")
		return white, nil
	}
}

// ReadBlackPieces prompts for black pieces until the user types done with
// at least one piece placed, or the set is full.
func (s *Session) ReadBlackPieces(white chess.WhitePiece) (*chess.BlackPieces, error) {
	black := chess.NewBlackPieces(white.Square)
	s.println("Black pieces turn.")

	for !black.Full() {
		line, err := s.readLine(blackPrompt)
		if errors.Is(err, chess.ErrMalformedInput) {
			s.reject(line, err, "knight a5")
			continue
		}
		if err != nil {
			return nil, err
		}

		if strings.EqualFold(strings.TrimSpace(line), doneCommand) {
			if black.Len() == 0 {
				s.reject(line, chess.ErrNoBlackPieces, "knight a5")
				continue
			}
			break
		}

		kind, sq, err := chess.ParseBlackEntry(line)
		if err == nil {
			err = black.Place(kind, sq)
		}
		if err != nil {
			s.reject(line, err, "knight a5")
			continue
		}

		s.logger.Debug().
			Str("kind", string(kind)).
			Str("square", sq.String()).
			Int("total", black.Len()).
			Int("remaining", black.Remaining(kind)).
			Msg("Black piece placed")
	}

	if black.Full() {
		s.printf("All %d black pieces are on the board.\n", chess.MaxBlackPieces)
	}

	s.logger.Info().Int("black_pieces", black.Len()).Msg("Setup complete")
	return black, nil
}

// readLine prompts and reads one line without its line ending. A line
// longer than maxLineLength is consumed to its end and reported as
// chess.ErrMalformedInput along with its first maxLineLength bytes.
func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	var line []byte
	for {
		chunk, isPrefix, err := s.reader.ReadLine()
		if err != nil {
			if len(line) > maxLineLength {
				// Input ended inside an overlong line; reject it and let the
				// next read report the end of input.
				break
			}
			fmt.Fprintln(s.out)
			if errors.Is(err, io.EOF) {
				return "", io.ErrUnexpectedEOF
			}
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if len(line) <= maxLineLength {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}

	if len(line) > maxLineLength {
		return string(line[:maxLineLength]), fmt.Errorf("%w: line longer than %d bytes", chess.ErrMalformedInput, maxLineLength)
	}
	return string(line), nil
}

func (s *Session) reject(line string, err error, example string) {
	s.logger.Debug().Err(err).Str("input", line).Msg("Input rejected")
	s.println(correction(err, example))
}

// correction turns a validation error into the message shown to the user.
func correction(err error, example string) string {
	switch {
	case errors.Is(err, chess.ErrMalformedInput):
		return fmt.Sprintf("Invalid input. Please enter in the format: '%s'", example)
	case errors.Is(err, chess.ErrWhitePieceKind):
		return "Invalid piece. Choose 'pawn' or 'rook'."
	case errors.Is(err, chess.ErrUnknownPiece):
		return "Invalid figure. Choose between: " + kindList() + "."
	case errors.Is(err, chess.ErrInvalidSquare):
		return "Invalid coordinates. Try again."
	case errors.Is(err, chess.ErrWhiteSquare):
		return "Invalid move. You cannot place a black piece on the same square as the white piece."
	case errors.Is(err, chess.ErrSquareOccupied):
		return "That square already holds a black piece. Choose another square."
	case errors.Is(err, chess.ErrLimitExceeded):
		return limitMessage(err)
	case errors.Is(err, chess.ErrTooManyPieces):
		return fmt.Sprintf("No more than %d black pieces can be placed.", chess.MaxBlackPieces)
	case errors.Is(err, chess.ErrNoBlackPieces):
		return "You must place at least one black piece!"
	}
	return "Invalid input. Try again."
}

func limitMessage(err error) string {
	var limit *chess.LimitError
	if errors.As(err, &limit) {
		return fmt.Sprintf("Too many %ss. It exceeds the limit of %d.", limit.Kind, limit.Limit)
	}
	return "Too many pieces of that kind. It exceeds the limit."
}

func kindList() string {
	names := make([]string, len(chess.PieceKinds))
	for i, kind := range chess.PieceKinds {
		names[i] = "'" + string(kind) + "'"
	}
	return strings.Join(names, ", ")
}

func (s *Session) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
