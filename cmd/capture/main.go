package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/justinabrahms/capturechess/internal/chess"
	"github.com/justinabrahms/capturechess/internal/config"
	"github.com/justinabrahms/capturechess/internal/setup"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Parse command line flags
	showHelp, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil || showHelp {
		showHelpMessage(os.Stdout)
		return
	}

	// Setup logging
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load config, using defaults")
		cfg = config.Default()
	}
	configureLogging(cfg)

	logger := log.With().Str("session", uuid.NewString()).Logger()
	if err := run(os.Stdin, os.Stdout, cfg, logger); err != nil {
		// Running out of input is not a failure of the program.
		logger.Warn().Err(err).Msg("Setup ended before it was complete")
	}
}

// parseFlags parses args without exiting; bad flags are reported to errOut
// and returned as an error.
func parseFlags(args []string, errOut io.Writer) (bool, error) {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {}

	var showHelp bool
	fs.BoolVar(&showHelp, "help", false, "Show help information")
	fs.BoolVar(&showHelp, "h", false, "Show help information")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	return showHelp, nil
}

func configureLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn().Str("level", cfg.Log.Level).Msg("Unknown log level, using warn")
		level = zerolog.WarnLevel
	}
	if cfg.Development.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

// run drives one game: setup, board, captures.
func run(in io.Reader, out io.Writer, cfg *config.Config, logger zerolog.Logger) error {
	session := setup.NewSession(in, out, logger)
	white, black, err := session.Run()
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			fmt.Fprintln(out, "Input ended before the setup was complete.")
		}
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, chess.FormatSetup(white, black))
	fmt.Fprintln(out)

	engine := chess.NewEngine(white, black)
	switch cfg.Display.Style {
	case config.StyleUnicode:
		fmt.Fprint(out, engine.Draw())
	default:
		fmt.Fprint(out, chess.RenderBoard(white, black))
	}
	if cfg.Display.ShowFEN {
		fmt.Fprintf(out, "FEN: %s\n", engine.FEN())
	}

	captures := chess.FindCapturablePieces(white, black)
	logger.Info().
		Str("white", white.String()).
		Int("black_pieces", black.Len()).
		Int("captures", len(captures)).
		Msg("Captures computed")

	fmt.Fprintln(out)
	fmt.Fprint(out, chess.FormatCaptures(captures))
	return nil
}

func showHelpMessage(w io.Writer) {
	fmt.Fprintln(w, "capture - which black pieces can the white piece take?")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "    capture [OPTIONS]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "OPTIONS:")
	fmt.Fprintln(w, "    -h, --help    Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "INPUT:")
	fmt.Fprintln(w, "    Place one white piece (pawn or rook), e.g. 'pawn c5'.")
	fmt.Fprintln(w, "    Then place 1 to 16 black pieces, e.g. 'knight a5', and type 'done'.")
	fmt.Fprintln(w, "    Limits: king 1, queen 1, rook 2, bishop 2, knight 2, pawn 8.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CONFIGURATION:")
	fmt.Fprintln(w, "    Reads config.yaml from . or ./config. Environment overrides:")
	fmt.Fprintln(w, "    CAPTURE_LOG_LEVEL           Log level (default: warn)")
	fmt.Fprintln(w, "    CAPTURE_DEVELOPMENT_DEBUG   Force debug logging (default: false)")
	fmt.Fprintln(w, "    CAPTURE_DISPLAY_STYLE       letters or unicode (default: letters)")
	fmt.Fprintln(w, "    CAPTURE_DISPLAY_SHOW_FEN    Print the FEN placement (default: false)")
}
