package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/cairn/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run replays the scenario named by args, or the default one, and returns
// the process exit code.
func run(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [scenario.yaml]\n", os.Args[0])
		return 1
	}

	cfg := config.Default()
	if len(args) == 1 {
		var err error
		cfg, err = config.Load(args[0])
		if err != nil {
			pterm.Error.Println(err.Error())
			return 1
		}
	}
	level, _ := cfg.Level()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("airn", pterm.FgDarkGray.ToStyle()),
	).Render()

	pterm.Info.Printfln("%d nodes, %d rounds", len(cfg.Nodes), len(cfg.Rounds))

	s := newScenario(cfg, logger)
	defer func() {
		if err := s.close(); err != nil {
			logger.Error("failed to close the bus", "err", err)
		}
	}()

	spinner, _ := pterm.DefaultSpinner.Start("Replaying the scenario ...")
	if err := s.run(); err != nil {
		spinner.Fail(err.Error())
		printState(s)
		return 1
	}
	spinner.Success()

	if cfg.Tamper {
		pterm.Info.Printfln("Tampered block rejected by %d of %d nodes", s.rejected, len(cfg.Nodes))
	}
	printState(s)
	return 0
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
