package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/awidegreen/selecta/internal/config"
	"github.com/awidegreen/selecta/internal/ingest"
	"github.com/awidegreen/selecta/internal/log"
	"github.com/awidegreen/selecta/internal/term"
	"github.com/awidegreen/selecta/internal/ui"
)

// pick runs one interactive session: ingest candidates from stdin, set up
// the terminal, drive the loop, and resolve the selection. A false second
// return means no selection was made (cancelled, or the cursor landed past
// the filtered matches).
func pick(initialQuery string, height int) (string, bool, error) {
	logger := log.New()

	fileCfg, err := config.LoadFile()
	if err != nil {
		return "", false, err
	}
	if height <= 0 {
		height = fileCfg.Height
	}

	choices, err := ingest.ReadChoices(os.Stdin)
	if err != nil {
		return "", false, err
	}

	if os.Getenv("TERM") == "dumb" {
		return "", false, errors.New("TERM=dumb is not supported")
	}

	tty, err := term.OpenTTY()
	if err != nil {
		return "", false, err
	}
	defer tty.Close()

	rows, _ := tty.Size()
	if rows == 0 {
		return "", false, errors.New("not an interactive terminal")
	}

	cfg := config.New(height, rows, initialQuery, choices)

	if err := tty.MakeRaw(); err != nil {
		return "", false, err
	}
	defer tty.Restore()

	// An interrupt must put the terminal back before the process dies.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		<-sig
		tty.Restore()
		os.Exit(exitNoSelection)
	}()

	terminal := term.NewTerminal(tty)
	logger.Debug("session start",
		"choices", len(choices),
		"visible", cfg.VisibleChoices,
		"query", initialQuery,
	)

	selected, ok := ui.Run(cfg, terminal)

	// Leave a clean screen behind.
	terminal.SetCursor(0, 0)
	terminal.Clear()
	terminal.ShowCursor()

	logger.Debug("session end", "selected", ok)
	return selected, ok, nil
}
