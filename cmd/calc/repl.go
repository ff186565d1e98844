package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/internal/tui"
	"github.com/zephyrtronium/calc/keypad"
)

const (
	historyFile = ".calc_history"
	prompt      = "> "
	banner      = `Type keys separated by spaces, e.g. "sin 3 0 ) =".
Commands:
  :shift   Toggle shift
  :ans     Show the answer register
  :keys    List the keys
  :quit    Exit`
)

func newREPLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Type keys line by line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return repl(a.session(), cmd.OutOrStdout())
		},
	}
}

func repl(s *keypad.Session, w io.Writer) error {
	fmt.Fprintln(w, banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if quit := runLine(s, line, w); quit {
			return nil
		}
	}
}

// runLine handles one line of REPL input and reports whether the REPL
// should exit.
func runLine(s *keypad.Session, line string, w io.Writer) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, ":") {
		switch strings.ToLower(line) {
		case ":quit":
			return true
		case ":shift":
			s.ToggleShift()
			labels := make([]string, 0, len(keypad.Remappable()))
			for _, k := range keypad.Remappable() {
				labels = append(labels, s.Label(k))
			}
			fmt.Fprintf(w, "shift %s: %s\n", onOff(s.Shifted()), strings.Join(labels, " "))
		case ":ans":
			fmt.Fprintln(w, s.Answer())
		case ":keys":
			for _, row := range keypad.Layout() {
				labels := make([]string, len(row))
				for i, k := range row {
					labels[i] = s.Label(k)
				}
				fmt.Fprintln(w, strings.Join(labels, "\t"))
			}
		default:
			fmt.Fprintln(w, "unknown command. Type :quit to exit.")
		}
		return false
	}
	keys, err := keypad.ParseKeys(strings.Fields(line)...)
	if err != nil {
		fmt.Fprintln(w, err)
		return false
	}
	fmt.Fprintln(w, tui.Superscript(s.SubmitAll(keys...)))
	if err := s.Err(); err != nil && keys[len(keys)-1] == keypad.Equals {
		fmt.Fprintln(w, "  ", err)
	}
	return false
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
