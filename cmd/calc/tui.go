package main

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var debug string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the full-screen keypad",
		Long: `Start the full-screen keypad.

Navigation:
  Arrows     - move between buttons
  Enter      - press the focused button
  Tab        - shift
  Backspace  - DEL
  Delete     - AC
  Esc        - quit

Digits, operators, ( ) ^ % = e and π can be typed directly, as can
a (ANS), l (log), p (π), r (√x), s (sin), and x (*10ʸ).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug != "" {
				f, err := tea.LogToFile(debug, "calc")
				if err != nil {
					return fmt.Errorf("couldn't open debug log: %w", err)
				}
				defer f.Close()
			} else {
				// Stray output would tear the screen.
				log.SetOutput(io.Discard)
			}
			p := tea.NewProgram(tui.New(a.cfg, a.session()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("keypad: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&debug, "debug", "", "write a log of key presses to `file`")
	return cmd
}
