package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc/internal/tui"
	"github.com/zephyrtronium/calc/keypad"
)

func newKeysCmd(a *app) *cobra.Command {
	var final, markup bool
	cmd := &cobra.Command{
		Use:   "keys KEY...",
		Short: "Replay keys on a new keypad",
		Long: `Replay keys on a new keypad and print the display after each.

Keys are named as on the buttons (7, +, xʸ, √x, sin, ANS, =, shift, ...)
or with ASCII spellings (x^y, sqrt, pi, ...).`,
		Example: `  calc keys 7 + 3 =
  calc keys --final sin 3 0 ")" =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := keypad.ParseKeys(args...)
			if err != nil {
				return err
			}
			render := tui.Superscript
			if markup {
				render = func(s string) string { return s }
			}
			s := a.session()
			w := cmd.OutOrStdout()
			for _, k := range keys {
				display := s.Submit(k)
				if !final {
					fmt.Fprintf(w, "%-6s %s\n", k, render(display))
				}
			}
			if final {
				fmt.Fprintln(w, render(s.Display()))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&final, "final", false, "print only the final display")
	cmd.Flags().BoolVar(&markup, "markup", false, "print display markup instead of superscripts")
	return cmd
}
