package main

import (
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/keypad"
)

// app is the state shared by the commands.
type app struct {
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:   "calc",
		Short: "Keypad calculator",
		Long: `calc is a keypad calculator. Expressions are built one key at a time,
as on a pocket calculator, and evaluated on =.

Commands:
  tui   - full-screen keypad
  repl  - type keys line by line
  keys  - replay keys and show the display after each
  eval  - evaluate expressions directly`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file, TOML or YAML (default $XDG_CONFIG_HOME/calc/config.toml)")
	root.AddCommand(
		newTUICmd(a),
		newREPLCmd(a),
		newKeysCmd(a),
		newEvalCmd(a),
		newVersionCmd(),
	)
	return root
}

// session creates a session evaluating with the configured precision and
// digits.
func (a *app) session() *keypad.Session {
	ev := calc.NewEvaluator(calc.Prec(a.cfg.Precision), calc.Digits(a.cfg.Digits))
	return keypad.NewSession(keypad.WithEvaluator(ev))
}
