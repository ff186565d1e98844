package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		inname   string
		prec     uint
		digits   int
		nl, echo bool
	)
	cmd := &cobra.Command{
		Use:   "eval [EXPR...]",
		Short: "Evaluate expressions",
		Long: `Evaluate expressions written the way the keypad writes them, e.g.
"math.sin(math.radians(30))" or "2**(10)". Input is read from --in, or
from stdin if no expressions are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("prec") {
				a.cfg.Precision = prec
			}
			if cmd.Flags().Changed("digits") {
				a.cfg.Digits = digits
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			srcs, err := inputs(cmd, inname, len(args) == 0, nl)
			if err != nil {
				return err
			}
			srcs = append(srcs, args...)
			p := make([]*calc.Expr, 0, len(srcs))
			for _, src := range srcs {
				e, err := calc.Parse(src)
				if err != nil {
					return fmt.Errorf("%q: %w", src, err)
				}
				p = append(p, e)
			}

			w := cmd.OutOrStdout()
			ctx := calc.NewContext(calc.Prec(a.cfg.Precision))
			for _, e := range p {
				if echo {
					fmt.Fprintf(w, "%v : ", e)
				}
				r := ctx.Eval(e)
				if r == nil {
					fmt.Fprintln(w, ctx.Err())
					continue
				}
				fmt.Fprintln(w, calc.Format(r, a.cfg.Digits))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&inname, "in", "", "input `file`, - for stdin (default stdin if no args given)")
	f.UintVarP(&prec, "prec", "p", 64, "precision of calculations in bits")
	f.IntVarP(&digits, "digits", "d", 12, fmt.Sprintf("significant digits in results, 1 to %d", config.MaxDigits))
	f.BoolVarP(&nl, "lines", "n", false, "parse separate input lines as separate expressions")
	f.BoolVar(&echo, "echo", false, "print parse trees")
	return cmd
}

// inputs reads the expressions from the named input file. With nl, each
// non-blank line is an expression; otherwise the whole input is one.
func inputs(cmd *cobra.Command, inname string, std, nl bool) ([]string, error) {
	var in io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	case inname == "-", std:
		in = cmd.InOrStdin()
	default:
		return nil, nil
	}
	if !nl {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, errors.New("no expression in input")
		}
		return []string{string(b)}, nil
	}
	var r []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if line := scan.Text(); strings.TrimSpace(line) != "" {
			r = append(r, line)
		}
	}
	return r, scan.Err()
}
