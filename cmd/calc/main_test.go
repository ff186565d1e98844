package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zephyrtronium/calc/keypad"
)

// run executes the command line with an empty configuration directory.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKeysCmd(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"keys", "--final", "7", "+", "3", "="}, "10\n"},
		{"sin", []string{"keys", "--final", "sin", "3", "0", ")", "="}, "0.5\n"},
		{"shift", []string{"keys", "--final", "shift", "√x", "2", "7", ")", "="}, "3\n"},
		{"superscript", []string{"keys", "--final", "2", "xʸ", "3", ")"}, "2⁽³⁾\n"},
		{"markup", []string{"keys", "--final", "--markup", "2", "x^y", "3"}, "2<sup>(3\n"},
		{"error", []string{"keys", "--final", "5", "/", "0", "="}, "ERROR\n"},
		{"each", []string{"keys", "1", "+"}, "1      1\n+      1+\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := run(t, "", c.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestKeysCmdErrors(t *testing.T) {
	_, err := run(t, "", "keys", "7", "plus", "3")
	var ke *keypad.KeyError
	if !errors.As(err, &ke) {
		t.Errorf("unknown key gave %v", err)
	}
	if _, err := run(t, "", "keys"); err == nil {
		t.Error("no error without keys")
	}
}

func TestEvalCmd(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"args", "", []string{"eval", "7+3", "2**10"}, "10\n1024\n"},
		{"digits", "", []string{"eval", "-d", "3", "1/3"}, "0.333\n"},
		{"echo", "", []string{"eval", "--echo", "1+2"}, "([1] + [2]) : 3\n"},
		{"domain", "", []string{"eval", "5/0"}, "0 outside domain of /\n"},
		{"keypad", "", []string{"eval", "math.sin(math.radians(30))"}, "0.5\n"},
		{"stdin", "1+\n2\n", []string{"eval"}, "3\n"},
		{"lines", "1+1\n\n2*3\n", []string{"eval", "-n"}, "2\n6\n"},
		{"prec", "", []string{"eval", "-p", "200", "-d", "25", "1/3"}, "0.3333333333333333333333333\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := run(t, c.stdin, c.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestEvalCmdErrors(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"parse", "", []string{"eval", "3+"}},
		{"name", "", []string{"eval", "__import__"}},
		{"digits", "", []string{"eval", "-d", "0", "1"}},
		{"prec", "", []string{"eval", "-p", "0", "1"}},
		{"empty-stdin", "  \n", []string{"eval"}},
		{"missing-file", "", []string{"eval", "--in", "/nonexistent/calc"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if out, err := run(t, c.stdin, c.args...); err == nil {
				t.Errorf("no error, output %q", out)
			}
		})
	}
}

func TestEvalCmdFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs")
	if err := os.WriteFile(path, []byte("4**(0.5)\n3%2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "eval", "-n", "--in", path, "1+1")
	if err != nil {
		t.Fatal(err)
	}
	if want := "2\n1\n2\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	if err := os.WriteFile(path, []byte("digits: 4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "", "--config", path, "eval", "1/3")
	if err != nil {
		t.Fatal(err)
	}
	if want := "0.3333\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	got, err = run(t, "", "--config", path, "keys", "--final", "2", "/", "3", "=")
	if err != nil {
		t.Fatal(err)
	}
	if want := "0.6667\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}

	if _, err := run(t, "", "--config", path+".missing", "eval", "1"); err == nil {
		t.Error("no error for missing config file")
	}
}

func TestVersionCmd(t *testing.T) {
	got, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "calc ") {
		t.Errorf("got %q", got)
	}
}

func TestRunLine(t *testing.T) {
	s := keypad.NewSession()
	cases := []struct {
		line string
		want string
		quit bool
	}{
		{"6 * 7 =", "42\n", false},
		{":ans", "42\n", false},
		{"+ 1", "ANS+1\n", false},
		{"=", "43\n", false},
		{":shift", "shift on: eʸ ∛x ln sin⁻¹\n", false},
		{"√x 8 )", "∛(8)\n", false},
		{":SHIFT", "shift off: xʸ √x log sin\n", false},
		{"AC 5 / 0 =", "ERROR\n   0 outside domain of /\n", false},
		{"5 plus", "keypad: no key \"plus\"\n", false},
		{":what", "unknown command. Type :quit to exit.\n", false},
		{":quit", "", true},
	}
	// Each line depends on the session state left by the ones before it.
	for _, c := range cases {
		var out bytes.Buffer
		quit := runLine(s, c.line, &out)
		if got := out.String(); got != c.want {
			t.Errorf("%q: want output %q, got %q", c.line, c.want, got)
		}
		if quit != c.quit {
			t.Errorf("%q: want quit %t, got %t", c.line, c.quit, quit)
		}
	}
}
