package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Keep test output free of escape sequences.
	color.NoColor = true
}

// run feeds lines to a fresh runner and returns the output lines.
func run(t *testing.T, lines ...string) []string {
	t.Helper()
	var out bytes.Buffer
	r := newRunner(strings.NewReader(""), &out)
	for _, l := range lines {
		if !r.runLine(l) {
			break
		}
	}
	s := strings.TrimRight(out.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestRunLine(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"expr", []string{"6/2(1+2)"}, []string{"9"}},
		{"assign", []string{"x = 10"}, []string{"x = 10"}},
		{"assign-then-use", []string{"x = 10", "x = x + 10", "x"}, []string{"x = 10", "x = 20", "20"}},
		{"undefined", []string{"x = x + 10"}, []string{`undefined variable: "x"`}},
		{"error-continues", []string{"1/0", "1+1"}, []string{"arithmetic overflow during division", "2"}},
		{"quit-stops", []string{"1+1", "quit", "2+2"}, []string{"2"}},
		// The reported column is where the missing operand would start.
		{"parse-error", []string{"2 +"}, []string{"4: unexpected end of input"}},
		{"lex-error", []string{"5."}, []string{"1: no digits following '.'"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := run(t, c.lines...)
			if len(got) != len(c.want) {
				t.Fatalf("wrong output lines:\n\twant %q\n\tgot  %q", c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("line %d: want %q, got %q", i, c.want[i], got[i])
				}
			}
		})
	}
}

func TestFailedAssignmentLeavesVariable(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(strings.NewReader(""), &out)
	r.runLine("x = 2")
	r.runLine("x = 1/0")
	if v, ok := r.vars['x']; !ok || v != 2 {
		t.Errorf("x is %g, %t after a failed re-assignment; want 2", v, ok)
	}
}

func TestHelpCommand(t *testing.T) {
	got := run(t, "help")
	if len(got) == 0 || !strings.Contains(strings.Join(got, "\n"), "interactive calculator") {
		t.Errorf("help did not print the usage text: %q", got)
	}
}

func TestLoop(t *testing.T) {
	var out bytes.Buffer
	r := newRunner(strings.NewReader("1+1\nquit\n2+2\n"), &out)
	if err := r.loop(); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "\n2\n") {
		t.Errorf("loop did not evaluate the first line: %q", s)
	}
	if strings.Contains(s, "\n4\n") {
		t.Errorf("loop kept running after quit: %q", s)
	}
}

func TestEvalFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--no-color", "-e", "a = 2", "-e", "a^10"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "a = 2\n") || !strings.Contains(s, "1024\n") {
		t.Errorf("wrong -e output: %q", s)
	}
	if strings.Contains(s, "Type help") {
		t.Errorf("-e printed the banner: %q", s)
	}
}
