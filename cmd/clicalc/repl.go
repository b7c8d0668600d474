package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/mikkoteras/clicalc"
)

// runner owns the variable environment that lives across input lines and
// renders every outcome as a single line of output.
type runner struct {
	vars clicalc.Env
	in   io.Reader
	out  io.Writer
	errc *color.Color
}

func newRunner(in io.Reader, out io.Writer) *runner {
	return &runner{
		vars: clicalc.Env{},
		in:   in,
		out:  out,
		errc: color.New(color.FgRed),
	}
}

// loop reads and runs lines until quit or the end of the input. Input
// errors never end the loop; the only error returned is a failure of the
// reader itself.
func (r *runner) loop() error {
	fmt.Fprintln(r.out, "clicalc", version)
	fmt.Fprintln(r.out, "Type help for usage, quit to exit.")
	scan := bufio.NewScanner(r.in)
	for scan.Scan() {
		if !r.runLine(scan.Text()) {
			break
		}
	}
	return scan.Err()
}

// runLine parses and runs one line. The result is false when the line
// asks the session to end.
func (r *runner) runLine(line string) bool {
	prog, err := clicalc.Parse(line)
	if err != nil {
		r.errc.Fprintln(r.out, err)
		return true
	}
	if cmd, ok := prog.Command(); ok {
		switch cmd {
		case clicalc.CommandHelp:
			fmt.Fprintln(r.out, helpText)
		case clicalc.CommandQuit:
			return false
		}
		return true
	}
	v, err := prog.Eval(r.vars)
	if err != nil {
		r.errc.Fprintln(r.out, err)
		return true
	}
	if target, ok := prog.Target(); ok {
		// Bind only after a successful evaluation, so a failed line
		// never clobbers a variable.
		r.vars[target] = v
		fmt.Fprintf(r.out, "%c = %s\n", target, formatValue(v))
		return true
	}
	fmt.Fprintln(r.out, formatValue(v))
	return true
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
