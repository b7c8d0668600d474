package clicalc

import (
	"math"
	"strconv"
)

// function is a built-in function of the language. Argument counts are not
// part of the grammar; the parser accepts any list and call checks the
// count against the function's policy when the call is evaluated.
type function struct {
	name string
	// arity is the exact number of arguments required, or the minimum
	// when variadic is set.
	arity    int
	variadic bool
	// domain, when non-empty, enables the finite-result check on the raw
	// result and is the description reported when the check fails.
	domain string
	fn     func(args []float64) float64
}

// functions is the table of built-ins. Literal order is authoritative: the
// lexer matches names by prefix in this order, so arccos must stay ahead
// of cos and arctan ahead of tan.
var functions = []*function{
	{name: "abs", arity: 1, fn: func(a []float64) float64 { return math.Abs(a[0]) }},
	{name: "arccos", arity: 1, domain: "arccos: argument must be between -1..1", fn: func(a []float64) float64 { return math.Acos(a[0]) }},
	{name: "arcsin", arity: 1, domain: "arcsin: argument must be between -1..1", fn: func(a []float64) float64 { return math.Asin(a[0]) }},
	{name: "arctan", arity: 1, fn: func(a []float64) float64 { return math.Atan(a[0]) }},
	{name: "cos", arity: 1, fn: func(a []float64) float64 { return math.Cos(a[0]) }},
	{name: "exp", arity: 1, domain: "exp: overflow", fn: func(a []float64) float64 { return math.Exp(a[0]) }},
	{name: "ln", arity: 1, domain: "ln: argument must be greater than zero", fn: func(a []float64) float64 { return math.Log(a[0]) }},
	{name: "log", arity: 1, domain: "log: argument must be greater than zero", fn: func(a []float64) float64 { return math.Log10(a[0]) }},
	{name: "max", arity: 2, variadic: true, fn: foldExtremum(func(cur, cand float64) bool { return cand > cur })},
	{name: "min", arity: 2, variadic: true, fn: foldExtremum(func(cur, cand float64) bool { return cand < cur })},
	{name: "pow", arity: 2, domain: "pow: the result is undefined", fn: func(a []float64) float64 { return math.Pow(a[0], a[1]) }},
	{name: "sin", arity: 1, fn: func(a []float64) float64 { return math.Sin(a[0]) }},
	{name: "sqrt", arity: 1, domain: "sqrt: argument must be nonnegative", fn: func(a []float64) float64 { return math.Sqrt(a[0]) }},
	{name: "tan", arity: 1, domain: "tan: result is undefined", fn: func(a []float64) float64 { return math.Tan(a[0]) }},
}

// foldExtremum builds a variadic running-extremum fold. A strict
// comparison keeps the first of equal extremes.
func foldExtremum(better func(cur, cand float64) bool) func([]float64) float64 {
	return func(args []float64) float64 {
		r := args[0]
		for _, a := range args[1:] {
			if better(r, a) {
				r = a
			}
		}
		return r
	}
}

// call checks arity, applies the function to already-evaluated arguments,
// and applies the domain policy to the raw result.
func (f *function) call(args []float64) (float64, error) {
	if f.variadic {
		if len(args) < f.arity {
			return 0, &ArityError{Func: f.name, Want: f.arity, AtLeast: true, Got: len(args)}
		}
	} else if len(args) != f.arity {
		return 0, &ArityError{Func: f.name, Want: f.arity, Got: len(args)}
	}
	v := f.fn(args)
	if f.domain != "" && !isFinite(v) {
		return 0, &DomainError{Func: f.name, Msg: f.domain}
	}
	return v, nil
}

// ArityError is an error from calling a function with the wrong number of
// arguments.
type ArityError struct {
	// Func is the name of the function that was called.
	Func string
	// Want is the required argument count, or the minimum when AtLeast is
	// set.
	Want    int
	AtLeast bool
	// Got is the count the call supplied.
	Got int
}

func (err *ArityError) Error() string {
	got := ", got " + strconv.Itoa(err.Got)
	switch {
	case err.AtLeast:
		return err.Func + ": at least " + strconv.Itoa(err.Want) + " arguments required" + got
	case err.Want == 1:
		return err.Func + ": single argument required" + got
	default:
		return err.Func + ": " + strconv.Itoa(err.Want) + " arguments required" + got
	}
}

// DomainError is an error from an operation whose result is not finite:
// overflow, division by zero, or an argument outside a function's domain.
type DomainError struct {
	// Func is the function or operator that failed.
	Func string
	// Msg is the operation-specific description.
	Msg string
}

func (err *DomainError) Error() string {
	return err.Msg
}
