// Package clicalc implements a small line-oriented calculator language.
//
// Each line of input is one program: a command ("help" or "quit"), an
// assignment of an expression to a single-letter variable ("x = 2a + 1"),
// or a bare expression. The syntax is intended to read like math you'd
// write in your notes: "2x" and "6/2(1+2)" are multiplications, "^" is
// exponentiation, and the usual functions (sqrt, ln, max, ...) take
// parenthesized arguments.
//
// Parsing and evaluation are separate. Parse turns a line into a Program;
// evaluating the Program against an Env of variable bindings yields a
// float64. All arithmetic is IEEE 754 double precision, and any operation
// whose result is not finite fails with a descriptive error rather than
// producing an infinity or NaN.
package clicalc
