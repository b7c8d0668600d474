package clicalc

import (
	"math"
	"strconv"
)

// Env is the set of variable bindings an evaluation reads. The caller owns
// it: evaluation never writes to it, and the caller must not mutate it
// while an Eval is in progress.
type Env map[rune]float64

// Eval evaluates the program's expression against env and returns the
// result. Errors are of type *NameError, *ArityError, or *DomainError.
// Eval panics if the program is a command; commands carry no expression,
// and the caller is expected to classify the program before evaluating.
func (p *Program) Eval(env Env) (float64, error) {
	if p.root == nil {
		panic("clicalc: Eval on command program " + strconv.Quote(p.cmd.String()))
	}
	return p.root.eval(env)
}

// eval computes the node's value. The walk is strictly left to right and
// stops at the first failure.
func (n *node) eval(env Env) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeVar:
		v, ok := env[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodeParen:
		return n.left.eval(env)
	case nodeUnary:
		v, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		switch n.op {
		case '+':
			return v, nil
		case '-':
			return -v, nil
		default:
			panic("clicalc: unary operator " + strconv.Quote(string(n.op)) + " survived parsing")
		}
	case nodeBinary:
		l, err := n.left.eval(env)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(env)
		if err != nil {
			return 0, err
		}
		return binaryOp(n.op, l, r)
	case nodeCall:
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := a.eval(env)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return n.fn.call(args)
	default:
		panic("clicalc: invalid AST node " + n.kind.String())
	}
}

// binaryOp applies a binary operator and checks that the result is finite.
// Division by zero and overflow both surface as the operator's error
// rather than as an infinity.
func binaryOp(op byte, l, r float64) (float64, error) {
	var v float64
	var msg string
	switch op {
	case '+':
		v, msg = l+r, "arithmetic overflow during addition"
	case '-':
		v, msg = l-r, "arithmetic overflow during subtraction"
	case '*':
		v, msg = l*r, "arithmetic overflow during multiplication"
	case '/':
		v, msg = l/r, "arithmetic overflow during division"
	case '^':
		v, msg = math.Pow(l, r), "result of exponentiation is undefined"
	default:
		panic("clicalc: binary operator " + strconv.Quote(string(op)) + " survived parsing")
	}
	if !isFinite(v) {
		return 0, &DomainError{Func: string(op), Msg: msg}
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// NameError is an error from a lookup of a variable that is missing from
// the environment.
type NameError struct {
	// Name is the variable that was missing.
	Name rune
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(string(err.Name))
}
