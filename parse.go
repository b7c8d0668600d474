package clicalc

import (
	"strconv"
)

// Program = Command | Variable '=' Expr | Expr
// Expr    = Add
// Add     = Mul { ('+' | '-') Mul }
// Mul     = Pow { ('*' | '/') Pow | Term | Pow }
// Pow     = Term { '^' Term }
// Term    = '(' Expr ')' | ('+' | '-') Term | Func '(' Args ')' | Variable | Number
// Args    = [ Expr { ',' Expr } ]
//
// A Term or Pow in the Mul loop with no operator before it is an implicit
// multiplication: a parenthesized group binds at multiplicative precedence
// ("6/2(1+2)" is (6/2)*(1+2)), while a juxtaposed name binds through '^'
// ("2x^2" is 2*(x^2)). Note that '^' is left-associative.

// Program is a parsed line of input: a command, an assignment of an
// expression to a variable, or a bare expression.
type Program struct {
	cmd    Command
	target rune  // 0 unless the program is an assignment
	root   *node // nil if the program is a command
}

// Parse parses one line of input into a Program. Errors are of type
// *LexError or *ParseError; nothing is recovered, so a failed parse
// returns no partial result.
func Parse(src string) (*Program, error) {
	scan := lex(src)
	if _, err := scan.next(); err != nil {
		return nil, err
	}
	p := parser{scan}
	return p.program()
}

type parser struct {
	scan *lexer
}

// program classifies the statement and parses the whole line, requiring
// the end of input after it.
func (p *parser) program() (*Program, error) {
	switch tok := p.scan.current(); tok.kind {
	case tokenCmd:
		if _, err := p.scan.next(); err != nil {
			return nil, err
		}
		if err := p.requireEOL(); err != nil {
			return nil, err
		}
		return &Program{cmd: tok.cmd}, nil
	case tokenVar:
		// An assignment is a variable immediately followed by '='; any
		// other line starting with a variable is a bare expression. This
		// is the one place that needs a token of lookahead.
		nxt, err := p.scan.peek()
		if err != nil {
			return nil, err
		}
		if nxt.kind == tokenOp && nxt.op == '=' {
			return p.assignment(tok.name)
		}
	}
	root, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.requireEOL(); err != nil {
		return nil, err
	}
	return &Program{root: root}, nil
}

// assignment parses the remainder of "target = expr". The caller has
// already vetted the variable and the operator after it.
func (p *parser) assignment(target rune) (*Program, error) {
	if _, err := p.scan.next(); err != nil { // the '='
		return nil, err
	}
	if _, err := p.scan.next(); err != nil { // first token of the rhs
		return nil, err
	}
	root, err := p.expression()
	if err != nil {
		return nil, err
	}
	if err := p.requireEOL(); err != nil {
		return nil, err
	}
	return &Program{target: target, root: root}, nil
}

func (p *parser) expression() (*node, error) {
	return p.additive()
}

func (p *parser) additive() (*node, error) {
	n, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.scan.current()
		if tok.kind != tokenOp || (tok.op != '+' && tok.op != '-') {
			return n, nil
		}
		if _, err := p.scan.next(); err != nil {
			return nil, err
		}
		rhs, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBinary, op: tok.op, left: n, right: rhs}
	}
}

func (p *parser) multiplicative() (*node, error) {
	n, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		var rhs *node
		switch tok := p.scan.current(); {
		case tok.kind == tokenOp && (tok.op == '*' || tok.op == '/'):
			if _, err := p.scan.next(); err != nil {
				return nil, err
			}
			rhs, err = p.power()
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeBinary, op: tok.op, left: n, right: rhs}
			continue
		case tok.kind == tokenOp && tok.op == '(':
			// Implicit multiplication by a parenthesized group: 6/2(1+2).
			rhs, err = p.term()
		case tok.kind == tokenVar || tok.kind == tokenFunc:
			// Implicit multiplication by a juxtaposed name: 2x, ax^2,
			// 3sqrt(2). The right side binds through '^'.
			rhs, err = p.power()
		default:
			return n, nil
		}
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBinary, op: '*', left: n, right: rhs}
	}
}

func (p *parser) power() (*node, error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.scan.current()
		if tok.kind != tokenOp || tok.op != '^' {
			return n, nil
		}
		if _, err := p.scan.next(); err != nil {
			return nil, err
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeBinary, op: '^', left: n, right: rhs}
	}
}

// term parses a tightest-binding subexpression: a parenthesized
// expression, a unary sign, a function call, a variable, or a literal.
func (p *parser) term() (*node, error) {
	switch tok := p.scan.current(); tok.kind {
	case tokenNum:
		if _, err := p.scan.next(); err != nil {
			return nil, err
		}
		return &node{kind: nodeNum, val: tok.val}, nil
	case tokenVar:
		if _, err := p.scan.next(); err != nil {
			return nil, err
		}
		return &node{kind: nodeVar, name: tok.name}, nil
	case tokenFunc:
		if _, err := p.scan.next(); err != nil {
			return nil, err
		}
		if err := p.requireOp('('); err != nil {
			return nil, err
		}
		args, err := p.argList()
		if err != nil {
			return nil, err
		}
		if err := p.requireOp(')'); err != nil {
			return nil, err
		}
		return &node{kind: nodeCall, fn: tok.fn, args: args}, nil
	case tokenOp:
		switch tok.op {
		case '(':
			if _, err := p.scan.next(); err != nil {
				return nil, err
			}
			inner, err := p.expression()
			if err != nil {
				return nil, err
			}
			if err := p.requireOp(')'); err != nil {
				return nil, err
			}
			return &node{kind: nodeParen, left: inner}, nil
		case '+', '-':
			if _, err := p.scan.next(); err != nil {
				return nil, err
			}
			inner, err := p.term()
			if err != nil {
				return nil, err
			}
			return &node{kind: nodeUnary, op: tok.op, left: inner}, nil
		}
		return nil, &ParseError{Col: tok.pos, Msg: "unexpected " + strconv.Quote(tok.text)}
	case tokenCmd:
		return nil, &ParseError{Col: tok.pos, Msg: "unexpected command " + strconv.Quote(tok.text)}
	case tokenEOF:
		return nil, &ParseError{Col: tok.pos, Msg: "unexpected end of input"}
	default:
		panic("clicalc: unknown token: " + tok.String())
	}
}

// argList parses zero or more comma-separated expressions. The closing
// parenthesis is left in place for the caller. Argument counts are not
// checked here; arity is a property of evaluation, not of the grammar.
func (p *parser) argList() ([]*node, error) {
	if tok := p.scan.current(); tok.kind == tokenOp && tok.op == ')' {
		return nil, nil
	}
	var args []*node
	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok := p.scan.current()
		if tok.kind == tokenOp && tok.op == ')' {
			return args, nil
		}
		if tok.kind != tokenOp || tok.op != ',' {
			return nil, &ParseError{Col: tok.pos, Msg: "either ')' or ',' must follow an argument"}
		}
		if _, err := p.scan.next(); err != nil {
			return nil, err
		}
	}
}

// requireOp consumes the given operator or fails.
func (p *parser) requireOp(op byte) error {
	tok := p.scan.current()
	if tok.kind != tokenOp || tok.op != op {
		return &ParseError{Col: tok.pos, Msg: "expected " + strconv.Quote(string(op))}
	}
	_, err := p.scan.next()
	return err
}

// requireEOL fails unless the whole line has been consumed.
func (p *parser) requireEOL() error {
	if tok := p.scan.current(); tok.kind != tokenEOF {
		return &ParseError{Col: tok.pos, Msg: "extra characters at end of line"}
	}
	return nil
}

// Command returns the command the program names, if the line was a
// command.
func (p *Program) Command() (Command, bool) {
	return p.cmd, p.cmd != CommandNone
}

// Target returns the variable the program assigns to, if the line was an
// assignment. Evaluation never writes to the environment; storing the
// result under the target after a successful Eval is the caller's job.
func (p *Program) Target() (rune, bool) {
	return p.target, p.target != 0
}

// Vars returns the variables the program reads, sorted and without
// duplicates.
func (p *Program) Vars() []rune {
	seen := make(map[rune]bool)
	p.root.vars(seen)
	v := make([]rune, 0, len(seen))
	for r := range seen {
		v = append(v, r)
	}
	sortRunes(v)
	return v
}

// sortRunes sorts a rune slice in place. The slice holds at most the 26
// variable names, so insertion sort is plenty.
func sortRunes(v []rune) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j] < v[j-1]; j-- {
			v[j], v[j-1] = v[j-1], v[j]
		}
	}
}

// String creates a string representation of the parsed program with the
// grouping of every operation made explicit.
func (p *Program) String() string {
	switch {
	case p.cmd != CommandNone:
		return p.cmd.String()
	case p.target != 0:
		return string(p.target) + " = " + p.root.String()
	default:
		return p.root.String()
	}
}
