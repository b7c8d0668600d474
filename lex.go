package clicalc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// lexToken is one lexical token of a source line. The tag is kind; only the
// payload field for that kind is meaningful.
type lexToken struct {
	kind tokenKind
	op   byte      // tokenOp
	val  float64   // tokenNum
	name rune      // tokenVar
	fn   *function // tokenFunc
	cmd  Command   // tokenCmd
	text string
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input line.
	tokenEOF
	// tokenNum is a number literal.
	tokenNum
	// tokenVar is a single-letter variable name.
	tokenVar
	// tokenFunc is a function keyword.
	tokenFunc
	// tokenCmd is a command keyword.
	tokenCmd
	// tokenOp is an operator.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenVar:
		return "Var"
	case tokenFunc:
		return "Func"
	case tokenCmd:
		return "Cmd"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// operators contains the characters which are lexed as operator tokens.
const operators = "+-*/^(),="

// Command is a REPL command recognized in the source language. The core
// only classifies commands; executing them is the caller's concern.
type Command int

const (
	CommandNone Command = iota
	// CommandHelp requests the usage text.
	CommandHelp
	// CommandQuit ends the session.
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	default:
		return "Command(" + strconv.Itoa(int(c)) + ")"
	}
}

// commands is the command keyword table. Literal order is authoritative:
// the lexer matches names by prefix in table order, commands before
// functions.
var commands = []struct {
	name string
	cmd  Command
}{
	{"help", CommandHelp},
	{"quit", CommandQuit},
}

// lexer scans a source line one token at a time. At most one token exists
// at a time, plus one more transiently inside peek.
type lexer struct {
	src string
	pos int // byte offset of the scan cursor
	col int // 1-based rune column of the scan cursor
	cur lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src, col: 1}
}

// current returns the last token produced by next, without consuming any
// input. Before the first next, the result is a None token.
func (l *lexer) current() lexToken {
	return l.cur
}

// next consumes input and produces the next token. Once the end of input
// is reached, every further call keeps returning the EOF token.
func (l *lexer) next() (lexToken, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		l.cur = lexToken{kind: tokenEOF, pos: l.col}
		return l.cur, nil
	}
	var tok lexToken
	var err error
	switch c := l.src[l.pos]; {
	case isDigit(c) || c == '.':
		tok, err = l.scanNum()
	case strings.IndexByte(operators, c) >= 0:
		tok = lexToken{kind: tokenOp, op: c, text: string(c), pos: l.col}
		l.pos++
		l.col++
	case 'a' <= c && c <= 'z':
		tok = l.scanName()
	default:
		r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
		err = &LexError{Col: l.col, Msg: "unrecognized character " + strconv.QuoteRune(r)}
	}
	if err != nil {
		return lexToken{pos: l.col}, err
	}
	l.cur = tok
	return tok, nil
}

// peek returns the token that next would produce, without advancing. It
// snapshots the scan cursor and the current token, scans, and restores
// both; the lexer is single-threaded, so nothing can observe the
// intermediate state.
func (l *lexer) peek() (lexToken, error) {
	pos, col, cur := l.pos, l.col, l.cur
	tok, err := l.next()
	l.pos, l.col, l.cur = pos, col, cur
	return tok, err
}

// scanNum scans a number literal: digits, an optional fraction which must
// contain digits, and an optional exponent. The exponent marker is
// consumed only when the e is immediately followed by a digit; otherwise
// the e is left to become a name token, so "13.25e2e24" scans as the
// literal 1325 with "e24" remaining.
func (l *lexer) scanNum() (lexToken, error) {
	start, col := l.pos, l.col
	l.pos += countDigits(l.src[l.pos:])
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		frac := countDigits(l.src[l.pos:])
		if frac == 0 {
			return lexToken{}, &LexError{Col: col, Msg: "no digits following '.'"}
		}
		l.pos += frac
	}
	if l.pos+1 < len(l.src) && l.src[l.pos] == 'e' && isDigit(l.src[l.pos+1]) {
		l.pos++
		l.pos += countDigits(l.src[l.pos:])
	}
	text := l.src[start:l.pos]
	l.col += l.pos - start
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		// Literals must be finite. The scan grammar admits values beyond
		// the float64 range, e.g. 1e999; reject them here.
		return lexToken{}, &LexError{Col: col, Msg: "number literal out of range: " + strconv.Quote(text)}
	}
	return lexToken{kind: tokenNum, val: v, text: text, pos: col}, nil
}

// scanName scans a command keyword, a function keyword, or a single-letter
// variable. Keywords match by exact prefix in table literal order, so
// "sink" scans as the function sin followed by the variable k.
func (l *lexer) scanName() lexToken {
	rest := l.src[l.pos:]
	tok := lexToken{pos: l.col}
	for _, c := range commands {
		if strings.HasPrefix(rest, c.name) {
			tok.kind = tokenCmd
			tok.cmd = c.cmd
			tok.text = c.name
			l.advance(len(c.name))
			return tok
		}
	}
	for _, f := range functions {
		if strings.HasPrefix(rest, f.name) {
			tok.kind = tokenFunc
			tok.fn = f
			tok.text = f.name
			l.advance(len(f.name))
			return tok
		}
	}
	tok.kind = tokenVar
	tok.name = rune(rest[0])
	tok.text = rest[:1]
	l.advance(1)
	return tok
}

// advance moves the cursor past n bytes of ASCII.
func (l *lexer) advance(n int) {
	l.pos += n
	l.col += n
}

// skipSpace moves the cursor past leading whitespace. Names and operators
// are ASCII, but whitespace may be any Unicode space.
func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		r, sz := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += sz
		l.col++
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// countDigits returns the length of the run of digits at the start of s.
func countDigits(s string) int {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return i
		}
	}
	return len(s)
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Col is the rune column at which the bad token started.
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *LexError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *LexError) Pos() int {
	return err.Col
}
