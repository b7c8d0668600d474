package clicalc

import (
	"strconv"
	"strings"
)

// node is a node in the syntax tree of an expression. Nodes are built
// bottom-up during parsing and are immutable afterward; each child is
// owned by exactly one parent.
type node struct {
	kind nodeKind

	op   byte      // nodeUnary, nodeBinary
	val  float64   // nodeNum
	name rune      // nodeVar
	fn   *function // nodeCall

	left  *node
	right *node   // nodeBinary only
	args  []*node // nodeCall only
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // stored literal value
	nodeVar    // look up name in the environment
	nodeParen  // value of left, unchanged
	nodeUnary  // op applied to left; op is '+' or '-'
	nodeBinary // op applied to left and right
	nodeCall   // fn applied to args
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeVar:
		return "Var"
	case nodeParen:
		return "Paren"
	case nodeUnary:
		return "Unary"
	case nodeBinary:
		return "Binary"
	case nodeCall:
		return "Call"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes a fully parenthesized rendering of the subtree, making the
// parsed grouping visible regardless of the parentheses in the source.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.val, 'g', -1, 64))
	case nodeVar:
		b.WriteRune(n.name)
	case nodeParen:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeUnary:
		b.WriteByte('(')
		b.WriteByte(n.op)
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeBinary:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteByte(n.op)
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		b.WriteString(n.fn.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	default:
		panic("clicalc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// vars adds the variables the subtree reads to seen.
func (n *node) vars(seen map[rune]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeVar {
		seen[n.name] = true
	}
	n.left.vars(seen)
	n.right.vars(seen)
	for _, a := range n.args {
		a.vars(seen)
	}
}
