package calc

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	name string
	fn   Func

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeCall // name is Func to call, left is the argument unless niladic

	nodeNeg // evaluate left, then negate
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeMod // evaluate left, floored modulo right
	nodePow // evaluate left, exp by right
	nodeNop // evaluate left
)

var nodeKindNames = [...]string{
	nodeNone: "None",
	nodeNum:  "Num",
	nodeCall: "Call",
	nodeNeg:  "Neg",
	nodeAdd:  "Add",
	nodeSub:  "Sub",
	nodeMul:  "Mul",
	nodeDiv:  "Div",
	nodeMod:  "Mod",
	nodePow:  "Pow",
	nodeNop:  "Nop",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

// binsyms holds the rendering of each binary node kind.
var binsyms = map[nodeKind]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " × ",
	nodeDiv: " ÷ ",
	nodeMod: " % ",
	nodePow: " ^ ",
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes the node with every term grouped, alternating round and square
// brackets at each level.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		if n.left != nil {
			n.left.fmt(b, !square)
		}
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeMod, nodePow:
		n.left.fmt(b, !square)
		b.WriteString(binsyms[n.kind])
		n.right.fmt(b, !square)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
