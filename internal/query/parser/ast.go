package parser

import (
	"github.com/KirkDiggler/spellbook-api/internal/query/catalog"
)

// Node is one node of a parsed query expression.
type Node interface {
	// String renders the node back into query syntax. Reparsing the
	// rendered form yields an equal tree.
	String() string

	isNode()
}

// FieldNode is a single alias:value atom. Value is catalog-normalized.
// Complete is false for values legal mid-typing but not executable.
type FieldNode struct {
	Field    catalog.FieldID
	Alias    string
	Value    string
	Complete bool
}

func (n *FieldNode) isNode() {}

func (n *FieldNode) String() string {
	return n.Alias + ":" + n.Value
}

// AndNode requires both operands to match
type AndNode struct {
	Left  Node
	Right Node
}

func (n *AndNode) isNode() {}

func (n *AndNode) String() string {
	return "(" + n.Left.String() + " AND " + n.Right.String() + ")"
}

// OrNode requires either operand to match
type OrNode struct {
	Left  Node
	Right Node
}

func (n *OrNode) isNode() {}

func (n *OrNode) String() string {
	return "(" + n.Left.String() + " OR " + n.Right.String() + ")"
}

// NotNode negates its operand
type NotNode struct {
	Operand Node
}

func (n *NotNode) isNode() {}

func (n *NotNode) String() string {
	return "NOT " + wrapComposite(n.Operand)
}

func wrapComposite(n Node) string {
	if _, ok := n.(*FieldNode); ok {
		return n.String()
	}
	s := n.String()
	if len(s) > 0 && s[0] == '(' {
		return s
	}
	return "(" + s + ")"
}

// Equal reports structural equality of two trees
func Equal(a, b Node) bool {
	switch an := a.(type) {
	case *FieldNode:
		bn, ok := b.(*FieldNode)
		return ok && an.Field == bn.Field && an.Value == bn.Value && an.Complete == bn.Complete
	case *AndNode:
		bn, ok := b.(*AndNode)
		return ok && Equal(an.Left, bn.Left) && Equal(an.Right, bn.Right)
	case *OrNode:
		bn, ok := b.(*OrNode)
		return ok && Equal(an.Left, bn.Left) && Equal(an.Right, bn.Right)
	case *NotNode:
		bn, ok := b.(*NotNode)
		return ok && Equal(an.Operand, bn.Operand)
	}
	return false
}
