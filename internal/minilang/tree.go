package minilang

import (
	"fmt"
	"io"
	"strings"
)

// DerivationNode is one grammar production application in the derivation
// tree. Label names the grammar symbol, Production records the exact rule
// that fired, and Tok is set on terminal leaves to the token the leaf was
// derived from. Children are owned exclusively by their parent.
type DerivationNode struct {
	Label      string
	Production string
	Tok        *Token
	Children   []*DerivationNode
}

// NewDerivationNode creates a new interior node for the given grammar symbol
func NewDerivationNode(label, production string) *DerivationNode {
	return &DerivationNode{Label: label, Production: production}
}

// NewTerminalNode creates a leaf node holding the token it was derived from
func NewTerminalNode(label, production string, tok *Token) *DerivationNode {
	return &DerivationNode{Label: label, Production: production, Tok: tok}
}

// Add appends a child node
func (node *DerivationNode) Add(child *DerivationNode) {
	node.Children = append(node.Children, child)
}

// IsTerminal returns true for leaf nodes derived from a single token
func (node *DerivationNode) IsTerminal() bool {
	return node.Tok != nil
}

// Productions returns the pre-order sequence of production rules applied by
// the parse, which is the textual leftmost derivation of the input.
func (node *DerivationNode) Productions() []string {
	rules := []string{node.Production}
	for _, child := range node.Children {
		rules = append(rules, child.Productions()...)
	}
	return rules
}

// Walk calls fn on the node and all its descendants in pre-order
func (node *DerivationNode) Walk(fn func(*DerivationNode)) {
	fn(node)
	for _, child := range node.Children {
		child.Walk(fn)
	}
}

// Render writes the tree in an indented box-drawing format
func (node *DerivationNode) Render(w io.Writer) {
	node.render(w, 0, "")
}

func (node *DerivationNode) render(w io.Writer, level int, prefix string) {
	branch := ""
	if level > 0 {
		branch = "├── "
	}
	fmt.Fprintf(w, "%s%s%s\n", prefix, branch, node.Production)
	for i, child := range node.Children {
		childPrefix := prefix
		if level > 0 {
			if i == len(node.Children)-1 {
				childPrefix += "    "
			} else {
				childPrefix += "│   "
			}
		}
		child.render(w, level+1, childPrefix)
	}
}

func (node *DerivationNode) String() string {
	var sb strings.Builder
	node.Render(&sb)
	return sb.String()
}
