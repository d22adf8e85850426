package huffmantext

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is an element of a Huffman tree.  A leaf holds a Symbol and has no
// children.  An internal node holds exactly two children and carries
// InvalidSymbol.
//
// Frequency is the symbol's count for a leaf, and the sum of both children's
// frequencies for an internal node.
type Node struct {
	Symbol    Symbol
	Frequency uint64
	Left      *Node
	Right     *Node
}

// NewLeaf constructs a leaf node.
func NewLeaf(symbol Symbol, freq uint64) *Node {
	return &Node{Symbol: symbol, Frequency: freq}
}

// NewInternal merges a and b under a new parent, with a on the 0 branch and b
// on the 1 branch.
func NewInternal(a, b *Node) *Node {
	assert.Assertf(a != nil && b != nil, "NewInternal: nil child")
	assert.Assertf(a.Frequency <= math.MaxUint64-b.Frequency, "NewInternal: frequency overflow: %d + %d", a.Frequency, b.Frequency)
	return &Node{
		Symbol:    InvalidSymbol,
		Frequency: a.Frequency + b.Frequency,
		Left:      a,
		Right:     b,
	}
}

// IsLeaf returns true iff the node has no children.
func (node *Node) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// Child returns the child selected by bit, or nil for a leaf.
func (node *Node) Child(bit Bit) *Node {
	if bit&1 == 0 {
		return node.Left
	}
	return node.Right
}

// Walk calls fn for every leaf below node, in depth-first order with the
// left subtree first.  The path passed to fn is only valid for the duration
// of the call.
func (node *Node) Walk(fn func(leaf *Node, path Code)) {
	var path Code
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			fn(n, path)
			return
		}
		path = append(path, Zero)
		walk(n.Left)
		path[len(path)-1] = One
		walk(n.Right)
		path = path[:len(path)-1]
	}
	walk(node)
}

// Depth returns the length of the longest root-to-leaf path.
func (node *Node) Depth() int {
	if node.IsLeaf() {
		return 0
	}
	l, r := node.Left.Depth(), node.Right.Depth()
	if l > r {
		return l + 1
	}
	return r + 1
}
