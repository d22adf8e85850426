package huffmantext

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman tree together with the code table derived from it.
// A Tree is immutable once built and is safe for concurrent use.
type Tree struct {
	root  *Node
	codes *CodeTable
}

// BuildTree builds a Huffman tree from a frequency table.  Symbols with a
// count of 0 are ignored.
//
// The two lowest-frequency nodes are repeatedly merged under a new internal
// node, the first one extracted becoming the left (0) child, until a single
// node remains.  If only one distinct symbol is present, the tree is a single
// leaf.  BuildTree fails with ErrFrequencyOverflow if the counts do not sum
// to a uint64.
func BuildTree(freqs Frequencies) (*Tree, error) {
	symbols := freqs.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}
	var total uint64
	for _, symbol := range symbols {
		if !symbol.IsValid() {
			return nil, &InvalidSymbolError{Symbol: symbol}
		}
		freq := freqs[symbol]
		if freq > math.MaxUint64-total {
			return nil, ErrFrequencyOverflow
		}
		total += freq
	}

	// Step 1: one leaf per symbol, inserted in ascending symbol order.

	q := NewQueue(len(symbols))
	for _, symbol := range symbols {
		q.Insert(NewLeaf(symbol, freqs[symbol]))
	}

	// Step 2: merge the two minimum nodes until one is left.

	for !q.IsSingleton() {
		a, err := q.ExtractMin()
		if err != nil {
			return nil, err
		}
		b, err := q.ExtractMin()
		if err != nil {
			return nil, err
		}
		q.Insert(NewInternal(a, b))
	}

	root, err := q.ExtractMin()
	if err != nil {
		return nil, err
	}
	assert.Assertf(root.Frequency == total, "BuildTree: root frequency %d != total %d", root.Frequency, total)

	return NewTree(root), nil
}

// BuildTreeFromText counts the symbols of text and builds a tree from them.
func BuildTreeFromText(text string) (*Tree, error) {
	return BuildTree(CountFrequencies(text))
}

// NewTree wraps an existing root node, deriving its code table.
func NewTree(root *Node) *Tree {
	assert.Assertf(root != nil, "NewTree: nil root")
	return &Tree{root: root, codes: DeriveCodes(root)}
}

// Root returns the root node.  Callers must not modify it.
func (t *Tree) Root() *Node {
	return t.root
}

// Codes returns the code table derived from the tree.
func (t *Tree) Codes() *CodeTable {
	return t.codes
}

// Frequency returns the sum of all leaf frequencies.
func (t *Tree) Frequency() uint64 {
	return t.root.Frequency
}

// NumLeaves returns the number of distinct symbols in the tree.
func (t *Tree) NumLeaves() int {
	return t.codes.Len()
}

// Depth returns the length of the longest root-to-leaf path.  A single-leaf
// tree has depth 0.
func (t *Tree) Depth() int {
	return t.root.Depth()
}

// String returns a one-line summary of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, frequency %d, with coded lengths of %d .. %d bits)",
		t.NumLeaves(), t.Frequency(), t.codes.MinSize(), t.codes.MaxSize())
}

// Dump writes a programmer-readable debugging dump of the tree structure to
// the given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	var dump func(*Node, int, string)
	dump = func(node *Node, depth int, label string) {
		indent := strings.Repeat("\t", depth+1)
		if node.IsLeaf() {
			fmt.Fprintf(&buf, "%s%s%q = %d\n", indent, label, node.Symbol.String(), node.Frequency)
			return
		}
		fmt.Fprintf(&buf, "%s%s* = %d\n", indent, label, node.Frequency)
		dump(node.Left, depth+1, "0:")
		dump(node.Right, depth+1, "1:")
	}
	dump(t.root, 0, "")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)
