package huffmantext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// CodeTable maps each leaf symbol of a tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	order   []Symbol
	minSize int
	maxSize int
}

// DeriveCodes walks the tree depth-first and records the path to every leaf.
// 0 means "go left" and 1 means "go right".
//
// A tree consisting of a single leaf has no branches at all; its symbol is
// assigned the one-bit code "0", so that every symbol costs at least one bit
// and the text length survives encoding.
func DeriveCodes(root *Node) *CodeTable {
	ct := &CodeTable{}
	if root.IsLeaf() {
		ct.add(root.Symbol, MakeCode(Zero))
		return ct
	}
	root.Walk(func(leaf *Node, path Code) {
		ct.add(leaf.Symbol, path.Clone())
	})
	return ct
}

func (ct *CodeTable) add(symbol Symbol, hc Code) {
	assert.Assertf(symbol.IsValid(), "CodeTable: leaf with invalid symbol %d", int32(symbol))
	assert.Assertf(ct.codes[symbol] == nil, "CodeTable: duplicate leaf for symbol %d", int32(symbol))
	size := hc.Len()
	if len(ct.order) == 0 || size < ct.minSize {
		ct.minSize = size
	}
	if size > ct.maxSize {
		ct.maxSize = size
	}
	ct.codes[symbol] = hc
	ct.order = append(ct.order, symbol)
}

// FindCode searches the tree for symbol, trying the left subtree before the
// right one, and returns the path to it.  It costs a full tree walk per call;
// use DeriveCodes when encoding more than one symbol.
func FindCode(root *Node, symbol Symbol) (Code, bool) {
	if root.IsLeaf() {
		if root.Symbol == symbol {
			return MakeCode(Zero), true
		}
		return nil, false
	}
	return findCode(root, symbol, nil)
}

func findCode(node *Node, symbol Symbol, path Code) (Code, bool) {
	if node.IsLeaf() {
		if node.Symbol == symbol {
			return path.Clone(), true
		}
		return nil, false
	}
	if hc, found := findCode(node.Left, symbol, append(path, Zero)); found {
		return hc, true
	}
	return findCode(node.Right, symbol, append(path, One))
}

// Lookup returns the Code for symbol, if any.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() {
		return nil, false
	}
	hc := ct.codes[symbol]
	return hc, hc != nil
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.order)
}

// Symbols returns the symbols in tree order (left subtree first).
func (ct *CodeTable) Symbols() []Symbol {
	return slices.Clone(ct.order)
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// EncodedSize returns the number of bits needed to encode a text with the
// given symbol frequencies, or an *UnknownSymbolError if some symbol with a
// non-zero count has no code.
func (ct *CodeTable) EncodedSize(freqs Frequencies) (uint64, error) {
	var total uint64
	for _, symbol := range freqs.Symbols() {
		hc, found := ct.Lookup(symbol)
		if !found {
			return 0, &UnknownSymbolError{Symbol: symbol, Offset: -1}
		}
		total += freqs[symbol] * uint64(hc.Len())
	}
	return total, nil
}

// WriteTo writes the table in human-readable form, one "symbol: digits" line
// per symbol, in tree order.
func (ct *CodeTable) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, symbol := range ct.order {
		fmt.Fprintf(&buf, "%s: %s\n", symbol, ct.codes[symbol].Digits())
	}
	return buf.WriteTo(w)
}

// Dump writes a programmer-readable debugging dump of the table, in symbol
// order, to the given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc := ct.codes[symbol]; hc != nil {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the table as an object from symbol to digit string.
func (ct *CodeTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(ct.order))
	for _, symbol := range ct.order {
		out[symbol.String()] = ct.codes[symbol].Digits()
	}
	return json.Marshal(out)
}

var (
	_ io.WriterTo    = (*CodeTable)(nil)
	_ json.Marshaler = (*CodeTable)(nil)
)
