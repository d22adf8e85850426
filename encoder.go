package huffmantext

import (
	"strings"
)

// Encoder encodes texts with a fixed CodeTable.
type Encoder struct {
	codes *CodeTable
}

// NewEncoder returns an Encoder for the given table.
func NewEncoder(codes *CodeTable) Encoder {
	return Encoder{codes: codes}
}

// Encode returns the concatenation of the codes of every symbol of text.
// If a symbol has no code, Encode returns an *UnknownSymbolError for the
// first such symbol and no bits.
func (e Encoder) Encode(text string) (Code, error) {
	out := make(Code, 0, len(text)*e.codes.MaxSize())
	for index := 0; index < len(text); index++ {
		symbol := Symbol(text[index])
		hc, found := e.codes.Lookup(symbol)
		if !found {
			return nil, &UnknownSymbolError{Symbol: symbol, Offset: index}
		}
		out = append(out, hc...)
	}
	return out, nil
}

// EncodeString is like Encode, but returns the bits as a string of '0' and
// '1' characters.
func (e Encoder) EncodeString(text string) (string, error) {
	var sb strings.Builder
	sb.Grow(len(text) * e.codes.MinSize())
	for index := 0; index < len(text); index++ {
		symbol := Symbol(text[index])
		hc, found := e.codes.Lookup(symbol)
		if !found {
			return "", &UnknownSymbolError{Symbol: symbol, Offset: index}
		}
		for _, bit := range hc {
			sb.WriteByte(bit.Digit())
		}
	}
	return sb.String(), nil
}

// Encode encodes text with the codes of the tree rooted at root.  The code
// table is derived on every call; prefer Tree.Encode for repeated use.
func Encode(root *Node, text string) (Code, error) {
	return NewEncoder(DeriveCodes(root)).Encode(text)
}

// Encode encodes text with this tree's codes.
func (t *Tree) Encode(text string) (Code, error) {
	return NewEncoder(t.codes).Encode(text)
}

// EncodeString encodes text with this tree's codes, as '0' and '1'
// characters.
func (t *Tree) EncodeString(text string) (string, error) {
	return NewEncoder(t.codes).EncodeString(text)
}
