package huffmantext

import (
	"strings"
)

// Decode walks the tree rooted at root one bit at a time, emitting a symbol
// and returning to the root each time a leaf is reached.
//
// If bits ends part-way through a code, Decode returns the text decoded so
// far together with a *TruncatedInputError.  If a bit selects a branch the
// tree does not have (only possible for a single-leaf tree, whose only code
// is "0"), Decode returns the text decoded so far and ErrInvalidCode.
//
// Decoding with a tree other than the one used for encoding yields garbage,
// not an error.
func Decode(root *Node, bits Code) (string, error) {
	text, consumed, err := decode(root, bits)
	if err != nil {
		return text, err
	}
	if consumed != len(bits) {
		return text, &TruncatedInputError{Consumed: consumed, Pending: len(bits) - consumed}
	}
	return text, nil
}

// DecodePrefix decodes as many complete codes as bits holds, and silently
// ignores any incomplete trailing code.  It returns the decoded text and the
// number of bits that were used.  Decoding also stops at the first bit that
// does not match the tree.
func DecodePrefix(root *Node, bits Code) (text string, consumed int) {
	text, consumed, _ = decode(root, bits)
	return text, consumed
}

func decode(root *Node, bits Code) (string, int, error) {
	var sb strings.Builder

	if root.IsLeaf() {
		for index, bit := range bits {
			if bit&1 != 0 {
				return sb.String(), index, ErrInvalidCode
			}
			sb.WriteByte(byte(root.Symbol))
		}
		return sb.String(), len(bits), nil
	}

	// consumed is the number of bits up to and including the last leaf.
	var consumed int
	current := root
	for index, bit := range bits {
		current = current.Child(bit)
		if current.IsLeaf() {
			sb.WriteByte(byte(current.Symbol))
			current = root
			consumed = index + 1
		}
	}
	return sb.String(), consumed, nil
}

// Decode decodes bits with this tree.  See the package-level Decode.
func (t *Tree) Decode(bits Code) (string, error) {
	return Decode(t.root, bits)
}

// DecodeString parses str as '0' and '1' characters and decodes the result.
func (t *Tree) DecodeString(str string) (string, error) {
	bits, err := ParseCode(str)
	if err != nil {
		return "", err
	}
	return Decode(t.root, bits)
}
