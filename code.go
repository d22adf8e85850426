package huffmantext

import (
	"fmt"
	"strconv"
	"strings"
)

// Bit is a single binary branch decision: Zero goes left, One goes right.
type Bit uint8

const (
	Zero Bit = 0
	One  Bit = 1
)

// Digit returns '0' or '1'.
func (b Bit) Digit() byte {
	return '0' + byte(b&1)
}

// Code represents a sequence of bits.  The first element is the first
// branch taken from the root.  There is no limit on its length.
type Code []Bit

// MakeCode is a convenience function that constructs a Code from bits.
func MakeCode(bits ...Bit) Code {
	out := make(Code, len(bits))
	copy(out, bits)
	return out
}

// ParseCode parses a string of '0' and '1' characters.  Any other character
// is rejected with an *InvalidDigitError.
func ParseCode(str string) (Code, error) {
	out := make(Code, 0, len(str))
	for index, ch := range str {
		switch ch {
		case '0':
			out = append(out, Zero)
		case '1':
			out = append(out, One)
		default:
			return nil, &InvalidDigitError{Char: ch, Offset: index}
		}
	}
	return out, nil
}

// Len returns the number of bits in the Code.
func (hc Code) Len() int {
	return len(hc)
}

// Digits returns the Code as a string of '0' and '1' characters.
func (hc Code) Digits() string {
	var sb strings.Builder
	sb.Grow(len(hc))
	for _, bit := range hc {
		sb.WriteByte(bit.Digit())
	}
	return sb.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Digits())
}

// HasPrefix returns true iff prefix is a prefix of hc.  A Code is a prefix of
// itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if len(prefix) > len(hc) {
		return false
	}
	for index, bit := range prefix {
		if hc[index] != bit {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return len(hc) == len(other) && hc.HasPrefix(other)
}

// Clone returns a copy of hc that shares no storage with it.
func (hc Code) Clone() Code {
	return MakeCode(hc...)
}

var _ fmt.Stringer = Code(nil)
