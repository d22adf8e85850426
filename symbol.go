package huffmantext

import (
	"strconv"
)

// Symbol represents a symbol in the input alphabet.  Each byte of an input
// text is one Symbol, so valid symbols range from 0 to MaxSymbol.
type Symbol int32

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is carried by internal tree nodes, and is returned by some
// functions to clearly indicate that no symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff s is in the alphabet.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the symbol as a character if it is printable ASCII, or as a
// "\xNN" escape otherwise.
func (s Symbol) String() string {
	switch {
	case !s.IsValid():
		return "<invalid>"
	case s >= 0x20 && s < 0x7f:
		return string(rune(s))
	default:
		return `\x` + strconv.FormatUint(uint64(s)|0x100, 16)[1:]
	}
}
