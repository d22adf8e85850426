package huffmantext

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrEmptyInput is returned when building a tree from zero symbols.
	ErrEmptyInput = errors.New("cannot build Huffman tree: no symbols")

	// ErrFrequencyOverflow is returned when the symbol counts of a
	// frequency table add up to more than a uint64 can hold.
	ErrFrequencyOverflow = errors.New("cannot build Huffman tree: total frequency overflows uint64")

	// ErrEmptyQueue is returned when extracting from an empty Queue.
	ErrEmptyQueue = errors.New("priority queue is empty")

	// ErrUnknownSymbol is returned when encoding a symbol that has no code.
	ErrUnknownSymbol = errors.New("symbol has no Huffman code")

	// ErrTruncatedInput is returned when a bit sequence ends part-way
	// through a code.
	ErrTruncatedInput = errors.New("bit sequence ends in the middle of a code")

	// ErrInvalidDigit is returned when parsing a character other than '0'
	// or '1' as a bit.
	ErrInvalidDigit = errors.New("invalid binary digit")

	// ErrInvalidSymbol is returned for symbols outside the alphabet.
	ErrInvalidSymbol = errors.New("symbol out of range")

	// ErrInvalidCode is returned when a bit selects a branch that does not
	// exist in the tree.
	ErrInvalidCode = errors.New("bit sequence does not match the Huffman tree")

	// ErrRoundTrip is returned by VerifyRoundTrip when decoding does not
	// reproduce the original text.
	ErrRoundTrip = errors.New("decoded text does not match the input")
)

// UnknownSymbolError reports the first symbol of a text that has no code.
type UnknownSymbolError struct {
	Symbol Symbol
	Offset int
}

func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrUnknownSymbol, err.Symbol.String(), err.Offset)
}

func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// TruncatedInputError reports a bit sequence whose last code is incomplete.
// Consumed is the number of bits that decoded cleanly; Pending is the number
// of trailing bits that did not reach a leaf.
type TruncatedInputError struct {
	Consumed int
	Pending  int
}

func (err *TruncatedInputError) Error() string {
	return fmt.Sprintf("%v: %d trailing bit(s) after offset %d", ErrTruncatedInput, err.Pending, err.Consumed)
}

func (err *TruncatedInputError) Is(target error) bool {
	return target == ErrTruncatedInput
}

// InvalidDigitError reports a character that is not a binary digit.
type InvalidDigitError struct {
	Char   rune
	Offset int
}

func (err *InvalidDigitError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d", ErrInvalidDigit, strconv.QuoteRune(err.Char), err.Offset)
}

func (err *InvalidDigitError) Is(target error) bool {
	return target == ErrInvalidDigit
}

// InvalidSymbolError reports a frequency table key outside the alphabet.
type InvalidSymbolError struct {
	Symbol Symbol
}

func (err *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%v: got %d, max %d", ErrInvalidSymbol, int32(err.Symbol), int32(MaxSymbol))
}

func (err *InvalidSymbolError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*TruncatedInputError)(nil)
	_ error = (*InvalidDigitError)(nil)
	_ error = (*InvalidSymbolError)(nil)
)
