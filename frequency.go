package huffmantext

import (
	"golang.org/x/exp/slices"
)

// Frequencies maps each symbol of a text to its number of occurrences.
// Symbols that do not occur are absent, not present with a count of 0.
type Frequencies map[Symbol]uint64

// CountFrequencies scans text and counts every byte.
func CountFrequencies(text string) Frequencies {
	freqs := make(Frequencies)
	freqs.Add(text)
	return freqs
}

// Add counts the bytes of text on top of the existing counts.
func (freqs Frequencies) Add(text string) {
	var counts [NumSymbols]uint64
	for index := 0; index < len(text); index++ {
		counts[text[index]]++
	}
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if count := counts[symbol]; count != 0 {
			freqs[symbol] += count
		}
	}
}

// Len returns the number of distinct symbols with a non-zero count.
func (freqs Frequencies) Len() int {
	var n int
	for _, count := range freqs {
		if count != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, i.e. the length of the text.
func (freqs Frequencies) Total() uint64 {
	var sum uint64
	for _, count := range freqs {
		sum += count
	}
	return sum
}

// Symbols returns the symbols with a non-zero count in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, len(freqs))
	for symbol, count := range freqs {
		if count != 0 {
			out = append(out, symbol)
		}
	}
	slices.Sort(out)
	return out
}
