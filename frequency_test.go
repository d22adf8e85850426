package huffmantext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCountFrequencies(t *testing.T) {
	freqs := CountFrequencies("mississippi")

	expect := Frequencies{'i': 4, 'm': 1, 'p': 2, 's': 4}
	if diff := cmp.Diff(expect, freqs); diff != "" {
		t.Errorf("wrong frequencies (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Symbol{'i', 'm', 'p', 's'}, freqs.Symbols()); diff != "" {
		t.Errorf("wrong symbols (-want +got):\n%s", diff)
	}
	if n := freqs.Len(); n != 4 {
		t.Errorf("Len: expected 4, got %d", n)
	}
	if total := freqs.Total(); total != 11 {
		t.Errorf("Total: expected 11, got %d", total)
	}
}

func TestFrequencies_Add(t *testing.T) {
	freqs := CountFrequencies("ab")
	freqs.Add("b\xff")

	expect := Frequencies{'a': 1, 'b': 2, 0xff: 1}
	if diff := cmp.Diff(expect, freqs); diff != "" {
		t.Errorf("wrong frequencies (-want +got):\n%s", diff)
	}
}

func TestCountFrequencies_Empty(t *testing.T) {
	freqs := CountFrequencies("")
	if len(freqs) != 0 {
		t.Errorf("expected no symbols, got %v", freqs)
	}
	if len(freqs.Symbols()) != 0 {
		t.Errorf("expected no symbols, got %v", freqs.Symbols())
	}
}
