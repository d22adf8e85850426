package huffmantext

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of encoding one document with its own tree.
type Result struct {
	Index int
	Tree  *Tree
	Bits  Code
	Size  int
}

// Ratio returns the encoded size relative to 8 bits per input byte.
func (r Result) Ratio() float64 {
	if r.Size == 0 {
		return 0
	}
	return float64(r.Bits.Len()) / float64(8*r.Size)
}

// EncodeAll builds a separate tree for every text and encodes the text with
// it.  Texts are processed by up to workers goroutines (runtime.NumCPU() if
// workers <= 0).  The first error cancels the remaining work.
func EncodeAll(ctx context.Context, texts []string, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for index := range texts {
		index := index
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			text := texts[index]
			tree, err := BuildTreeFromText(text)
			if err != nil {
				return fmt.Errorf("text %d: %w", index, err)
			}
			bits, err := tree.Encode(text)
			if err != nil {
				return fmt.Errorf("text %d: %w", index, err)
			}
			results[index] = Result{Index: index, Tree: tree, Bits: bits, Size: len(text)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// VerifyRoundTrip encodes text with tree, decodes the result, and checks
// that the original text comes back.
func VerifyRoundTrip(tree *Tree, text string) error {
	bits, err := tree.Encode(text)
	if err != nil {
		return err
	}
	decoded, err := tree.Decode(bits)
	if err != nil {
		return err
	}
	if decoded != text {
		return fmt.Errorf("%w: got %q, want %q", ErrRoundTrip, decoded, text)
	}
	return nil
}
