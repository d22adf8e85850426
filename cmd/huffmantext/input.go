package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/logger"
)

// readText returns args[0] if present, or else all of stdin minus one
// trailing newline.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return trimNewline(string(raw)), nil
}

func trimNewline(str string) string {
	str = strings.TrimSuffix(str, "\n")
	return strings.TrimSuffix(str, "\r")
}

// buildTree builds the tree for text and logs its shape.
func buildTree(text string) (*huffmantext.Tree, error) {
	log := logger.Logger()
	freqs := huffmantext.CountFrequencies(text)
	log.Debug().Int("length", len(text)).Int("symbols", freqs.Len()).Msg("counted frequencies")

	tree, err := huffmantext.BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("depth", tree.Depth()).
		Int("minBits", tree.Codes().MinSize()).
		Int("maxBits", tree.Codes().MaxSize()).
		Msg("built Huffman tree")
	return tree, nil
}
