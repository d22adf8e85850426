package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/logger"
)

func newDecodeCmd() *cobra.Command {
	var (
		source  string
		lenient bool
	)

	cmd := &cobra.Command{
		Use:   "decode --source TEXT [bits]",
		Short: "Decode a string of binary digits",
		Long: "Rebuild the Huffman tree of the source text and use it to decode the bits (or stdin). " +
			"With --lenient, an incomplete code at the end is ignored instead of reported.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digits, err := readText(cmd, args)
			if err != nil {
				return err
			}
			tree, err := buildTree(source)
			if err != nil {
				return fmt.Errorf("source: %w", err)
			}
			bits, err := huffmantext.ParseCode(digits)
			if err != nil {
				return err
			}

			var text string
			if lenient {
				var consumed int
				text, consumed = huffmantext.DecodePrefix(tree.Root(), bits)
				if consumed != bits.Len() {
					logger.Logger().Warn().Int("ignored", bits.Len()-consumed).Msg("ignoring trailing bits")
				}
			} else {
				text, err = tree.Decode(bits)
				var tie *huffmantext.TruncatedInputError
				if errors.As(err, &tie) {
					logger.Logger().Debug().Int("consumed", tie.Consumed).Int("pending", tie.Pending).Msg("truncated input")
				}
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Text whose Huffman tree was used to encode the bits")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Ignore an incomplete trailing code")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}
