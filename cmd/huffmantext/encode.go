package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantext/internal/logger"
)

func newEncodeCmd() *cobra.Command {
	var table bool

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode a text as a string of binary digits",
		Long:  "Build a Huffman tree for the text (or stdin) and print the text encoded with it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			tree, err := buildTree(text)
			if err != nil {
				return err
			}
			encoded, err := tree.EncodeString(text)
			if err != nil {
				return err
			}
			logger.Logger().Info().Int("bits", len(encoded)).Int("bytes", len(text)).Msg("encoded")

			out := cmd.OutOrStdout()
			if table {
				if _, err := tree.Codes().WriteTo(out); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, encoded)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&table, "table", "t", false, "Also print the code table")
	return cmd
}
