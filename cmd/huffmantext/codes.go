package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newCodesCmd() *cobra.Command {
	var (
		asJSON bool
		dump   bool
	)

	cmd := &cobra.Command{
		Use:   "codes [text]",
		Short: "Print the Huffman code of every character",
		Long:  "Build a Huffman tree for the text (or stdin) and print one \"char: code\" line per distinct character, followed by a summary of the tree.",
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

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				raw, err := json.Marshal(tree.Codes())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(raw))
			case dump:
				if _, err := tree.Dump(out); err != nil {
					return err
				}
				_, err = tree.Codes().Dump(out)
				return err
			default:
				if _, err := tree.Codes().WriteTo(out); err != nil {
					return err
				}
				fmt.Fprintln(out, tree)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the table as a JSON object")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print a debugging dump of the tree and table")
	return cmd
}
