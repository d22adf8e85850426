package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffmantext"
	"github.com/chronos-tachyon/huffmantext/internal/logger"
)

func newBatchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Encode several files, each with its own Huffman code",
		Long:  "Encode the contents of every file with a Huffman code built for that file, and print the encoded size of each.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := make([]string, len(args))
			for index, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				texts[index] = string(raw)
			}

			logger.Logger().Debug().Int("files", len(texts)).Int("workers", workers).Msg("encoding batch")
			results, err := huffmantext.EncodeAll(cmd.Context(), texts, workers)
			if err != nil {
				return err
			}

			p := message.NewPrinter(language.English) // For commas between thousands
			out := cmd.OutOrStdout()
			var totalBytes, totalBits int
			for _, result := range results {
				p.Fprintf(out, "%s: %d bytes -> %d bits (%.1f%%)\n", args[result.Index], result.Size, result.Bits.Len(), 100*result.Ratio())
				totalBytes += result.Size
				totalBits += result.Bits.Len()
			}
			if len(results) > 1 {
				p.Fprintf(out, "total: %d bytes -> %d bits\n", totalBytes, totalBits)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of encoding workers (0 = auto)")
	return cmd
}
