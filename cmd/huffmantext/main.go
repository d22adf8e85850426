// Command huffmantext prints Huffman codes for a text, and encodes or
// decodes texts as strings of binary digits.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantext/internal/logger"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		quiet    bool
	)

	rootCmd := &cobra.Command{
		Use:           "huffmantext",
		Short:         "Huffman encoder and decoder for text",
		Long:          "huffmantext builds a Huffman code for the characters of a text, and uses it to encode the text as a string of 0s and 1s or to decode such a string.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(cmd.ErrOrStderr())
			if quiet {
				logger.Disable()
				return nil
			}
			return logger.SetLevel(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Disable logging")

	rootCmd.AddCommand(newCodesCmd())
	rootCmd.AddCommand(newEncodeCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newInteractiveCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
