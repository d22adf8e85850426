package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

const (
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[1;34m"
	ansiReset  = "\033[1;0m"
)

var bannerLines = []string{
	"\t\t\t\t " + ansiYellow + "     #########################################################\n",
	"\t\t\t\t " + ansiYellow + "     ##                                                     ##\n",
	"\t\t\t\t " + ansiYellow + "     ##               " + ansiBlue + " ENCODER AND DECODER       " + ansiYellow + "           ##\n",
	"\t\t\t\t " + ansiYellow + "     ## " + ansiBlue + "      USING HUFFMAN ENCODING TECHNIQUE  " + ansiYellow + "            ##\n",
	"\t\t\t\t " + ansiYellow + "     ##                                                     ##\n",
	"\t\t\t\t " + ansiYellow + "     #########################################################\n",
}

func newInteractiveCmd() *cobra.Command {
	var (
		noBanner bool
		delay    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Prompt for a text to encode and a bit string to decode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in := bufio.NewReader(cmd.InOrStdin())

			if !noBanner {
				for _, line := range bannerLines {
					fmt.Fprint(out, line)
					time.Sleep(delay)
				}
				fmt.Fprint(out, ansiReset)
			}

			text, err := prompt(out, in, "Enter a string to encode: ")
			if err != nil {
				return err
			}
			tree, err := buildTree(text)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Huffman Codes For Entered String:")
			if _, err := tree.Codes().WriteTo(out); err != nil {
				return err
			}
			encoded, err := tree.EncodeString(text)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "ENCODED STRING: %s\n\n", encoded)

			digits, err := prompt(out, in, "ENTER THE ENCODE OF STRING TO DECODE: ")
			if err != nil {
				return err
			}
			decoded, err := tree.DecodeString(digits)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "DECODED STRING: %s\n", decoded)

			if !noBanner {
				fmt.Fprintf(out, "\t\t\t\t********************* %sEND OF PROGRAMME %s***********************\n\n", ansiBlue, ansiReset)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "Do not print the banner")
	cmd.Flags().DurationVar(&delay, "delay", 80*time.Millisecond, "Pause after each banner line")
	return cmd
}

// prompt writes msg and reads one line.  A final line without a newline is
// accepted; no input at all is io.ErrUnexpectedEOF.
func prompt(out io.Writer, in *bufio.Reader, msg string) (string, error) {
	fmt.Fprint(out, msg)
	line, err := in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if errors.Is(err, io.EOF) {
		return "", io.ErrUnexpectedEOF
	}
	if err != nil {
		return "", err
	}
	return trimNewline(line), nil
}
