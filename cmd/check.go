package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/format"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a citation file and report errors with source context",
	Long: `Parse a citation file and report the first error as an annotated
source excerpt, with the offending line quoted and the error span
underlined.

Examples:
  bibparse check -i refs.ris
  bibparse check --format csv -i rows.csv`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	checkCmd.Flags().StringVarP(&formatName, "format", "f", "", "Input format (default: auto-detect)")
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	input, inputName, cleanup, err := openInput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	opts := format.NewParseOptions()
	opts.SourceName = inputName

	var citations []*citation.Citation
	if formatName != "" {
		parser, perr := format.GetParser(formatName)
		if perr != nil {
			return perr
		}
		citations, err = parser.Parse(bytes.NewReader(data), opts)
	} else {
		citations, _, err = format.DetectAndParse(data, opts)
	}

	if err != nil {
		var parseErr *citation.ParseError
		if errors.As(err, &parseErr) {
			fmt.Fprint(os.Stderr, parseErr.Diagnostic(inputName, string(data)))
			os.Exit(1)
		}
		return err
	}

	fmt.Printf("OK: %d citations\n", len(citations))
	return nil
}
