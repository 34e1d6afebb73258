package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibparse/format"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the citation format of an input",
	Long: `Sniff the citation format from input content and print its name.

Detection looks at the first bytes of the input; CSV cannot be detected
this way and must always be named explicitly.

Examples:
  bibparse detect -i mystery.txt
  cat refs.ris | bibparse detect`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
}

func runDetect(cmd *cobra.Command, args []string) (err error) {
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

	f, err := format.DetectFormat(inputName, data)
	if err != nil {
		return err
	}

	fmt.Println(f.Name())
	return nil
}
