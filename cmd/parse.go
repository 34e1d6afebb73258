package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/bibparse/citation"
	"github.com/lehigh-university-libraries/bibparse/format"
	"github.com/lehigh-university-libraries/bibparse/mapping"
)

var (
	inputFile    string
	outputFile   string
	formatName   string
	profileName  string
	profileFile  string
	csvDelimiter string
	noHeader     bool
	flexible     bool
	autoDetect   bool
	keepRows     bool
	pretty       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse citations into JSON",
	Long: `Parse a citation file and print the normalized records as JSON.

The input format is sniffed from the content unless --format names one
explicitly. CSV input is never sniffed and always needs --format csv.

Input defaults to stdin, output defaults to stdout.

Examples:
  # Auto-detect the format
  cat refs.ris | bibparse parse

  # Explicit format and files
  bibparse parse --format pubmed -i export.nbib -o out.json

  # CSV with a custom delimiter and no header row
  bibparse parse --format csv --delimiter ';' --no-header -i rows.csv

  # CSV through a mapping profile
  bibparse parse --format csv --profile default -i rows.csv`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	parseCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	parseCmd.Flags().StringVarP(&formatName, "format", "f", "", "Input format (ris, pubmed, endnote, csv; default: auto-detect)")
	parseCmd.Flags().StringVarP(&profileName, "profile", "p", "", "CSV header mapping profile name")
	parseCmd.Flags().StringVar(&profileFile, "profile-file", "", "Custom CSV profile YAML file")
	parseCmd.Flags().StringVar(&csvDelimiter, "delimiter", ",", "CSV field delimiter")
	parseCmd.Flags().BoolVar(&noHeader, "no-header", false, "Treat the first CSV row as data, not column names")
	parseCmd.Flags().BoolVar(&flexible, "flexible", false, "Tolerate CSV rows with extra or missing columns")
	parseCmd.Flags().BoolVar(&autoDetect, "auto-detect", false, "Sniff the CSV delimiter and header row from content")
	parseCmd.Flags().BoolVar(&keepRows, "keep-rows", false, "Log each raw CSV row as it is parsed")
	parseCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
}

func runParse(cmd *cobra.Command, args []string) (err error) {
	input, inputName, cleanup, err := openInput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := cleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	output, outCleanup, err := openOutput()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := outCleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	opts, err := buildParseOptions(inputName)
	if err != nil {
		return err
	}

	citations, sourceFormat, err := parseInput(input, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Parsed %d citations (%s)\n", len(citations), sourceFormat)

	encoder := json.NewEncoder(output)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(citations); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// parseInput dispatches to the named format, or sniffs one from content.
func parseInput(input io.Reader, opts *format.ParseOptions) ([]*citation.Citation, citation.SourceFormat, error) {
	if formatName != "" {
		parser, err := format.GetParser(formatName)
		if err != nil {
			return nil, citation.FormatUnknown, err
		}
		sourceFormat := format.SourceFormatFor(parser.Name())
		citations, err := parser.Parse(input, opts)
		if err != nil {
			return nil, sourceFormat, fmt.Errorf("parsing input: %w", err)
		}
		return citations, sourceFormat, nil
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return nil, citation.FormatUnknown, fmt.Errorf("reading input: %w", err)
	}

	citations, detected, err := format.DetectAndParse(data, opts)
	if err != nil {
		return nil, detected, fmt.Errorf("parsing input: %w", err)
	}
	return citations, detected, nil
}

func buildParseOptions(inputName string) (*format.ParseOptions, error) {
	opts := format.NewParseOptions()
	opts.SourceName = inputName
	opts.HasHeader = !noHeader
	opts.Flexible = flexible
	opts.AutoDetect = autoDetect
	opts.StoreOriginalRows = keepRows

	if len(csvDelimiter) != 1 {
		return nil, fmt.Errorf("delimiter must be a single character, got %q", csvDelimiter)
	}
	opts.Delimiter = csvDelimiter[0]

	profile, err := loadProfile()
	if err != nil {
		return nil, err
	}
	opts.Profile = profile

	return opts, nil
}

func loadProfile() (*mapping.Profile, error) {
	if profileFile != "" {
		p, err := mapping.LoadProfile(profileFile)
		if err != nil {
			return nil, fmt.Errorf("loading profile file: %w", err)
		}
		return p, nil
	}

	if profileName != "" {
		registry, err := mapping.NewProfileRegistry()
		if err != nil {
			return nil, err
		}
		// User profiles in ~/.bibparse/profiles/ shadow embedded ones.
		if home, herr := os.UserHomeDir(); herr == nil {
			dir := filepath.Join(home, ".bibparse", "profiles")
			if _, serr := os.Stat(dir); serr == nil {
				if lerr := registry.LoadFromDirectory(dir); lerr != nil {
					return nil, lerr
				}
			}
		}
		p, ok := registry.Get(profileName)
		if !ok {
			return nil, fmt.Errorf("unknown profile: %s (not found in ~/.bibparse/profiles/ or embedded profiles)", profileName)
		}
		return p, nil
	}

	return nil, nil
}

func openInput() (io.Reader, string, func() error, error) {
	if inputFile == "" {
		return os.Stdin, "stdin", func() error { return nil }, nil
	}

	f, err := os.Open(inputFile)
	if err != nil {
		return nil, "", nil, fmt.Errorf("opening input file: %w", err)
	}
	cleanup := func() error {
		if cerr := f.Close(); cerr != nil {
			return fmt.Errorf("closing input file: %w", cerr)
		}
		return nil
	}
	return f, inputFile, cleanup, nil
}

func openOutput() (io.Writer, func() error, error) {
	if outputFile == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	cleanup := func() error {
		if cerr := f.Close(); cerr != nil {
			return fmt.Errorf("closing output file: %w", cerr)
		}
		return nil
	}
	return f, cleanup, nil
}
