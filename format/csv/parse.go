package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
)

// csvParse reads CSV text into raw rows using the given configuration.
func csvParse(text string, cfg *Config) ([]*rawRow, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, citation.ErrWithoutPosition(citation.FormatCSV,
			citation.Syntaxf("Invalid CSV configuration: %v", err))
	}

	reader := stdcsv.NewReader(strings.NewReader(text))
	reader.Comma = rune(cfg.Delimiter)
	if cfg.Flexible {
		reader.FieldsPerRecord = -1
	}

	var headers []string
	var pending []string // first record doubles as data when headerless

	if cfg.HasHeader {
		record, err := reader.Read()
		if err != nil {
			return nil, citation.ErrWithoutPosition(citation.FormatCSV,
				citation.Syntaxf("Header parsing error: %v", err))
		}
		headers = make([]string, len(record))
		for i, h := range record {
			if cfg.Trim {
				h = strings.TrimSpace(h)
			}
			headers[i] = h
		}
	} else {
		record, err := reader.Read()
		if err != nil {
			return nil, citation.ErrWithoutPosition(citation.FormatCSV,
				citation.Syntaxf("Failed to read first record: %v", err))
		}
		headers = make([]string, len(record))
		for i := range record {
			headers[i] = fmt.Sprintf("Column%d", i+1)
		}
		pending = record
	}

	if len(headers) == 0 {
		return nil, citation.ErrWithoutPosition(citation.FormatCSV,
			citation.Syntaxf("No headers found in CSV"))
	}

	var rows []*rawRow
	lineNumber := 1
	if cfg.HasHeader {
		lineNumber = 2
	}

	handle := func(record []string, byteOffset int) error {
		row, err := fromRecord(headers, record, cfg, lineNumber, byteOffset)
		if err != nil {
			return err
		}

		if row.hasContent() {
			rows = append(rows, row)
		} else if !cfg.Flexible {
			return citation.ErrAtLine(lineNumber, citation.FormatCSV,
				citation.Syntaxf("Record contains no meaningful content"))
		}

		lineNumber++
		return nil
	}

	if pending != nil {
		if err := handle(pending, 0); err != nil {
			return nil, err
		}
	}

	for {
		byteOffset := int(reader.InputOffset())
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *stdcsv.ParseError
			if errors.As(err, &csvErr) {
				return nil, citation.ErrAtLine(csvErr.Line, citation.FormatCSV,
					citation.Syntaxf("CSV parsing error: %v", err))
			}
			return nil, citation.ErrAtLine(lineNumber, citation.FormatCSV,
				citation.Syntaxf("CSV parsing error: %v", err))
		}

		if len(record) == 0 {
			lineNumber++
			continue
		}

		if err := handle(record, byteOffset); err != nil {
			return nil, err
		}
	}

	return rows, nil
}
