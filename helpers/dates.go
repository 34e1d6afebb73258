package helpers

import (
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/bibparse/citation"
)

// ParsePubMedDate parses MEDLINE DP values: "2020 Jun 9", "2023 May",
// "2023". Month names are case-insensitive; an unrecognized month or
// out-of-range day is dropped without voiding the rest. Returns nil when no
// year can be read.
func ParsePubMedDate(dateStr string) *citation.Date {
	parts := strings.Fields(strings.TrimSpace(dateStr))
	if len(parts) == 0 {
		return nil
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}

	date := &citation.Date{Year: year}
	if len(parts) > 1 {
		date.Month = parseMonthName(parts[1])
	}
	if len(parts) > 2 {
		if day, err := strconv.Atoi(parts[2]); err == nil && day >= 1 && day <= 31 {
			date.Day = day
		}
	}
	return date
}

// ParseRISDate parses slash-delimited RIS dates: "1999/12/25/Christmas
// edition", "2023/05", "2023". The year is required; month and day are
// range-checked independently, so one failing check does not void the other.
func ParseRISDate(dateStr string) *citation.Date {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil
	}

	parts := strings.Split(dateStr, "/")
	if parts[0] == "" {
		return nil
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}

	date := &citation.Date{Year: year}
	if len(parts) > 1 && parts[1] != "" {
		if month, err := strconv.Atoi(parts[1]); err == nil && month >= 1 && month <= 12 {
			date.Month = month
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if day, err := strconv.Atoi(parts[2]); err == nil && day >= 1 && day <= 31 {
			date.Day = day
		}
	}
	return date
}

// NewDateFromParts builds a Date from pre-parsed components. A zero year
// yields nil; month and day pass through as given.
func NewDateFromParts(year, month, day int) *citation.Date {
	if year == 0 {
		return nil
	}
	return &citation.Date{Year: year, Month: month, Day: day}
}

// ParseYearOnly parses a bare year, tolerating trailing slashes ("2023/").
func ParseYearOnly(yearStr string) *citation.Date {
	yearStr = strings.TrimSpace(yearStr)
	if yearStr == "" {
		return nil
	}
	yearPart, _, _ := strings.Cut(yearStr, "/")
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return nil
	}
	return &citation.Date{Year: year}
}

// parseMonthName maps English month names and abbreviations to 1-12,
// returning 0 for anything unrecognized.
func parseMonthName(monthStr string) int {
	switch strings.ToLower(monthStr) {
	case "jan", "january":
		return 1
	case "feb", "february":
		return 2
	case "mar", "march":
		return 3
	case "apr", "april":
		return 4
	case "may":
		return 5
	case "jun", "june":
		return 6
	case "jul", "july":
		return 7
	case "aug", "august":
		return 8
	case "sep", "september":
		return 9
	case "oct", "october":
		return 10
	case "nov", "november":
		return 11
	case "dec", "december":
		return 12
	default:
		return 0
	}
}

// NewlineDelimiter reports the newline delimiter of multi-line text: "\r\n"
// when the character before the first "\n" is "\r", else "\n".
func NewlineDelimiter(text string) string {
	if i := strings.IndexByte(text, '\n'); i > 0 && text[i-1] == '\r' {
		return "\r\n"
	}
	return "\n"
}
