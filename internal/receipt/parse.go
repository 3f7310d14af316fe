// Package receipt extracts bill fields from OCR-recognized receipt text.
//
// The extraction is a best-effort heuristic, not a parser: receipts vary
// too much for a grammar, so the first date-shaped token becomes the date
// and the first two numbers become quantity and unit price. Callers are
// expected to show the result in an editable form, never to trust it.
package receipt

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// Dates like 2024-01-15 or 2024/1/5.
	datePattern = regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`)

	// Bare integers or decimals.
	numberPattern = regexp.MustCompile(`\d+\.?\d*`)
)

// Draft holds the fields recovered from a block of receipt text.
// Fields that could not be recovered stay zero-valued.
type Draft struct {
	// Date is the first date found, normalized to YYYY-MM-DD separators.
	Date string `json:"date,omitempty"`

	// Quantity is the first number found in the text.
	Quantity decimal.Decimal `json:"quantity"`

	// UnitPrice is the second number found in the text.
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Parse scans text line by line and returns the recovered draft.
// Quantity and unit price are only filled when at least two numbers are
// present, since a lone number cannot be told apart from either field.
// Parse never fails; an unusable text yields a zero Draft.
func Parse(text string) Draft {
	var d Draft
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		if m := datePattern.FindString(line); m != "" {
			d.Date = strings.ReplaceAll(m, "/", "-")
			break
		}
	}

	var numbers []string
	for _, line := range lines {
		numbers = append(numbers, numberPattern.FindAllString(line, -1)...)
	}

	if len(numbers) >= 2 {
		if q, err := decimal.NewFromString(strings.TrimSuffix(numbers[0], ".")); err == nil {
			d.Quantity = q
		}
		if p, err := decimal.NewFromString(strings.TrimSuffix(numbers[1], ".")); err == nil {
			d.UnitPrice = p
		}
	}

	return d
}
