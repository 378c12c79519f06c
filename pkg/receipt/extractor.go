package receipt

import (
	"Spendwise-Backend/domain"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Anchored line heuristics, not a grammar. Receipts with currency symbols or
// multi-line prices will not match; that is accepted behavior.
var (
	itemPattern  = regexp.MustCompile(`^(.+?)\s+(\d+[.,]\d{2})$`)
	totalPattern = regexp.MustCompile(`(?i)(TOTAL|AMOUNT|BALANCE DUE)\s+(\d+\.\d{2})`)
)

// ExtractLines normalizes recognized raw text into an ordered sequence of
// trimmed, non-empty lines.
func ExtractLines(rawText string) []string {
	var lines []string
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ParseItems emits one parsed item per line ending in a two-fraction-digit
// amount. Lines that do not match are skipped; order is preserved and
// duplicates are kept. Total keyword lines belong to the total, not the item
// list, and are excluded here.
func ParseItems(lines []string) []domain.ParsedItem {
	var items []domain.ParsedItem
	for _, line := range lines {
		if totalPattern.MatchString(line) {
			continue
		}
		match := itemPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		amount, err := decimal.NewFromString(strings.ReplaceAll(match[2], ",", "."))
		if err != nil {
			continue
		}

		items = append(items, domain.ParsedItem{
			Name:   strings.TrimSpace(match[1]),
			Amount: amount,
		})
	}
	return items
}

// ResolveTotal scans lines in source order and returns the amount of the
// first line containing a total keyword. Later matches are ignored: receipts
// often repeat "total" in subtotal and tax breakdowns, and the earliest
// keyword line is treated as authoritative.
func ResolveTotal(lines []string) (decimal.Decimal, error) {
	for _, line := range lines {
		match := totalPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		total, err := decimal.NewFromString(match[2])
		if err != nil {
			continue
		}
		return total, nil
	}
	return decimal.Decimal{}, domain.ErrTotalNotFound
}
