// Package parse extracts the structured pieces of a free-text message: the
// monetary amount, an optional explicit date and the remaining description.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"grana/internal/core"
)

var (
	amountRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	dateRe   = regexp.MustCompile(`(?i)em\s+(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
	descRe   = regexp.MustCompile(`(?i)(?:ganhei|recebi|faturei|gastei|paguei|comprei|\+|\-)?\s*\d+(?:\.\d+)?\s*(.*?)\s*(?:em\s+\d{1,2}[/\-]\d{1,2}[/\-]\d{4})?$`)
)

// Amount finds the first numeric token in text and returns it as a decimal.
// The first comma is treated as a decimal separator ("12,50" reads as 12.50).
// Returns zero when no number is present; only the first occurrence counts.
func Amount(text string) decimal.Decimal {
	s := strings.Replace(text, ",", ".", 1)
	token := amountRe.FindString(s)
	if token == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Date looks for a trailing "em D/M/YYYY" clause (slash or dash separators).
// An explicit date must round-trip exactly: 31/02/2024 is rejected with
// core.ErrInvalidDate rather than overflowing into March. Without a clause
// the calendar date of now is returned.
func Date(text string, now time.Time) (time.Time, error) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return core.DateOf(now), nil
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return core.NewDate(year, month, day)
}

// Description strips the leading verb/sign token and amount plus any trailing
// explicit-date clause, returning what is left. When nothing remains the
// trimmed original is returned, so a message with content never yields an
// empty description.
func Description(text string) string {
	s := strings.Replace(text, ",", ".", 1)
	m := descRe.FindStringSubmatch(s)
	if m != nil && m[1] != "" {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}
