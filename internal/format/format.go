// Package format renders movie metadata for display.
package format

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Runtime formats minutes as "2h 28m", or "Unknown" when not positive
func Runtime(minutes int) string {
	if minutes <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Money formats whole US dollars as "$1,234,567", or "N/A" for zero
func Money(amount int64) string {
	if amount == 0 {
		return "N/A"
	}
	if amount < 0 {
		return "-$" + printer.Sprintf("%d", -amount)
	}
	return "$" + printer.Sprintf("%d", amount)
}

// Date formats an ISO date as "March 15, 2024".
// Empty or unparsable dates yield "Unknown Release Date".
func Date(iso string) string {
	if iso == "" {
		return "Unknown Release Date"
	}
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return "Unknown Release Date"
	}
	return t.Format("January 2, 2006")
}

// Votes formats a vote count with thousands separators
func Votes(count int) string {
	return printer.Sprintf("%d", count)
}

// Rating formats an average rating with one decimal
func Rating(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
