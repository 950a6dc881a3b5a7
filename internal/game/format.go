package game

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatMoney renders an amount the way status lines show it: grouped
// thousands and a trailing euro sign, e.g. "1,250€".
func FormatMoney(amount int) string {
	return message.NewPrinter(language.English).Sprintf("%d€", amount)
}

// FormatDay renders a calendar day, e.g. "Day 12/31".
func FormatDay(day, maxDays int) string {
	return message.NewPrinter(language.English).Sprintf("Day %d/%d", day, maxDays)
}
