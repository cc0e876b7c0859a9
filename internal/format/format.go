// Package format holds pure presentation helpers applied at the API
// boundary. Nothing here touches the database.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders an amount in minor units (cents) as a US-English
// display string, e.g. 150000 -> "$1,500.00".
func Currency(cents int64) string {
	return printer.Sprintf("$%.2f", float64(cents)/100)
}

// Date renders a timestamp as YYYY-MM-DD.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}
