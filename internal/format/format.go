package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"CZK": "Kč",
	"GBP": "£",
}

// Price formats a whole-unit amount with locale digit grouping.
// Example: Price(2000, "USD", "en") => "$2,000"; Price(2000, "CZK", "cs") => "2 000 Kč"
func Price(amount int64, currency, lang string) string {
	currency = strings.ToUpper(currency)
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.English
	}
	digits := message.NewPrinter(tag).Sprintf("%d", amount)
	sym, ok := symbols[currency]
	if !ok {
		return currency + " " + digits
	}
	base, _ := tag.Base()
	if base.String() == "cs" {
		return digits + " " + sym
	}
	if strings.HasPrefix(digits, "-") {
		return "-" + sym + digits[1:]
	}
	return sym + digits
}

// Date formats t in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "cs":
		return t.Format("2. 1. 2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
