// Package locale isolates all display formatting that depends on the
// configured locale and currency: month/day names, currency amounts, and
// short date/time strings.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Portuguese calendar names, Sunday first, as rendered in the exported
// spreadsheet and the daily table.
var (
	monthNames = [12]string{
		"janeiro", "fevereiro", "março", "abril", "maio", "junho",
		"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
	}
	dayNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
)

// Formatter renders numbers, dates and currency for one locale/currency
// pair. Build one from config at startup and pass it where output is
// produced.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New returns a Formatter for the given BCP 47 locale tag and ISO 4217
// currency code, e.g. ("pt-BR", "BRL"). Unknown values fall back to the
// defaults rather than failing: formatting is presentation only.
func New(localeTag, currencyCode string) *Formatter {
	tag, err := language.Parse(localeTag)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = brl
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  currencySymbol(unit),
	}
}

var brl = currency.MustParseISO("BRL")

func currencySymbol(u currency.Unit) string {
	switch u {
	case brl:
		return "R$"
	case currency.USD:
		return "$"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	default:
		return u.String()
	}
}

// Currency renders a monetary amount with the currency symbol and
// locale-correct digit grouping and decimal separator, e.g. "R$ 1.234,56".
func (f *Formatter) Currency(value float64) string {
	return fmt.Sprintf("%s %s", f.symbol, f.Number(value))
}

// Number renders a float with two decimals in the locale's notation.
func (f *Formatter) Number(value float64) string {
	return f.printer.Sprint(number.Decimal(value,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// MonthName returns the lowercase Portuguese month name.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}

// DayName returns the three-letter Portuguese weekday abbreviation.
func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// Date renders the calendar date as dd/mm/yyyy.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// ClockTime renders the wall-clock time as HH:MM.
func ClockTime(t time.Time) string {
	return t.Format("15:04")
}

// ParseDate parses a YYYY-MM-DD entry date into a local-time midnight.
func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, time.Local)
}
