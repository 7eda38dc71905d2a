package timeline

import (
	"strconv"
	"time"
)

var shortMonths = map[string][12]string{
	"pt": {"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"},
	"en": {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

// MonthLabel returns the short month name for locale, falling back to
// English for unknown locales.
func MonthLabel(month time.Month, locale string) string {
	if month < time.January || month > time.December {
		return ""
	}
	names, ok := shortMonths[locale]
	if !ok {
		names = shortMonths["en"]
	}
	return names[month-1]
}

// Label formats the group heading, e.g. "Mar 2024".
func (g PeriodGroup) Label(locale string) string {
	return MonthLabel(g.Month, locale) + " " + strconv.Itoa(g.Year)
}
