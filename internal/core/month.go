package core

import (
	"time"

	"grana/internal/text"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril",
	"Maio", "Junho", "Julho", "Agosto",
	"Setembro", "Outubro", "Novembro", "Dezembro",
}

// monthTokens maps folded user tokens to months. Full names arrive here
// already diacritic-stripped, so "março" and "marco" share an entry.
var monthTokens = map[string]time.Month{
	"janeiro": time.January, "jan": time.January, "1": time.January, "01": time.January,
	"fevereiro": time.February, "fev": time.February, "2": time.February, "02": time.February,
	"marco": time.March, "mar": time.March, "3": time.March, "03": time.March,
	"abril": time.April, "abr": time.April, "4": time.April, "04": time.April,
	"maio": time.May, "mai": time.May, "5": time.May, "05": time.May,
	"junho": time.June, "jun": time.June, "6": time.June, "06": time.June,
	"julho": time.July, "jul": time.July, "7": time.July, "07": time.July,
	"agosto": time.August, "ago": time.August, "8": time.August, "08": time.August,
	"setembro": time.September, "set": time.September, "9": time.September, "09": time.September,
	"outubro": time.October, "out": time.October, "10": time.October,
	"novembro": time.November, "nov": time.November, "11": time.November,
	"dezembro": time.December, "dez": time.December, "12": time.December,
}

// MonthName returns the pt-BR display name for a month.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return "Mês inválido"
	}
	return monthNames[m-1]
}

// ResolveMonth turns a user token into a month. It accepts the full pt-BR
// name (with or without accents, any case), the 3-letter abbreviation and
// the 1/2-digit numeric form.
func ResolveMonth(token string) (time.Month, error) {
	m, ok := monthTokens[text.Fold(token)]
	if !ok {
		return 0, ErrUnknownMonth
	}
	return m, nil
}
