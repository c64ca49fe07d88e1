package analyzing

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MonthLabeler converte um mês no rótulo usado como chave das tendências mensais
type MonthLabeler func(time.Month) string

const DefaultLocale = "ru"

// Nomes curtos por localidade, no formato que os relatórios originais exibiam
var monthNames = map[string][12]string{
	"ru":    {"янв.", "февр.", "мар.", "апр.", "мая", "июн.", "июл.", "авг.", "сент.", "окт.", "нояб.", "дек."},
	"pt-br": {"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
	"en":    {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
}

var ErrUnsupportedLocale = errors.New("localidade não suportada")

// LabelerFor retorna o MonthLabeler da localidade (ex: "ru", "pt-BR", "en")
func LabelerFor(locale string) (MonthLabeler, error) {
	names, ok := monthNames[strings.ToLower(strings.TrimSpace(locale))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}

	return func(m time.Month) string {
		if m < time.January || m > time.December {
			return ""
		}
		return names[m-1]
	}, nil
}

func defaultLabeler() MonthLabeler {
	labeler, _ := LabelerFor(DefaultLocale)
	return labeler
}
