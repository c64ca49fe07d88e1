package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formata valores monetários com duas casas decimais
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseAmount aceita vírgula ou ponto como separador decimal
func ParseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, fmt.Errorf("valor vazio")
	}

	amount, err := decimal.NewFromString(strings.Replace(value, ",", ".", 1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("valor inválido %q: %w", value, err)
	}
	return amount, nil
}
