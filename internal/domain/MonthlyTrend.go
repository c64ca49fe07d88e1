package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTrend é o faturamento acumulado de um mês, somando todos os anos
type MonthlyTrend struct {
	Month   time.Month      `json:"-"`
	Label   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}
