package domain

import "github.com/shopspring/decimal"

// Product representa um item do catálogo. O preço é fixado no momento da carga.
type Product struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
