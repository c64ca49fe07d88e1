package domain

import "time"

// Sale representa uma venda registrada. CustomerID e ProductID são chaves
// estrangeiras sem integridade referencial garantida.
type Sale struct {
	ID         int       `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	CustomerID int       `json:"customer_id"`
	ProductID  int       `json:"product_id"`
}
