package domain

// Dataset agrupa as três coleções carregadas na inicialização
type Dataset struct {
	Sales     []Sale
	Products  []Product
	Customers []Customer
}
