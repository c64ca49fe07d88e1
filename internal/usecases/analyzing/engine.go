// Package analyzing contém o motor de agregação das vendas. Todas as consultas são
// leituras puras sobre as coleções recebidas na construção.
package analyzing

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// DefaultTopN é o tamanho padrão das listas de produtos mais e menos vendidos
const DefaultTopN = 5

type Option func(*Engine)

func WithObserver(observer Observer) Option {
	return func(e *Engine) {
		if observer != nil {
			e.observer = observer
		}
	}
}

func WithMonthLabeler(labeler MonthLabeler) Option {
	return func(e *Engine) {
		if labeler != nil {
			e.monthLabel = labeler
		}
	}
}

// Engine cruza vendas, produtos e clientes por chave a cada consulta.
// As coleções não são alteradas durante a vida da instância.
type Engine struct {
	sales     []domain.Sale
	products  []domain.Product
	customers []domain.Customer

	productsByID  map[int]domain.Product
	customersByID map[int]domain.Customer

	observer   Observer
	monthLabel MonthLabeler
}

// Estrutura auxiliar para ordenar agregados por chave
type idCount struct {
	id    int
	count int64
}

type idAmount struct {
	id     int
	amount decimal.Decimal
}

func NewEngine(dataset domain.Dataset, opts ...Option) *Engine {
	e := &Engine{
		sales:         slices.Clone(dataset.Sales),
		products:      slices.Clone(dataset.Products),
		customers:     slices.Clone(dataset.Customers),
		productsByID:  make(map[int]domain.Product, len(dataset.Products)),
		customersByID: make(map[int]domain.Customer, len(dataset.Customers)),
		observer:      nopObserver{},
		monthLabel:    defaultLabeler(),
	}

	// Em caso de IDs repetidos vale o primeiro registro
	for _, p := range e.products {
		if _, exists := e.productsByID[p.ID]; !exists {
			e.productsByID[p.ID] = p
		}
	}
	for _, c := range e.customers {
		if _, exists := e.customersByID[c.ID]; !exists {
			e.customersByID[c.ID] = c
		}
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ProductByID retorna o produto e false quando o ID não existe no catálogo
func (e *Engine) ProductByID(id int) (domain.Product, bool) {
	p, ok := e.productsByID[id]
	return p, ok
}

// CustomerByID retorna o cliente e false quando o ID não existe
func (e *Engine) CustomerByID(id int) (domain.Customer, bool) {
	c, ok := e.customersByID[id]
	return c, ok
}

// priceOf retorna zero para produtos ausentes do catálogo
func (e *Engine) priceOf(productID int) decimal.Decimal {
	p, ok := e.ProductByID(productID)
	if !ok {
		return decimal.Zero
	}
	return p.Price
}

func (e *Engine) track(operation string, start time.Time) {
	e.observer.OperationCompleted(operation, time.Since(start), len(e.sales))
}

// TotalRevenue soma o preço atual do produto de cada venda
func (e *Engine) TotalRevenue() decimal.Decimal {
	defer e.track("TotalRevenue", time.Now())

	total := decimal.Zero
	for _, sale := range e.sales {
		total = total.Add(e.priceOf(sale.ProductID))
	}
	return total
}

func (e *Engine) SalesCountByProduct() map[int]int64 {
	defer e.track("SalesCountByProduct", time.Now())
	return e.salesCountByProduct()
}

func (e *Engine) salesCountByProduct() map[int]int64 {
	counts := make(map[int]int64)
	for _, sale := range e.sales {
		counts[sale.ProductID]++
	}
	return counts
}

// TopProducts retorna os n produtos com mais vendas. Empates são resolvidos pelo
// menor ID de produto.
func (e *Engine) TopProducts(n int) []domain.Product {
	defer e.track("TopProducts", time.Now())

	ranked := rankCounts(e.salesCountByProduct(), func(a, b idCount) bool {
		if a.count != b.count {
			return a.count > b.count
		}
		return a.id < b.id
	})
	return e.productsFor(ranked, n)
}

// UnpopularProducts retorna os n produtos com menos vendas. Produtos sem nenhuma
// venda não aparecem, pois a contagem só considera vendas observadas.
func (e *Engine) UnpopularProducts(n int) []domain.Product {
	defer e.track("UnpopularProducts", time.Now())

	ranked := rankCounts(e.salesCountByProduct(), func(a, b idCount) bool {
		if a.count != b.count {
			return a.count < b.count
		}
		return a.id < b.id
	})
	return e.productsFor(ranked, n)
}

func (e *Engine) productsFor(ranked []idCount, n int) []domain.Product {
	if n <= 0 {
		return []domain.Product{}
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	products := make([]domain.Product, 0, len(ranked))
	for _, entry := range ranked {
		if p, ok := e.ProductByID(entry.id); ok {
			products = append(products, p)
		}
	}
	return products
}

func rankCounts(counts map[int]int64, less func(a, b idCount) bool) []idCount {
	ranked := make([]idCount, 0, len(counts))
	for id, count := range counts {
		ranked = append(ranked, idCount{id: id, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})
	return ranked
}

func (e *Engine) CustomerSpending() map[int]decimal.Decimal {
	defer e.track("CustomerSpending", time.Now())
	return e.customerSpending()
}

func (e *Engine) customerSpending() map[int]decimal.Decimal {
	spending := make(map[int]decimal.Decimal)
	for _, sale := range e.sales {
		spending[sale.CustomerID] = spending[sale.CustomerID].Add(e.priceOf(sale.ProductID))
	}
	return spending
}

// TopCustomers retorna os clientes com gasto total maior ou igual ao limite, do
// maior para o menor gasto. IDs sem cadastro de cliente são descartados.
func (e *Engine) TopCustomers(threshold decimal.Decimal) []domain.Customer {
	defer e.track("TopCustomers", time.Now())

	ranked := make([]idAmount, 0)
	for id, amount := range e.customerSpending() {
		if amount.GreaterThanOrEqual(threshold) {
			ranked = append(ranked, idAmount{id: id, amount: amount})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if cmp := ranked[i].amount.Cmp(ranked[j].amount); cmp != 0 {
			return cmp > 0
		}
		return ranked[i].id < ranked[j].id
	})

	customers := make([]domain.Customer, 0, len(ranked))
	for _, entry := range ranked {
		if c, ok := e.CustomerByID(entry.id); ok {
			customers = append(customers, c)
		}
	}
	return customers
}

func (e *Engine) CustomerPurchaseCount() map[int]int64 {
	defer e.track("CustomerPurchaseCount", time.Now())

	counts := make(map[int]int64)
	for _, sale := range e.sales {
		counts[sale.CustomerID]++
	}
	return counts
}

// MonthlySalesTrends agrupa o faturamento pelo rótulo do mês. Vendas do mesmo mês
// em anos diferentes caem no mesmo grupo, assim como meses com o mesmo rótulo.
func (e *Engine) MonthlySalesTrends() map[string]decimal.Decimal {
	defer e.track("MonthlySalesTrends", time.Now())

	trends := make(map[string]decimal.Decimal)
	for month, revenue := range e.revenueByMonth() {
		label := e.monthLabel(month)
		trends[label] = trends[label].Add(revenue)
	}
	return trends
}

// MonthlySalesTrendsOrdered retorna os mesmos grupos em ordem de calendário
func (e *Engine) MonthlySalesTrendsOrdered() []domain.MonthlyTrend {
	defer e.track("MonthlySalesTrendsOrdered", time.Now())

	byMonth := e.revenueByMonth()
	trends := make([]domain.MonthlyTrend, 0, len(byMonth))
	for month := time.January; month <= time.December; month++ {
		revenue, ok := byMonth[month]
		if !ok {
			continue
		}
		trends = append(trends, domain.MonthlyTrend{
			Month:   month,
			Label:   e.monthLabel(month),
			Revenue: revenue,
		})
	}
	return trends
}

func (e *Engine) revenueByMonth() map[time.Month]decimal.Decimal {
	byMonth := make(map[time.Month]decimal.Decimal)
	for _, sale := range e.sales {
		month := sale.Timestamp.Month()
		byMonth[month] = byMonth[month].Add(e.priceOf(sale.ProductID))
	}
	return byMonth
}
