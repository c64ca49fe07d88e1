package reporting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// DefaultCurrency é o sufixo usado no relatório de clientes
const DefaultCurrency = "руб."

var reportFiles = map[domain.ReportType]string{
	domain.ReportTotalSales:        "total_sales_report.txt",
	domain.ReportPopularProducts:   "popular_products_report.txt",
	domain.ReportUnpopularProducts: "unpopular_products_report.txt",
	domain.ReportCustomers:         "customers_report.txt",
	domain.ReportSalesTrends:       "sales_trends_report.txt",
}

// FileNameFor retorna o nome do arquivo de um tipo de relatório
func FileNameFor(reportType domain.ReportType) (string, bool) {
	name, ok := reportFiles[reportType]
	return name, ok
}

// Generator transforma os resultados do motor em texto. Não acessa dados nem arquivos.
type Generator struct {
	currency string
}

func NewGenerator(currency string) *Generator {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Generator{currency: currency}
}

func (g *Generator) TotalSales(total decimal.Decimal) domain.Report {
	return domain.Report{
		Type:     domain.ReportTotalSales,
		FileName: reportFiles[domain.ReportTotalSales],
		Title:    "Relatório do volume total de vendas",
		Body:     fmt.Sprintf("Valor total das vendas: %s\n", utils.FormatMoney(total)),
	}
}

func (g *Generator) PopularProducts(products []domain.Product, salesCount map[int]int64) domain.Report {
	return domain.Report{
		Type:     domain.ReportPopularProducts,
		FileName: reportFiles[domain.ReportPopularProducts],
		Title:    "Relatório dos produtos mais vendidos",
		Body:     productLines("Produtos mais vendidos:", products, salesCount),
	}
}

func (g *Generator) UnpopularProducts(products []domain.Product, salesCount map[int]int64) domain.Report {
	return domain.Report{
		Type:     domain.ReportUnpopularProducts,
		FileName: reportFiles[domain.ReportUnpopularProducts],
		Title:    "Relatório dos produtos menos vendidos",
		Body:     productLines("Produtos menos vendidos:", products, salesCount),
	}
}

func productLines(header string, products []domain.Product, salesCount map[int]int64) string {
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, p := range products {
		fmt.Fprintf(&b, "ID: %d, Nome: %s, Preço: %s, Quantidade de vendas: %d\n",
			p.ID, p.Name, utils.FormatMoney(p.Price), salesCount[p.ID])
	}
	return b.String()
}

// Customers lista os clientes na ordem recebida. Contagens e gastos ausentes saem como zero.
func (g *Generator) Customers(
	customers []domain.Customer,
	purchaseCount map[int]int64,
	spending map[int]decimal.Decimal,
) domain.Report {
	var b strings.Builder
	b.WriteString("Clientes:\n")
	for _, c := range customers {
		fmt.Fprintf(&b, "Cliente: %s, Quantidade de compras: %d, Total gasto: %s %s\n",
			c.Name, purchaseCount[c.ID], utils.FormatMoney(spending[c.ID]), g.currency)
	}

	return domain.Report{
		Type:     domain.ReportCustomers,
		FileName: reportFiles[domain.ReportCustomers],
		Title:    "Relatório de clientes",
		Body:     b.String(),
	}
}

func (g *Generator) SalesTrends(trends []domain.MonthlyTrend) domain.Report {
	var b strings.Builder
	for _, trend := range trends {
		fmt.Fprintf(&b, "Mês: %-8s Valor das vendas: %s\n", trend.Label, utils.FormatMoney(trend.Revenue))
	}

	return domain.Report{
		Type:     domain.ReportSalesTrends,
		FileName: reportFiles[domain.ReportSalesTrends],
		Title:    "Tendências de vendas",
		Body:     b.String(),
	}
}
