package domain

import "time"

type ReportType string

const (
	ReportTotalSales        ReportType = "total-sales"
	ReportPopularProducts   ReportType = "popular-products"
	ReportUnpopularProducts ReportType = "unpopular-products"
	ReportCustomers         ReportType = "customers"
	ReportSalesTrends       ReportType = "sales-trends"
)

// AllReportTypes na ordem do menu
var AllReportTypes = []ReportType{
	ReportTotalSales,
	ReportPopularProducts,
	ReportUnpopularProducts,
	ReportCustomers,
	ReportSalesTrends,
}

// Report é o texto final de um relatório, pronto para impressão ou gravação em arquivo
type Report struct {
	Type     ReportType `json:"type"`
	FileName string     `json:"file_name"`
	Title    string     `json:"title"`
	Body     string     `json:"body"`
}

// Content retorna o conteúdo gravado em arquivo: título seguido do corpo
func (r Report) Content() string {
	if r.Title == "" {
		return r.Body
	}
	return r.Title + "\n" + r.Body
}

// ReportRun agrupa os relatórios gerados numa mesma execução
type ReportRun struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Reports     []Report  `json:"reports"`
}
