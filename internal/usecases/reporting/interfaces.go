package reporting

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
)

// DatasetSource fornece as coleções de vendas, produtos e clientes (CSV ou banco)
type DatasetSource interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// ReportWriter persiste o conteúdo de um relatório
type ReportWriter interface {
	Write(ctx context.Context, report domain.Report) error
}

// Reporter é o contrato consumido pela API, pela CLI e pelo agendador
type Reporter interface {
	// Engine retorna o motor carregado no momento
	Engine() (*analyzing.Engine, error)

	// LoadedAt retorna o horário da última carga bem-sucedida
	LoadedAt() time.Time

	// Reload recarrega os dados da fonte e troca o motor atual
	Reload(ctx context.Context) error

	// Build monta o relatório sem gravá-lo
	Build(ctx context.Context, reportType domain.ReportType, params Params) (domain.Report, error)

	// Generate monta e grava o relatório
	Generate(ctx context.Context, reportType domain.ReportType, params Params) (domain.Report, error)

	// GenerateAll monta e grava os cinco relatórios numa única execução
	GenerateAll(ctx context.Context, threshold decimal.Decimal) (*domain.ReportRun, error)
}
