package reporting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

var (
	ErrEngineNotLoaded   = errors.New("dados de vendas ainda não carregados")
	ErrUnknownReportType = errors.New("tipo de relatório desconhecido")
)

// Params são os argumentos opcionais de cada relatório. Limit vale para os
// relatórios de produtos (zero usa o padrão) e Threshold para o de clientes.
type Params struct {
	Limit     int
	Threshold decimal.Decimal
}

// Service mantém o motor carregado e gera os relatórios a partir dele
type Service struct {
	source     DatasetSource
	writer     ReportWriter
	generator  *Generator
	engineOpts []analyzing.Option

	mu       sync.RWMutex
	engine   *analyzing.Engine
	loadedAt time.Time
}

var _ Reporter = (*Service)(nil)

func NewService(
	source DatasetSource,
	writer ReportWriter,
	generator *Generator,
	engineOpts ...analyzing.Option,
) *Service {
	if generator == nil {
		generator = NewGenerator(DefaultCurrency)
	}
	return &Service{
		source:     source,
		writer:     writer,
		generator:  generator,
		engineOpts: engineOpts,
	}
}

// ParseReportType valida o tipo recebido da API ou da CLI
func ParseReportType(value string) (domain.ReportType, error) {
	reportType := domain.ReportType(value)
	if _, ok := reportFiles[reportType]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownReportType, value)
	}
	return reportType, nil
}

func (s *Service) Engine() (*analyzing.Engine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.engine == nil {
		return nil, ErrEngineNotLoaded
	}
	return s.engine, nil
}

// LoadedAt retorna o horário da última carga bem-sucedida
func (s *Service) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Reload lê a fonte e troca o motor. Em caso de erro o motor anterior é mantido.
func (s *Service) Reload(ctx context.Context) error {
	dataset, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar dados: %w", err)
	}
	if dataset == nil {
		dataset = &domain.Dataset{}
	}

	engine := analyzing.NewEngine(*dataset, s.engineOpts...)

	s.mu.Lock()
	s.engine = engine
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"sales":     len(dataset.Sales),
		"products":  len(dataset.Products),
		"customers": len(dataset.Customers),
	}).Info("reporting: motor recarregado")

	return nil
}

func (s *Service) Build(ctx context.Context, reportType domain.ReportType, params Params) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	engine, err := s.Engine()
	if err != nil {
		return domain.Report{}, err
	}

	limit := params.Limit
	if limit == 0 {
		limit = analyzing.DefaultTopN
	}

	switch reportType {
	case domain.ReportTotalSales:
		return s.generator.TotalSales(engine.TotalRevenue()), nil
	case domain.ReportPopularProducts:
		return s.generator.PopularProducts(engine.TopProducts(limit), engine.SalesCountByProduct()), nil
	case domain.ReportUnpopularProducts:
		return s.generator.UnpopularProducts(engine.UnpopularProducts(limit), engine.SalesCountByProduct()), nil
	case domain.ReportCustomers:
		return s.generator.Customers(
			engine.TopCustomers(params.Threshold),
			engine.CustomerPurchaseCount(),
			engine.CustomerSpending(),
		), nil
	case domain.ReportSalesTrends:
		return s.generator.SalesTrends(engine.MonthlySalesTrendsOrdered()), nil
	default:
		return domain.Report{}, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}
}

func (s *Service) Generate(ctx context.Context, reportType domain.ReportType, params Params) (domain.Report, error) {
	report, err := s.Build(ctx, reportType, params)
	if err != nil {
		return domain.Report{}, err
	}

	if err := s.writer.Write(ctx, report); err != nil {
		return domain.Report{}, fmt.Errorf("erro ao gravar relatório %s: %w", report.FileName, err)
	}

	return report, nil
}

// GenerateAll interrompe no primeiro erro. Relatórios já gravados permanecem.
func (s *Service) GenerateAll(ctx context.Context, threshold decimal.Decimal) (*domain.ReportRun, error) {
	runID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	logger := logrus.WithField("run_id", runID)
	start := time.Now()

	run := &domain.ReportRun{
		ID:          runID,
		GeneratedAt: start,
		Reports:     make([]domain.Report, 0, len(domain.AllReportTypes)),
	}

	for _, reportType := range domain.AllReportTypes {
		report, err := s.Generate(ctx, reportType, Params{Threshold: threshold})
		if err != nil {
			logger.WithError(err).WithField("report", reportType).Error("reporting: falha ao gerar relatório")
			return nil, err
		}
		run.Reports = append(run.Reports, report)
	}

	logger.WithField("duration_ms", time.Since(start).Milliseconds()).Info("reporting: relatórios gerados")

	return run, nil
}
