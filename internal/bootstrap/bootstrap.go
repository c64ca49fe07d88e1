// Package bootstrap monta as dependências compartilhadas pela API e pela CLI
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/loader/csvloader"
	"github.com/vfg2006/sales-analytics-api/infrastructure/reportstore"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// ConfigureLogger define formato e nível do logrus a partir da configuração
func ConfigureLogger(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)
}

// DatasetSource escolhe a fonte conforme DATA_SOURCE. O closer libera a conexão
// com o banco quando houver.
func DatasetSource(ctx context.Context, cfg *config.Config) (reporting.DatasetSource, func(), error) {
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return repository.NewDatasetRepository(conn), func() { _ = conn.Close() }, nil
	case config.DataSourceCSV:
		return csvloader.New(cfg.Data), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("fonte de dados desconhecida: %q", cfg.Data.Source)
	}
}

// EngineOptions aplica a localidade dos meses e o observador de log
func EngineOptions(cfg *config.Config) ([]analyzing.Option, error) {
	labeler, err := analyzing.LabelerFor(cfg.Report.Locale)
	if err != nil {
		return nil, err
	}

	return []analyzing.Option{
		analyzing.WithMonthLabeler(labeler),
		analyzing.WithObserver(analyzing.NewLogObserver(log.L)),
	}, nil
}

// ReportingService monta o serviço de relatórios com a fonte e o diretório configurados
func ReportingService(ctx context.Context, cfg *config.Config) (*reporting.Service, func(), error) {
	source, closer, err := DatasetSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	opts, err := EngineOptions(cfg)
	if err != nil {
		closer()
		return nil, nil, err
	}

	service := reporting.NewService(
		source,
		reportstore.NewFileWriter(cfg.Report.Dir),
		reporting.NewGenerator(reporting.DefaultCurrency),
		opts...,
	)

	return service, closer, nil
}
