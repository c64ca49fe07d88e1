package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler"
	"github.com/vfg2006/sales-analytics-api/internal/bootstrap"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	bootstrap.ConfigureLogger(cfg.App.LogLevel)

	if err := cfg.ValidateSecretKey(); err != nil {
		logrus.WithError(err).Fatal("Defina SECRET_KEY antes de iniciar a API")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reportService, closeSource, err := bootstrap.ReportingService(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o serviço de relatórios")
	}
	defer closeSource()

	if err := reportService.Reload(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os dados de vendas")
	}

	authenticator := authenticating.NewService(cfg)

	reportSyncService := scheduler.NewReportSyncService(reportService, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de relatórios")
	} else {
		logrus.Info("Agendador de relatórios iniciado com sucesso")
	}

	server := api.New(
		cfg,
		reportService,
		authenticator,
		handler.CronJobServices{ReportSyncService: reportSyncService},
	)

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource posiciona o processo no diretório do binário para achar o .env
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)
}
