package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/bootstrap"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
)

func main() {
	hashPassword := flag.String("hash-password", "", "gera o hash bcrypt para ADMIN_PASSWORD_HASH e encerra")
	flag.Parse()

	// Logs vão para stderr para não se misturarem com o menu
	logrus.SetOutput(os.Stderr)

	if *hashPassword != "" {
		hash, err := authenticating.HashPassword(*hashPassword)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	bootstrap.ConfigureLogger(cfg.App.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	reportService, closeSource, err := bootstrap.ReportingService(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o serviço de relatórios")
	}
	defer closeSource()

	if err := reportService.Reload(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os dados de vendas")
	}

	if err := NewMenu(reportService, os.Stdin, os.Stdout).Run(ctx); err != nil {
		logrus.WithError(err).Error("Menu encerrado com erro")
	}
}
