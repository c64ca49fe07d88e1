package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/loader/csvloader"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

// Lê os CSVs configurados em DATA_DIR e grava no banco de DATABASE_URL
func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	dataset, err := csvloader.New(cfg.Data).Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler os arquivos CSV")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao banco")
	}
	defer conn.Close()

	if err := migration.NewImporter(conn).Import(ctx, dataset); err != nil {
		logrus.WithError(err).Fatal("ERRO na importação, transação desfeita")
	}

	logrus.Info("Migração concluída com sucesso")
}
