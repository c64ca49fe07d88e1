package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
)

func csvConfig(t *testing.T) *config.Config {
	t.Helper()

	dataDir := t.TempDir()
	files := map[string]string{
		"products.csv":  "id,name,price\n1,Pen,10\n",
		"customers.csv": "id,name\n1,Alice\n",
		"sales.csv":     "id,datetime,customerId,productId\n1,2024-03-01T10:00:00,1,1\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}

	cfg := &config.Config{}
	cfg.Data = config.Data{
		Source:        config.DataSourceCSV,
		Dir:           dataDir,
		SalesFile:     "sales.csv",
		ProductsFile:  "products.csv",
		CustomersFile: "customers.csv",
	}
	cfg.Report.Dir = filepath.Join(t.TempDir(), "reports")
	cfg.Report.Locale = "pt-BR"
	return cfg
}

func TestReportingService_CSV(t *testing.T) {
	cfg := csvConfig(t)

	service, closer, err := ReportingService(context.Background(), cfg)
	require.NoError(t, err)
	defer closer()

	require.NoError(t, service.Reload(context.Background()))

	report, err := service.Generate(context.Background(), domain.ReportSalesTrends, reporting.Params{})
	require.NoError(t, err)
	assert.Contains(t, report.Body, "mar.")

	content, err := os.ReadFile(filepath.Join(cfg.Report.Dir, "sales_trends_report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "10.00")
}

func TestReportingService_InvalidLocale(t *testing.T) {
	cfg := csvConfig(t)
	cfg.Report.Locale = "klingon"

	_, _, err := ReportingService(context.Background(), cfg)

	assert.Error(t, err)
}

func TestDatasetSource_Unknown(t *testing.T) {
	cfg := &config.Config{}
	cfg.Data.Source = "excel"

	_, _, err := DatasetSource(context.Background(), cfg)

	assert.ErrorContains(t, err, "excel")
}
