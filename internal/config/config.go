package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

// PlaceholderSecretKey é o valor padrão de SECRET_KEY, impróprio para assinar tokens
const PlaceholderSecretKey = "your_secret_key"

var ErrInsecureSecretKey = errors.New("config: SECRET_KEY vazio ou com o valor padrão")

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Data       Data       `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	SecretKey  string     `mapstructure:"secret_key"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Data define de onde vêm as coleções de vendas, produtos e clientes
type Data struct {
	Source        string `mapstructure:"data_source"`
	Dir           string `mapstructure:"data_dir"`
	SalesFile     string `mapstructure:"sales_file"`
	ProductsFile  string `mapstructure:"products_file"`
	CustomersFile string `mapstructure:"customers_file"`
}

type Report struct {
	Dir                 string          `mapstructure:"report_dir"`
	Locale              string          `mapstructure:"report_locale"`
	DefaultThresholdRaw string          `mapstructure:"report_default_threshold"`
	DefaultThreshold    decimal.Decimal `mapstructure:"-"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

type Auth struct {
	AdminUsername     string `mapstructure:"admin_username"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/sales?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	v.SetDefault("DATA_SOURCE", DataSourceCSV)
	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("SALES_FILE", "sales.csv")
	v.SetDefault("PRODUCTS_FILE", "products.csv")
	v.SetDefault("CUSTOMERS_FILE", "customers.csv")

	v.SetDefault("REPORT_DIR", ".")
	v.SetDefault("REPORT_LOCALE", "ru")
	v.SetDefault("REPORT_DEFAULT_THRESHOLD", "1000")

	v.SetDefault("REPORT_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	v.SetDefault("REPORT_SYNC_ENABLED", false)

	v.SetDefault("SECRET_KEY", PlaceholderSecretKey)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")

	v.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults(viper.GetViper())

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(viper.GetViper())
}

// Load decodifica a configuração a partir de uma instância do viper já preenchida
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Data.Source = strings.ToLower(strings.TrimSpace(config.Data.Source))
	if config.Data.Source != DataSourceCSV && config.Data.Source != DataSourcePostgres {
		return nil, fmt.Errorf("config: DATA_SOURCE inválido: %q", config.Data.Source)
	}

	threshold, err := decimal.NewFromString(strings.TrimSpace(config.Report.DefaultThresholdRaw))
	if err != nil {
		return nil, fmt.Errorf("config: REPORT_DEFAULT_THRESHOLD inválido: %w", err)
	}
	config.Report.DefaultThreshold = threshold

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// ValidateSecretKey recusa chave vazia ou igual à padrão
func (c *Config) ValidateSecretKey() error {
	key := strings.TrimSpace(c.SecretKey)
	if key == "" || key == PlaceholderSecretKey {
		return ErrInsecureSecretKey
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
