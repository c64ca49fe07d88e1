// Package csvloader carrega as coleções de vendas, produtos e clientes a partir de
// arquivos CSV com cabeçalho.
package csvloader

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var (
	ErrMalformedRow  = errors.New("linha mal formatada")
	ErrNegativePrice = errors.New("preço negativo")
)

// Formatos aceitos para a data/hora da venda (ISO-8601 com ou sem fuso)
var saleTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
}

type Loader struct {
	salesPath     string
	productsPath  string
	customersPath string
}

func New(cfg config.Data) *Loader {
	return &Loader{
		salesPath:     filepath.Join(cfg.Dir, cfg.SalesFile),
		productsPath:  filepath.Join(cfg.Dir, cfg.ProductsFile),
		customersPath: filepath.Join(cfg.Dir, cfg.CustomersFile),
	}
}

// Load lê os três arquivos. Qualquer linha inválida interrompe a carga.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()

	sales, err := loadFile(ctx, l.salesPath, ParseSale)
	if err != nil {
		return nil, err
	}

	products, err := loadFile(ctx, l.productsPath, ParseProduct)
	if err != nil {
		return nil, err
	}

	customers, err := loadFile(ctx, l.customersPath, ParseCustomer)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sales":       len(sales),
		"products":    len(products),
		"customers":   len(customers),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("csvloader: dados carregados")

	return &domain.Dataset{
		Sales:     sales,
		Products:  products,
		Customers: customers,
	}, nil
}

func loadFile[T any](ctx context.Context, path string, parse func([]string) (T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "csvloader: erro ao abrir %s", path)
	}
	defer file.Close()

	items, err := Read(ctx, file, parse)
	if err != nil {
		return nil, errors.Wrapf(err, "csvloader: %s", filepath.Base(path))
	}
	return items, nil
}

// Read converte cada linha do CSV, ignorando o cabeçalho e linhas em branco
func Read[T any](ctx context.Context, r io.Reader, parse func([]string) (T, error)) ([]T, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	items := make([]T, 0)
	header := true
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro de leitura")
		}

		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)
		item, err := parse(record)
		if err != nil {
			return nil, errors.Wrapf(err, "linha %d", line)
		}
		items = append(items, item)
	}

	return items, nil
}

func ParseProduct(fields []string) (domain.Product, error) {
	if len(fields) < 3 {
		return domain.Product{}, errors.Wrapf(ErrMalformedRow, "produto com %d campos", len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return domain.Product{}, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(fields[2]))
	if err != nil {
		return domain.Product{}, errors.Wrapf(ErrMalformedRow, "preço inválido %q", fields[2])
	}
	if price.IsNegative() {
		return domain.Product{}, errors.Wrapf(ErrNegativePrice, "produto %d", id)
	}

	return domain.Product{
		ID:    id,
		Name:  strings.TrimSpace(fields[1]),
		Price: price,
	}, nil
}

func ParseCustomer(fields []string) (domain.Customer, error) {
	if len(fields) < 2 {
		return domain.Customer{}, errors.Wrapf(ErrMalformedRow, "cliente com %d campos", len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return domain.Customer{}, err
	}

	return domain.Customer{
		ID:   id,
		Name: strings.TrimSpace(fields[1]),
	}, nil
}

func ParseSale(fields []string) (domain.Sale, error) {
	if len(fields) < 4 {
		return domain.Sale{}, errors.Wrapf(ErrMalformedRow, "venda com %d campos", len(fields))
	}

	id, err := parseID(fields[0])
	if err != nil {
		return domain.Sale{}, err
	}

	timestamp, err := ParseSaleTime(fields[1])
	if err != nil {
		return domain.Sale{}, err
	}

	customerID, err := parseID(fields[2])
	if err != nil {
		return domain.Sale{}, err
	}

	productID, err := parseID(fields[3])
	if err != nil {
		return domain.Sale{}, err
	}

	return domain.Sale{
		ID:         id,
		Timestamp:  timestamp,
		CustomerID: customerID,
		ProductID:  productID,
	}, nil
}

// ParseSaleTime aceita data/hora local (sem fuso) ou com deslocamento
func ParseSaleTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range saleTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Wrapf(ErrMalformedRow, "data inválida %q", value)
}

func parseID(value string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedRow, "id inválido %q", value)
	}
	return id, nil
}
