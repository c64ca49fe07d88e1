// Package migration cria o esquema de vendas no PostgreSQL e importa os CSVs
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// batchSize limita a quantidade de linhas por INSERT
const batchSize = 500

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(14, 2) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id INTEGER PRIMARY KEY,
		sold_at TIMESTAMP NOT NULL,
		customer_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_product_id ON sales (product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_customer_id ON sales (customer_id)`,
}

// Sem chave estrangeira em sales: vendas com produto ou cliente ausente
// continuam válidas para o motor de análise.
const truncateAll = `TRUNCATE TABLE sales, products, customers`

// TxRunner é satisfeito por *postgres.Connection
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

type Importer struct {
	db TxRunner
}

func NewImporter(db TxRunner) *Importer {
	return &Importer{db: db}
}

// Import recria o conteúdo das três tabelas numa única transação
func (i *Importer) Import(ctx context.Context, dataset *domain.Dataset) error {
	start := time.Now()

	err := i.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao criar esquema: %w", err)
			}
		}

		if _, err := tx.ExecContext(ctx, truncateAll); err != nil {
			return fmt.Errorf("erro ao limpar tabelas: %w", err)
		}

		for _, query := range InsertQueries(dataset) {
			sqlStr, args, err := query.ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
				return fmt.Errorf("erro ao inserir lote: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"products":  len(dataset.Products),
		"customers": len(dataset.Customers),
		"sales":     len(dataset.Sales),
		"elapsed":   time.Since(start).String(),
	}).Info("Importação concluída")

	return nil
}

// InsertQueries monta os INSERTs em lotes, produtos e clientes antes das vendas
func InsertQueries(dataset *domain.Dataset) []squirrel.InsertBuilder {
	var queries []squirrel.InsertBuilder

	queries = append(queries, batches(len(dataset.Products), func() squirrel.InsertBuilder {
		return insert("products", "id", "name", "price")
	}, func(q squirrel.InsertBuilder, idx int) squirrel.InsertBuilder {
		p := dataset.Products[idx]
		return q.Values(p.ID, p.Name, p.Price.String())
	})...)

	queries = append(queries, batches(len(dataset.Customers), func() squirrel.InsertBuilder {
		return insert("customers", "id", "name")
	}, func(q squirrel.InsertBuilder, idx int) squirrel.InsertBuilder {
		c := dataset.Customers[idx]
		return q.Values(c.ID, c.Name)
	})...)

	queries = append(queries, batches(len(dataset.Sales), func() squirrel.InsertBuilder {
		return insert("sales", "id", "sold_at", "customer_id", "product_id")
	}, func(q squirrel.InsertBuilder, idx int) squirrel.InsertBuilder {
		s := dataset.Sales[idx]
		return q.Values(s.ID, s.Timestamp, s.CustomerID, s.ProductID)
	})...)

	return queries
}

func insert(table string, columns ...string) squirrel.InsertBuilder {
	return squirrel.
		Insert(table).
		Columns(columns...).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)
}

func batches(
	total int,
	newQuery func() squirrel.InsertBuilder,
	addRow func(squirrel.InsertBuilder, int) squirrel.InsertBuilder,
) []squirrel.InsertBuilder {
	var queries []squirrel.InsertBuilder
	for start := 0; start < total; start += batchSize {
		end := min(start+batchSize, total)
		q := newQuery()
		for idx := start; idx < end; idx++ {
			q = addRow(q, idx)
		}
		queries = append(queries, q)
	}
	return queries
}
