// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	productsTable  = "products p"
	customersTable = "customers c"
	salesTable     = "sales s"
)

type DatasetRepository interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

type datasetRepository struct {
	conn postgres.Queryer
}

func NewDatasetRepository(conn postgres.Queryer) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func productsQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("p.id", "p.name", "p.price").
		From(productsTable).
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func customersQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("c.id", "c.name").
		From(customersTable).
		OrderBy("c.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func salesQuery() squirrel.SelectBuilder {
	return squirrel.
		Select("s.id", "s.sold_at", "s.customer_id", "s.product_id").
		From(salesTable).
		OrderBy("s.id ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// Load lê as três tabelas. As consultas não fazem join, a junção por chave é
// responsabilidade do motor de análise.
func (r *datasetRepository) Load(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()

	sales, err := r.ListSales(ctx)
	if err != nil {
		return nil, err
	}

	products, err := r.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	customers, err := r.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"sales":       len(sales),
		"products":    len(products),
		"customers":   len(customers),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("repository: dados carregados do postgres")

	return &domain.Dataset{
		Sales:     sales,
		Products:  products,
		Customers: customers,
	}, nil
}

func (r *datasetRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0)
	err := r.list(ctx, productsQuery(), func(rows *sql.Rows) error {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	return products, nil
}

func (r *datasetRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0)
	err := r.list(ctx, customersQuery(), func(rows *sql.Rows) error {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return err
		}
		customers = append(customers, c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	return customers, nil
}

func (r *datasetRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	sales := make([]domain.Sale, 0)
	err := r.list(ctx, salesQuery(), func(rows *sql.Rows) error {
		var s domain.Sale
		if err := rows.Scan(&s.ID, &s.Timestamp, &s.CustomerID, &s.ProductID); err != nil {
			return err
		}
		sales = append(sales, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	return sales, nil
}

func (r *datasetRepository) list(ctx context.Context, builder squirrel.SelectBuilder, scan func(*sql.Rows) error) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("erro ao escanear linha: %w", err)
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return nil
}
