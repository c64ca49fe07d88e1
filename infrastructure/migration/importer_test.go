package migration

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestInsertQueries(t *testing.T) {
	dataset := &domain.Dataset{
		Products:  []domain.Product{{ID: 1, Name: "Pen", Price: decimal.RequireFromString("10.5")}},
		Customers: []domain.Customer{{ID: 7, Name: "Alice"}},
		Sales: []domain.Sale{
			{ID: 1, Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), CustomerID: 7, ProductID: 1},
		},
	}

	queries := InsertQueries(dataset)
	require.Len(t, queries, 3)

	sqlStr, args, err := queries[0].ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO products (id,name,price) VALUES ($1,$2,$3) ON CONFLICT (id) DO NOTHING", sqlStr)
	assert.Equal(t, []interface{}{1, "Pen", "10.5"}, args)

	sqlStr, _, err = queries[2].ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO sales (id,sold_at,customer_id,product_id) VALUES ($1,$2,$3,$4) ON CONFLICT (id) DO NOTHING", sqlStr)
}

func TestInsertQueries_Batches(t *testing.T) {
	customers := make([]domain.Customer, batchSize+1)
	for i := range customers {
		customers[i] = domain.Customer{ID: i + 1, Name: "c"}
	}

	queries := InsertQueries(&domain.Dataset{Customers: customers})
	require.Len(t, queries, 2)

	_, args, err := queries[1].ToSql()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{batchSize + 1, "c"}, args)
}

func TestInsertQueries_Empty(t *testing.T) {
	assert.Empty(t, InsertQueries(&domain.Dataset{}))
}

type failingRunner struct{ err error }

func (f failingRunner) RunInTransaction(context.Context, func(*sql.Tx) error) error {
	return f.err
}

func TestImporter_Import_TransactionError(t *testing.T) {
	want := errors.New("conexão perdida")

	err := NewImporter(failingRunner{err: want}).Import(context.Background(), &domain.Dataset{})

	assert.ErrorIs(t, err, want)
}
