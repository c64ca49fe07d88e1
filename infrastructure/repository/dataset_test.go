package repository

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetQueries(t *testing.T) {
	tests := []struct {
		name    string
		builder squirrel.SelectBuilder
		want    string
	}{
		{
			name:    "produtos",
			builder: productsQuery(),
			want:    "SELECT p.id, p.name, p.price FROM products p ORDER BY p.id ASC",
		},
		{
			name:    "clientes",
			builder: customersQuery(),
			want:    "SELECT c.id, c.name FROM customers c ORDER BY c.id ASC",
		},
		{
			name:    "vendas",
			builder: salesQuery(),
			want:    "SELECT s.id, s.sold_at, s.customer_id, s.product_id FROM sales s ORDER BY s.id ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.builder.ToSql()

			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Empty(t, args)
		})
	}
}
