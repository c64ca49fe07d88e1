package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func testEngine(t *testing.T) *analyzing.Engine {
	t.Helper()

	labeler, err := analyzing.LabelerFor("en")
	require.NoError(t, err)

	return analyzing.NewEngine(domain.Dataset{
		Products: []domain.Product{
			{ID: 1, Name: "Pen", Price: decimal.NewFromInt(10)},
			{ID: 2, Name: "Book", Price: decimal.NewFromInt(25)},
		},
		Customers: []domain.Customer{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
		},
		Sales: []domain.Sale{
			{ID: 1, Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), CustomerID: 1, ProductID: 1},
			{ID: 2, Timestamp: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC), CustomerID: 1, ProductID: 2},
			{ID: 3, Timestamp: time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC), CustomerID: 2, ProductID: 1},
		},
	}, analyzing.WithMonthLabeler(labeler))
}

func serve(rt http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestAnalyticsHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().Engine().Return(testEngine(t), nil).AnyTimes()

	rt := router.New(router.WithRoutes(Analytics(mockReporter)...))

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Faturamento total",
			target:     "/v1/sales/total-revenue",
			wantStatus: http.StatusOK,
			wantBody:   `{"total_revenue":"45"}`,
		},
		{
			name:       "Vendas por produto",
			target:     "/v1/products/sales-count",
			wantStatus: http.StatusOK,
			wantBody:   `{"1":2,"2":1}`,
		},
		{
			name:       "Mais vendidos com limite padrão",
			target:     "/v1/products/top",
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":1,"name":"Pen","price":"10"},{"id":2,"name":"Book","price":"25"}]`,
		},
		{
			name:       "Menos vendidos com limite 1",
			target:     "/v1/products/unpopular?limit=1",
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":2,"name":"Book","price":"25"}]`,
		},
		{
			name:       "Limite inválido",
			target:     "/v1/products/top?limit=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Gasto por cliente",
			target:     "/v1/customers/spending",
			wantStatus: http.StatusOK,
			wantBody:   `{"1":"35","2":"10"}`,
		},
		{
			name:       "Compras por cliente",
			target:     "/v1/customers/purchase-count",
			wantStatus: http.StatusOK,
			wantBody:   `{"1":2,"2":1}`,
		},
		{
			name:       "Melhores clientes",
			target:     "/v1/customers/top?threshold=10",
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]`,
		},
		{
			name:       "Melhores clientes sem limite",
			target:     "/v1/customers/top",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Melhores clientes com limite inválido",
			target:     "/v1/customers/top?threshold=muito",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Tendências mensais",
			target:     "/v1/sales/monthly-trends",
			wantStatus: http.StatusOK,
			wantBody:   `[{"month":"Jan","revenue":"35"},{"month":"Feb","revenue":"10"}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(rt, http.MethodGet, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAnalyticsHandlers_EngineNotLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().Engine().Return(nil, reporting.ErrEngineNotLoaded)

	rt := router.New(router.WithRoutes(Analytics(mockReporter)...))
	rec := serve(rt, http.MethodGet, "/v1/sales/total-revenue")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_005")
}
