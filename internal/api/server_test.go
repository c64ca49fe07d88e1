package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3nh@"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{SecretKey: "segredo-de-teste"}
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Auth.AdminUsername = "admin"
	cfg.Auth.AdminPasswordHash = string(hash)
	cfg.Report.DefaultThreshold = decimal.NewFromInt(1000)
	return cfg
}

func TestNewHandler_LoginAndQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(t)
	mockReporter := mocks.NewMockReporter(ctrl)
	mockReporter.EXPECT().Engine().Return(analyzing.NewEngine(domain.Dataset{
		Products: []domain.Product{{ID: 1, Name: "Pen", Price: decimal.NewFromInt(10)}},
		Sales:    []domain.Sale{{ID: 1, CustomerID: 1, ProductID: 1}},
	}), nil)

	h := NewHandler(cfg, mockReporter, authenticating.NewService(cfg), handler.CronJobServices{})

	// Sem token a consulta é recusada
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sales/total-revenue", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login",
		strings.NewReader(`{"username":"admin","password":"s3nh@"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var login handler.LoginResponse
	require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/total-revenue", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_revenue":"10"}`, rec.Body.String())
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestNewHandler_Healthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(t)
	h := NewHandler(cfg, mocks.NewMockReporter(ctrl), authenticating.NewService(cfg), handler.CronJobServices{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
