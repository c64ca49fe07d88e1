package handler

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

type TotalRevenueResponse struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// withEngine entrega ao handler o motor carregado no momento da requisição
func withEngine(reporter reporting.Reporter, fn func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		engine, err := reporter.Engine()
		if err != nil {
			writeReportingError(w, r, err)
			return
		}
		fn(w, r, engine)
	}
}

func GetTotalRevenue(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		writeJSON(w, r, http.StatusOK, TotalRevenueResponse{TotalRevenue: engine.TotalRevenue()})
	})
}

func GetSalesCountByProduct(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		writeJSON(w, r, http.StatusOK, engine.SalesCountByProduct())
	})
}

func GetTopProducts(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}
		writeJSON(w, r, http.StatusOK, engine.TopProducts(limit))
	})
}

func GetUnpopularProducts(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		limit, ok := parseLimit(w, r)
		if !ok {
			return
		}
		writeJSON(w, r, http.StatusOK, engine.UnpopularProducts(limit))
	})
}

func GetCustomerSpending(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		writeJSON(w, r, http.StatusOK, engine.CustomerSpending())
	})
}

func GetCustomerPurchaseCount(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		writeJSON(w, r, http.StatusOK, engine.CustomerPurchaseCount())
	})
}

func GetTopCustomers(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		raw := r.URL.Query().Get("threshold")
		if raw == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro threshold obrigatório", nil)
			return
		}

		threshold, err := utils.ParseAmount(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro threshold inválido", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, engine.TopCustomers(threshold))
	})
}

func GetMonthlySalesTrends(reporter reporting.Reporter) http.HandlerFunc {
	return withEngine(reporter, func(w http.ResponseWriter, r *http.Request, engine *analyzing.Engine) {
		writeJSON(w, r, http.StatusOK, engine.MonthlySalesTrendsOrdered())
	})
}

// parseLimit lê o parâmetro limit. Ausente usa o padrão do motor.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return analyzing.DefaultTopN, true
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um inteiro positivo", nil)
		return 0, false
	}
	return limit, true
}
