package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

// GenerateReport monta e grava um relatório. O limite de clientes vem do
// parâmetro threshold ou, na ausência dele, de REPORT_DEFAULT_THRESHOLD.
func GenerateReport(reporter reporting.Reporter, defaultThreshold decimal.Decimal) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reportType, err := reporting.ParseReportType(httprouter.ParamsFromContext(r.Context()).ByName("type"))
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		params := reporting.Params{Threshold: defaultThreshold}
		query := r.URL.Query()

		if raw := query.Get("threshold"); raw != "" {
			threshold, err := utils.ParseAmount(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro threshold inválido", nil)
				return
			}
			params.Threshold = threshold
		}

		if raw := query.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit deve ser um inteiro positivo", nil)
				return
			}
			params.Limit = limit
		}

		report, err := reporter.Generate(r.Context(), reportType, params)
		if err != nil {
			writeReportingError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"report": report.Type,
			"file":   report.FileName,
		}).Info("Relatório gerado via API")

		writeJSON(w, r, http.StatusCreated, report)
	}
}

// ListReportTypes lista os tipos aceitos em /v1/reports/:type
func ListReportTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types := make([]map[string]string, 0, len(domain.AllReportTypes))
		for _, reportType := range domain.AllReportTypes {
			fileName, _ := reporting.FileNameFor(reportType)
			types = append(types, map[string]string{
				"type":      string(reportType),
				"file_name": fileName,
			})
		}
		writeJSON(w, r, http.StatusOK, types)
	}
}
