package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/reporting"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeReportingError traduz os erros do serviço de relatórios para o código da API
func writeReportingError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reporting.ErrEngineNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, "Dados de vendas ainda não carregados", nil)
	case errors.Is(err, reporting.ErrUnknownReportType):
		apiErrors.WriteError(w, apiErrors.ErrUnknownReportType, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro no serviço de relatórios")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar relatório", nil)
	}
}
