package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// CronJobType identifica a rotina agendada disparada manualmente
const (
	CronJobTypeReport = "report"
)

// CronJobService é o contrato dos agendadores expostos pela API
type CronJobService interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ReportSyncService CronJobService
}

func (s CronJobServices) byType(cronType string) (CronJobService, bool) {
	switch cronType {
	case CronJobTypeReport:
		return s.ReportSyncService, s.ReportSyncService != nil
	default:
		return nil, false
	}
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices, cronType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		service, ok := services.byType(cronType)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de agendamento não disponível", nil)
			return
		}

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrJobRunning, "Execução já em andamento", nil)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ReportSyncService != nil {
			status[CronJobTypeReport] = services.ReportSyncService.GetStatus()
		}
		writeJSON(w, r, http.StatusOK, status)
	}
}
