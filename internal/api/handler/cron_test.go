package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/api/handler/router"
)

type stubCronService struct {
	started bool
	calls   int
}

func (s *stubCronService) TriggerManualSync() bool {
	s.calls++
	return s.started
}

func (s *stubCronService) GetStatus() map[string]any {
	return map[string]any{"sync_running": !s.started}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name       string
		service    *stubCronService
		wantStatus int
	}{
		{name: "Execução iniciada", service: &stubCronService{started: true}, wantStatus: http.StatusAccepted},
		{name: "Execução em andamento", service: &stubCronService{started: false}, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSyncService: tt.service})...))

			rec := serve(rt, http.MethodPost, "/v1/cron/report/run")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, 1, tt.service.calls)
		})
	}
}

func TestRunCronJob_ServiceUnavailable(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{})...))

	rec := serve(rt, http.MethodPost, "/v1/cron/report/run")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	rt := router.New(router.WithRoutes(CronJobs(CronJobServices{ReportSyncService: &stubCronService{started: true}})...))

	rec := serve(rt, http.MethodGet, "/v1/cron/status")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"report":{"sync_running":false}}`, rec.Body.String())
}
