package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "credenciais", code: ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "validação", code: ErrInvalidFormat, wantStatus: http.StatusBadRequest},
		{name: "relatório inexistente", code: ErrUnknownReportType, wantStatus: http.StatusNotFound},
		{name: "dados indisponíveis", code: ErrDataUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "job em andamento", code: ErrJobRunning, wantStatus: http.StatusConflict},
		{name: "código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
		})
	}
}
