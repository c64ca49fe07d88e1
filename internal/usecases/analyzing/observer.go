package analyzing

import (
	"time"

	"github.com/vfg2006/sales-analytics-api/pkg/log"
)

// Observer recebe o progresso das consultas do Engine. As implementações não
// devem bloquear: são chamadas de forma síncrona ao fim de cada operação.
type Observer interface {
	OperationCompleted(operation string, elapsed time.Duration, salesScanned int)
}

type nopObserver struct{}

func (nopObserver) OperationCompleted(string, time.Duration, int) {}

// LogObserver envia o tempo de cada consulta para o log em nível debug
type LogObserver struct {
	logger log.Logger
}

// NewLogObserver usa o logger global quando logger é nil
func NewLogObserver(logger log.Logger) *LogObserver {
	if logger == nil {
		logger = log.L
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OperationCompleted(operation string, elapsed time.Duration, salesScanned int) {
	o.logger.WithFields(log.Fields{
		"operation":     operation,
		"duration_ms":   elapsed.Milliseconds(),
		"sales_scanned": salesScanned,
	}).Debug("analyzing: consulta concluída")
}
