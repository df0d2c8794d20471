package logger

import (
	"github.com/avinsharma/job-scout/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// errorCountHook feeds the jobscout_errors_total counter from every error-or-
// worse log line, labeled by the error_type field (db, board, tg_api,
// apply_probe) or "unknown" when a call site forgot the field.
type errorCountHook struct{}

func (h *errorCountHook) Fire(entry *log.Entry) error {

	errorType, ok := entry.Data[ErrorTypeField].(string)
	if !ok {
		errorType = "unknown"
	}

	metrics.ErrorsCounter.WithLabelValues(errorType).Inc()
	return nil
}

func (h *errorCountHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}

func addPrometheusHook() {
	log.AddHook(&errorCountHook{})
}
