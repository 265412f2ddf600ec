package metrics

import (
	"strconv"
	"time"
)

// RecordHTTPRequest records a finished request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, status int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// 監視系のエンドポイントは計測しない
func ShouldSkipEndpoint(path string) bool {
	return path == "/health" || path == "/metrics"
}
