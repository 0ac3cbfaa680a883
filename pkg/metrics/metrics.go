// Package metrics коллекторы Prometheus для HTTP слоя и пула соединений БД
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Counter
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBOpenConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the database pool",
			ConstLabels: constLabels,
		}),

		DBInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Database connections currently in use",
			ConstLabels: constLabels,
		}),

		DBIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle database connections",
			ConstLabels: constLabels,
		}),

		DBWaitCount: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "db_wait_count_total",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}),
	}
}

// CollectDBPool периодически снимает статистику пула соединений
// до закрытия stopCh. Запускать в отдельной горутине
func (m *Metrics) CollectDBPool(db *sql.DB, interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastWaitCount int64

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := db.Stats()
			m.DBOpenConnections.Set(float64(stats.OpenConnections))
			m.DBInUse.Set(float64(stats.InUse))
			m.DBIdle.Set(float64(stats.Idle))
			if delta := stats.WaitCount - lastWaitCount; delta > 0 {
				m.DBWaitCount.Add(float64(delta))
				lastWaitCount = stats.WaitCount
			}
		}
	}
}
