// Package metrics define los colectores Prometheus del servicio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics agrupa los colectores. Los métodos aceptan receptor nil (métricas desactivadas).
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	RequestDurationMs *prometheus.HistogramVec
	EmptyResultsTotal *prometheus.CounterVec
	CacheHitsTotal    prometheus.Counter
	CacheMissesTotal  prometheus.Counter
}

// New crea los colectores sobre un registro propio (incluye métricas de proceso y Go runtime).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directorio_http_requests_total",
			Help: "Total de peticiones HTTP por ruta y código",
		}, []string{"method", "route", "status"}),
		RequestDurationMs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directorio_http_request_duration_ms",
			Help:    "Duración de peticiones HTTP en milisegundos",
			Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
		}, []string{"method", "route"}),
		EmptyResultsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "directorio_empty_results_total",
			Help: "Consultas válidas sin resultados, por operación",
		}, []string{"operation"}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directorio_hierarchy_cache_hits_total",
			Help: "Aciertos del caché de jerarquía de actividades",
		}),
		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "directorio_hierarchy_cache_misses_total",
			Help: "Fallos del caché de jerarquía de actividades",
		}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDurationMs,
		m.EmptyResultsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
	)
	return m
}

// ObserveRequest registra una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, route, status string, durationMs float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDurationMs.WithLabelValues(method, route).Observe(durationMs)
}

// EmptyResult cuenta una consulta sin coincidencias.
func (m *Metrics) EmptyResult(operation string) {
	if m == nil {
		return
	}
	m.EmptyResultsTotal.WithLabelValues(operation).Inc()
}

// CacheHit cuenta un acierto del caché de jerarquía.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.CacheHitsTotal.Inc()
}

// CacheMiss cuenta un fallo del caché de jerarquía.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.CacheMissesTotal.Inc()
}
