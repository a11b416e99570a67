package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "viacep_api",
			Name:      "http_requests_total",
			Help:      "Total de requisições HTTP por rota, método e status.",
		},
		[]string{"rota", "metodo", "status"},
	)
	reqDuracao = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "viacep_api",
			Name:      "http_request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"rota", "metodo"},
	)
)

func init() { prometheus.MustRegister(reqTotal, reqDuracao) }

// Metrics registra contagem e latência por rota. Usa a rota declarada
// (c.FullPath) para não explodir a cardinalidade com ids e CEPs.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()

		rota := c.FullPath()
		if rota == "" {
			rota = "sem_rota"
		}
		status := strconv.Itoa(c.Writer.Status())
		reqTotal.WithLabelValues(rota, c.Request.Method, status).Inc()
		reqDuracao.WithLabelValues(rota, c.Request.Method).Observe(time.Since(inicio).Seconds())
	}
}
