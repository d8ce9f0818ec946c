package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	tasksSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forgeflow",
		Name:      "tasks_submitted_total",
		Help:      "Tasks submitted through the API, by whether a new task was created.",
	}, []string{"created"})

	webhooksReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "forgeflow",
		Name:      "webhooks_received_total",
		Help:      "Inbound webhook deliveries by outcome (accepted, duplicate, rejected).",
	}, []string{"outcome"})
)

// metricsHandler exposes the Prometheus registry.
func metricsHandler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
