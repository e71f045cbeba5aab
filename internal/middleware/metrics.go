package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chorus_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// MediaUploadBytes records the decoded size of accepted media uploads.
	MediaUploadBytes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chorus_media_upload_bytes",
		Help:    "Decoded size in bytes of accepted media uploads",
		Buckets: prometheus.ExponentialBuckets(1<<20, 2, 4),
	}, []string{"kind"})

	// MediaUploadRejections counts rejected uploads by reason.
	MediaUploadRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chorus_media_upload_rejections_total",
		Help: "Total number of rejected media uploads by reason",
	}, []string{"reason"})

	// LoginThrottleHits counts login attempts blocked by the cooldown.
	LoginThrottleHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chorus_login_throttle_hits_total",
		Help: "Total number of login attempts blocked by the failure cooldown",
	})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
