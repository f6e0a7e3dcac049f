package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kickoff"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"method", "route", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	SlotReservations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slot_reservations_total",
		Help:      "Slot reservation attempts by outcome",
	}, []string{"outcome"})

	SlotsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "slots_generated_total",
		Help:      "Time slots created by schedule generation",
	})

	RosterJoins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_joins_total",
		Help:      "Players seated on a match roster by seat",
	}, []string{"seat"})

	WaitlistPromotions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "waitlist_promotions_total",
		Help:      "Waitlisted players promoted to confirmed",
	})

	MatchTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "match_transitions_total",
		Help:      "Match status transitions by target status",
	}, []string{"status"})

	ReviewsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reviews_processed_total",
		Help:      "Settlement reviews by result",
	}, []string{"result"})

	NoShowsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "no_shows_applied_total",
		Help:      "Players flagged as no-show",
	})
)

// Middleware records request count and latency labelled by the matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		httpRequests.With(labels).Inc()
		httpLatency.With(labels).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default Prometheus metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
