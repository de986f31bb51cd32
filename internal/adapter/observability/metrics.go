package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTPRequestsTotal counts HTTP requests by route, method and status.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	// HTTPRequestDuration observes request latency by route and method.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 15, 30, 60},
		},
		[]string{"route", "method"},
	)

	// AIRequestsTotal counts grading engine calls by outcome.
	AIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of AI requests by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)
	// AIRequestDuration observes grading engine call latency. Grading can
	// take tens of seconds, hence the long tail buckets.
	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "AI request duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60, 90},
		},
		[]string{"provider"},
	)

	// GradesTotal tracks the distribution of letter grades handed out.
	GradesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grades_total",
			Help: "Total number of grading results by letter",
		},
		[]string{"grade"},
	)
	// FlagsPerResult observes how many flags a sanitized result carries.
	FlagsPerResult = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "grade_flags_per_result",
			Help:    "Number of flags per sanitized grade result",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 7, 10},
		},
		[]string{"severity"},
	)
	// SanitizedFlagsTotal counts flags dropped by the response sanitizer.
	SanitizedFlagsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sanitized_flags_total",
			Help: "Total number of contradictory flags removed from engine output",
		},
	)

	// CacheRequestsTotal counts template-result cache lookups.
	CacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "result_cache_requests_total",
			Help: "Template result cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	// PromptTokens observes the text-token size of assembled prompts.
	PromptTokens = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "prompt_text_tokens",
			Help:    "Text tokens per assembled grading prompt",
			Buckets: []float64{500, 1000, 2000, 4000, 8000, 16000, 32000},
		},
	)

	// FeedbackTotal counts feedback submissions by outcome.
	FeedbackTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_submissions_total",
			Help: "Total number of feedback submissions by outcome",
		},
		[]string{"outcome"},
	)
)

// InitMetrics registers all Prometheus metrics. Call once per process.
func InitMetrics() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(AIRequestsTotal)
	prometheus.MustRegister(AIRequestDuration)
	prometheus.MustRegister(GradesTotal)
	prometheus.MustRegister(FlagsPerResult)
	prometheus.MustRegister(SanitizedFlagsTotal)
	prometheus.MustRegister(CacheRequestsTotal)
	prometheus.MustRegister(PromptTokens)
	prometheus.MustRegister(FeedbackTotal)
}

// HTTPMetricsMiddleware records Prometheus metrics for each request.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		dur := time.Since(start).Seconds()
		// Route pattern may be unavailable outside chi router; guard nil
		var route string
		if rc := chi.RouteContext(r.Context()); rc != nil {
			route = rc.RoutePattern()
		}
		if route == "" {
			route = r.URL.Path
		}
		HTTPRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(dur)
	})
}
