package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus collectors for HTTP traffic. The path label always uses the
// registered route pattern (c.FullPath), so /order/:id stays one series no
// matter how many order IDs shoppers request; the raw URL is only used when
// no route matched. Latency histograms omit the status label to keep
// cardinality down.
var (
	reqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	reqDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	reqInflight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_inflight",
			Help: "Current number of in-flight HTTP requests.",
		},
	)

	// Buckets span a FAQ list response up to a large product catalogue page.
	respSize = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_size_bytes",
			Help: "Size of HTTP responses in bytes.",
			Buckets: []float64{
				200, 500, 1 << 10, 2 << 10, 5 << 10,
				10 << 10, 25 << 10, 50 << 10,
				100 << 10, 250 << 10, 500 << 10,
				1 << 20, 2 << 20, 5 << 20,
			},
		},
		[]string{"method", "path"},
	)
)

func init() {
	prometheus.MustRegister(reqTotal, reqDuration, reqInflight, respSize)
}

// Metrics instruments every request: a counter by method/path/status, a
// latency histogram, an in-flight gauge, and a response size histogram.
// Mount promhttp.Handler on /metrics alongside it.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqInflight.Inc()
		defer reqInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		reqTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		reqDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		// Size is -1 when nothing was written (hijacked or bodyless responses).
		if size := c.Writer.Size(); size >= 0 {
			respSize.WithLabelValues(method, path).Observe(float64(size))
		}
	}
}
