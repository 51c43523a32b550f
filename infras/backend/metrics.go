package backend

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "glamp",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Backend API calls by method, endpoint template and status.",
	}, []string{"method", "endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "glamp",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Backend API call latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "endpoint"})
)

var idSegment = regexp.MustCompile(`^([0-9]+|[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})$`)

// Template replaces id-like path segments with ":id" to keep label
// cardinality bounded.
func Template(endpoint string) string {
	path, _, _ := strings.Cut(endpoint, "?")
	segments := strings.Split(path, "/")

	for i, segment := range segments {
		if idSegment.MatchString(segment) {
			segments[i] = ":id"
		}
	}

	return strings.Join(segments, "/")
}

func observe(method, endpoint string, status int, elapsed time.Duration) {
	template := Template(endpoint)

	requestsTotal.WithLabelValues(method, template, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method, template).Observe(elapsed.Seconds())
}
