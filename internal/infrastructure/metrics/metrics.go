package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blogOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_operations_total",
		Help: "Blog operations by kind and outcome.",
	}, []string{"op", "outcome"})

	viewIncrements = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_view_increments_total",
		Help: "Successful view counter increments.",
	})

	listCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_list_cache_hits_total",
		Help: "Published-list cache hits.",
	})

	listCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blog_list_cache_misses_total",
		Help: "Published-list cache misses.",
	})

	uploadBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "media_upload_bytes_total",
		Help: "Total bytes accepted by the cover image upload endpoint.",
	})
)

func IncOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	blogOps.WithLabelValues(op, outcome).Inc()
}

func IncViewIncrement() { viewIncrements.Inc() }

func IncListHit() { listCacheHits.Inc() }

func IncListMiss() { listCacheMisses.Inc() }

func AddUploadBytes(n int) { uploadBytes.Add(float64(n)) }
