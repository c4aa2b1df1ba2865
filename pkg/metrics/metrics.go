package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "site", Name: "content_mutations_total", Help: "Number of successful content document mutations by operation."},
		[]string{"op"},
	)
	// StoreResets counts content documents discarded because the persisted
	// bytes failed to parse. Any increase means admin-entered content was lost.
	StoreResets = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "site", Name: "content_store_resets_total", Help: "Number of times the content document was reset to defaults after a parse failure."},
	)
	UploadsReceived = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "site", Name: "photo_uploads_total", Help: "Number of accepted photo uploads."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "site", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "site", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentMutations)
	reg.MustRegister(StoreResets)
	reg.MustRegister(UploadsReceived)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
