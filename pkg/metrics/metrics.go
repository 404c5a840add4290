package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "omnipos_pricing",
		Name:      "grpc_request_duration_seconds",
		Help:      "Duration of unary gRPC requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "code"})

	PriceResolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "omnipos_pricing",
		Name:      "price_resolutions_total",
		Help:      "Resolved prices by source (base, override) and whether a promotion applied.",
	}, []string{"source", "promotion"})

	PromotionsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "omnipos_pricing",
		Name:      "promotions_applied_total",
		Help:      "Promotions that won a price resolution, by promotion type.",
	}, []string{"type"})

	StockAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "omnipos_pricing",
		Name:      "stock_adjustments_total",
		Help:      "Branch stock movements by movement type and outcome.",
	}, []string{"movement_type", "outcome"})
)

// ObservePriceResolution counts one resolution. promotionType is empty when no promotion won.
func ObservePriceResolution(overridden bool, promotionType string) {
	source := "base"
	if overridden {
		source = "override"
	}
	PriceResolutions.WithLabelValues(source, strconv.FormatBool(promotionType != "")).Inc()
	if promotionType != "" {
		PromotionsApplied.WithLabelValues(promotionType).Inc()
	}
}
