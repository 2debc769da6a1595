package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/skyair-rewards/loyalty-engine/internal/domain/port/core"
)

// PrometheusRecorder implements the MetricsRecorder port with prometheus
// collectors registered on the given registry.
type PrometheusRecorder struct {
	requestsSubmitted prometheus.Counter
	requestsResolved  *prometheus.CounterVec
	pointsEarned      prometheus.Counter
	pointsRedeemed    prometheus.Counter
	pointsBonus       prometheus.Counter
}

// NewPrometheusRecorder creates and registers the ledger collectors.
// Pass prometheus.DefaultRegisterer for the standard registry.
func NewPrometheusRecorder(reg prometheus.Registerer) core.MetricsRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		requestsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "loyalty_point_requests_submitted_total",
			Help: "Number of point requests submitted.",
		}),
		requestsResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loyalty_point_requests_resolved_total",
			Help: "Number of point requests resolved, by decision.",
		}, []string{"decision"}),
		pointsEarned: factory.NewCounter(prometheus.CounterOpts{
			Name: "loyalty_points_earned_total",
			Help: "Total points credited through approved requests.",
		}),
		pointsRedeemed: factory.NewCounter(prometheus.CounterOpts{
			Name: "loyalty_points_redeemed_total",
			Help: "Total points spent by members.",
		}),
		pointsBonus: factory.NewCounter(prometheus.CounterOpts{
			Name: "loyalty_points_bonus_total",
			Help: "Total promotional points credited.",
		}),
	}
}

// RequestSubmitted counts a submission
func (r *PrometheusRecorder) RequestSubmitted() {
	r.requestsSubmitted.Inc()
}

// RequestResolved counts a resolution and, on approval, the awarded points
func (r *PrometheusRecorder) RequestResolved(approved bool, pointsAwarded int) {
	if approved {
		r.requestsResolved.WithLabelValues("approve").Inc()
		r.pointsEarned.Add(float64(pointsAwarded))
	} else {
		r.requestsResolved.WithLabelValues("reject").Inc()
	}
}

// PointsRedeemed counts redeemed points
func (r *PrometheusRecorder) PointsRedeemed(points int) {
	r.pointsRedeemed.Add(float64(points))
}

// BonusAwarded counts bonus points
func (r *PrometheusRecorder) BonusAwarded(points int) {
	r.pointsBonus.Add(float64(points))
}
