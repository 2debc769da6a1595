package core

// MetricsRecorder receives ledger events for operational metrics. The
// domain reports events; the adapter decides how to expose them.
type MetricsRecorder interface {
	RequestSubmitted()
	RequestResolved(approved bool, pointsAwarded int)
	PointsRedeemed(points int)
	BonusAwarded(points int)
}

// NoopMetricsRecorder discards all events. Used in tests and as a default.
type NoopMetricsRecorder struct{}

func (NoopMetricsRecorder) RequestSubmitted()                  {}
func (NoopMetricsRecorder) RequestResolved(bool, int)          {}
func (NoopMetricsRecorder) PointsRedeemed(int)                 {}
func (NoopMetricsRecorder) BonusAwarded(int)                   {}
