package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vendor_inventory"

// Recorder owns the pipeline collectors. The zero value is not usable; use NewRecorder.
type Recorder struct {
	scans         *prometheus.CounterVec
	scanDuration  prometheus.Histogram
	listings      prometheus.Gauge
	gaps          *prometheus.CounterVec
	promotions    *prometheus.CounterVec
	notifications *prometheus.CounterVec
	decisions     *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		scans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scans_total",
			Help:      "Inventory scans by outcome.",
		}, []string{"outcome"}),
		scanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scan_duration_seconds",
			Help:      "Wall time of a full inventory scan.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		listings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "listings_scanned",
			Help:      "Listings covered by the most recent scan.",
		}),
		gaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gaps_detected_total",
			Help:      "Inventory gaps by urgency.",
		}, []string{"urgency"}),
		promotions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotions_generated_total",
			Help:      "Promotion drafts by service type.",
		}, []string{"service_type"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_created_total",
			Help:      "Notification events by type.",
		}, []string{"type"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotion_decisions_total",
			Help:      "Approve/reject decisions on pending promotions.",
		}, []string{"decision"}),
	}
	reg.MustRegister(r.scans, r.scanDuration, r.listings, r.gaps, r.promotions, r.notifications, r.decisions)
	return r
}

func (r *Recorder) ObserveScan(d time.Duration, listings int, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.scans.WithLabelValues(outcome).Inc()
	r.scanDuration.Observe(d.Seconds())
	if err == nil {
		r.listings.Set(float64(listings))
	}
}

func (r *Recorder) GapDetected(urgency string) {
	r.gaps.WithLabelValues(urgency).Inc()
}

func (r *Recorder) PromotionGenerated(serviceType string) {
	r.promotions.WithLabelValues(serviceType).Inc()
}

func (r *Recorder) NotificationCreated(eventType string) {
	r.notifications.WithLabelValues(eventType).Inc()
}

func (r *Recorder) PromotionDecided(decision string) {
	r.decisions.WithLabelValues(decision).Inc()
}
