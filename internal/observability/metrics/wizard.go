package metrics

import "github.com/prometheus/client_golang/prometheus"

// WizardMetrics exposes counters/histograms for the booking wizard.
type WizardMetrics struct {
	sessions        *prometheus.CounterVec
	activeSessions  prometheus.Gauge
	stepsEntered    *prometheus.CounterVec
	paymentsTotal   *prometheus.CounterVec
	paymentLatency  prometheus.Histogram
	confirmations   *prometheus.CounterVec
	slotLocksTotal  prometheus.Counter
	validationFails *prometheus.CounterVec
}

func NewWizardMetrics(reg prometheus.Registerer) *WizardMetrics {
	m := &WizardMetrics{
		sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "sessions_total",
			Help:      "Wizard sessions by lifecycle event",
		}, []string{"event"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "sessions_active",
			Help:      "Wizard sessions currently held in memory",
		}),
		stepsEntered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "step_entered_total",
			Help:      "Times a wizard step became current",
		}, []string{"step"}),
		paymentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "payments_total",
			Help:      "Simulated payment attempts by outcome",
		}, []string{"method", "outcome"}),
		paymentLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "payment_duration_seconds",
			Help:      "Duration of simulated payment charges",
			Buckets:   prometheus.DefBuckets,
		}),
		confirmations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "confirmations_total",
			Help:      "Confirmation deliveries by final status",
		}, []string{"status"}),
		slotLocksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "slots",
			Name:      "simulated_locks_total",
			Help:      "Slots locked by the contention simulator",
		}),
		validationFails: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "wizard",
			Name:      "validation_failures_total",
			Help:      "Rejected form submits by form",
		}, []string{"form"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessions, m.activeSessions, m.stepsEntered, m.paymentsTotal,
		m.paymentLatency, m.confirmations, m.slotLocksTotal, m.validationFails)
	return m
}

func (m *WizardMetrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessions.WithLabelValues("started").Inc()
	m.activeSessions.Inc()
}

// SessionEnded records a session leaving memory; reason is "ended" or "expired".
func (m *WizardMetrics) SessionEnded(reason string) {
	if m == nil {
		return
	}
	m.sessions.WithLabelValues(reason).Inc()
	m.activeSessions.Dec()
}

func (m *WizardMetrics) ObserveStep(step string) {
	if m == nil {
		return
	}
	m.stepsEntered.WithLabelValues(step).Inc()
}

func (m *WizardMetrics) ObservePayment(method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.paymentsTotal.WithLabelValues(method, outcome).Inc()
	m.paymentLatency.Observe(seconds)
}

func (m *WizardMetrics) ObserveConfirmation(status string) {
	if m == nil {
		return
	}
	m.confirmations.WithLabelValues(status).Inc()
}

func (m *WizardMetrics) ObserveSlotLock() {
	if m == nil {
		return
	}
	m.slotLocksTotal.Inc()
}

func (m *WizardMetrics) ObserveValidationFailure(form string) {
	if m == nil {
		return
	}
	m.validationFails.WithLabelValues(form).Inc()
}
