package metrics

import (
	"strconv"
	"time"

	"oficina_xpto/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the workflow counters and the HTTP latency histogram.
// A nil *Metrics is a valid no-op recorder.
type Metrics struct {
	budgetsCreated    prometheus.Counter
	budgetTransitions *prometheus.CounterVec
	invoicesGenerated *prometheus.CounterVec
	reconcileRepairs  prometheus.Counter
	requestDuration   *prometheus.HistogramVec
}

var _ interfaces.IWorkflowMetrics = (*Metrics)(nil)

// New registers every collector on reg.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	m := &Metrics{
		budgetsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "budgets_created_total",
			Help: "Budgets created.",
		}),
		budgetTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_transitions_total",
			Help: "Budget status transitions by target status and outcome.",
		}, []string{"status", "result"}),
		invoicesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "invoices_generated_total",
			Help: "Invoice generation attempts by outcome.",
		}, []string{"result"}),
		reconcileRepairs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reconciliation_repairs_total",
			Help: "Service orders moved to Faturada by the reconciliation job.",
		}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(m.budgetsCreated, m.budgetTransitions, m.invoicesGenerated, m.reconcileRepairs, m.requestDuration)
	return m
}

func (m *Metrics) BudgetCreated() {
	if m == nil || m.budgetsCreated == nil {
		return
	}
	m.budgetsCreated.Inc()
}

func (m *Metrics) BudgetTransition(status string, result string) {
	if m == nil || m.budgetTransitions == nil {
		return
	}
	m.budgetTransitions.WithLabelValues(normalizeLabel(status), normalizeLabel(result)).Inc()
}

func (m *Metrics) InvoiceGenerated(result string) {
	if m == nil || m.invoicesGenerated == nil {
		return
	}
	m.invoicesGenerated.WithLabelValues(normalizeLabel(result)).Inc()
}

func (m *Metrics) ReconciliationRepaired(count int) {
	if m == nil || m.reconcileRepairs == nil || count <= 0 {
		return
	}
	m.reconcileRepairs.Add(float64(count))
}

// ObserveRequest records one served request. route is the matched route template, not the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
