package usecase

import (
	"context"
	"sync"

	mock_interfaces "oficina_xpto/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// passthroughTx runs the unit of work inline and returns its error.
func passthroughTx(ctrl *gomock.Controller) *mock_interfaces.MockITransactor {
	tx := mock_interfaces.NewMockITransactor(ctrl)
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return tx
}

type recordedMetrics struct {
	mu          sync.Mutex
	created     int
	transitions []string
	invoices    []string
	repaired    int
}

func (m *recordedMetrics) BudgetCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *recordedMetrics) BudgetTransition(status, result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, status+":"+result)
}

func (m *recordedMetrics) InvoiceGenerated(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices = append(m.invoices, result)
}

func (m *recordedMetrics) ReconciliationRepaired(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repaired += count
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}
