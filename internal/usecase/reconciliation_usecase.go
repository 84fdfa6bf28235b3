package usecase

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"go.uber.org/multierr"
)

const reconcileBatchSize = 500

// ReconciliationReport summarizes a reconciliation run.
type ReconciliationReport struct {
	Scanned        int
	Repaired       int
	RepairedOrders []string
}

// IReconciliationUseCase repairs orders left behind by the old two-step invoicing flow:
// an invoice exists but its order was never moved to "Faturada".
type IReconciliationUseCase interface {
	ReconcileInvoicedOrders(ctx context.Context) (ReconciliationReport, error)
}

type ReconciliationUseCase struct {
	tx       interfaces.ITransactor
	invoices interfaces.IInvoiceRepository
	orders   interfaces.IServiceOrderRepository
	metrics  interfaces.IWorkflowMetrics
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(tx interfaces.ITransactor, invoices interfaces.IInvoiceRepository, orders interfaces.IServiceOrderRepository, metrics interfaces.IWorkflowMetrics) *ReconciliationUseCase {
	return &ReconciliationUseCase{tx: tx, invoices: invoices, orders: orders, metrics: metricsOrNoop(metrics)}
}

// ReconcileInvoicedOrders repairs each order in its own transaction and keeps going on
// failure. The returned error aggregates every failed repair.
func (u *ReconciliationUseCase) ReconcileInvoicedOrders(ctx context.Context) (ReconciliationReport, error) {
	pending, err := u.invoices.ListUnreconciled(ctx, reconcileBatchSize)
	if err != nil {
		return ReconciliationReport{}, err
	}

	report := ReconciliationReport{Scanned: len(pending)}
	var errs error
	for _, inv := range pending {
		if ctxErr := ctx.Err(); ctxErr != nil {
			errs = multierr.Append(errs, ctxErr)
			break
		}
		repaired, err := u.repair(ctx, inv)
		if err != nil {
			log.Error().Err(err).Str("invoice_id", inv.ID).Str("order_id", inv.ServiceOrderID).Msg("[reconcile][usecase] repair failed")
			errs = multierr.Append(errs, err)
			continue
		}
		if repaired {
			report.Repaired++
			report.RepairedOrders = append(report.RepairedOrders, inv.ServiceOrderID)
		}
	}

	u.metrics.ReconciliationRepaired(report.Repaired)
	log.Info().Int("scanned", report.Scanned).Int("repaired", report.Repaired).Msg("[reconcile][usecase] done")
	return report, errs
}

func (u *ReconciliationUseCase) repair(ctx context.Context, inv entities.Invoice) (bool, error) {
	repaired := false
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		order, err := u.orders.GetByID(ctx, inv.ServiceOrderID)
		if err != nil {
			return err
		}
		if order.ID == "" || order.Status == entities.OrderStatusFaturada {
			return nil
		}
		repaired, err = u.orders.UpdateStatus(ctx, order.ID, order.Status, entities.OrderStatusFaturada, nil)
		return err
	})
	return repaired, err
}
