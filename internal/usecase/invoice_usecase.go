package usecase

import (
	"context"
	"strings"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// IInvoiceUseCase exposes the invoice (fatura) engine.
//
// Generating an invoice and marking its order "Faturada" happen in one transaction, so an
// invoice never exists for an order that is still "Concluída" once the call returns.

type IInvoiceUseCase interface {
	CreateInvoice(ctx context.Context, orderID string) (entities.Invoice, error)
	GenerateInvoices(ctx context.Context, orderIDs []string) ([]entities.InvoiceResult, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.InvoiceDocument, error)
	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	tx       interfaces.ITransactor
	repo     interfaces.IInvoiceRepository
	orders   interfaces.IServiceOrderRepository
	clients  interfaces.IClientRepository
	vehicles interfaces.IVehicleRepository
	services interfaces.IServiceRepository
	company  interfaces.ICompanyRepository
	metrics  interfaces.IWorkflowMetrics
	opts     WorkflowOptions
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	tx interfaces.ITransactor,
	repo interfaces.IInvoiceRepository,
	orders interfaces.IServiceOrderRepository,
	clients interfaces.IClientRepository,
	vehicles interfaces.IVehicleRepository,
	services interfaces.IServiceRepository,
	company interfaces.ICompanyRepository,
	metrics interfaces.IWorkflowMetrics,
	opts WorkflowOptions,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		tx:       tx,
		repo:     repo,
		orders:   orders,
		clients:  clients,
		vehicles: vehicles,
		services: services,
		company:  company,
		metrics:  metricsOrNoop(metrics),
		opts:     opts,
	}
}

func (u *InvoiceUseCase) CreateInvoice(ctx context.Context, orderID string) (entities.Invoice, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Invoice{}, ErrInvalidID
	}

	var created entities.Invoice
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		order, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.ID == "" {
			return ErrOrderNotFound
		}
		if u.opts.RequireCompletedOrder && order.Status != entities.OrderStatusConcluida {
			return ErrOrderNotCompleted
		}
		if u.opts.StrictTransitions {
			if _, err := order.Status.TransitionTo(entities.OrderStatusFaturada); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		created, err = u.repo.Create(ctx, entities.Invoice{
			ID:             uuid.NewString(),
			ServiceOrderID: order.ID,
			IssueDate:      now,
			TotalValue:     order.TotalPrice,
			Status:         entities.InvoiceStatusPendente,
			CreatedAt:      now,
		})
		if err != nil {
			return err
		}

		ok, err := u.orders.UpdateStatus(ctx, order.ID, order.Status, entities.OrderStatusFaturada, nil)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderStatusChanged
		}
		return nil
	})
	u.metrics.InvoiceGenerated(resultOf(err))
	if err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("[invoice][usecase] generation rolled back")
		return entities.Invoice{}, err
	}
	log.Info().Str("invoice_id", created.ID).Str("order_id", orderID).Str("total", created.TotalValue.StringFixed(2)).
		Msg("[invoice][usecase] generated")
	return created, nil
}

// GenerateInvoices invoices each order in its own transaction. A failing order does not
// stop the batch; its error is reported in the matching result.
func (u *InvoiceUseCase) GenerateInvoices(ctx context.Context, orderIDs []string) ([]entities.InvoiceResult, error) {
	ids := uniqueIDs(trimIDs(orderIDs))
	if len(ids) == 0 {
		return nil, entities.Validationf("at least one service order id is required")
	}

	results := make([]entities.InvoiceResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		inv, err := u.CreateInvoice(ctx, id)
		results = append(results, entities.InvoiceResult{ServiceOrderID: id, Invoice: inv, Err: err})
	}
	return results, nil
}

func (u *InvoiceUseCase) UpdateInvoiceStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidID
	}
	if !status.IsValid() {
		return entities.Invoice{}, entities.Validationf("invalid invoice status %q", status)
	}

	var out entities.Invoice
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		current, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return ErrInvoiceNotFound
		}

		var expected entities.InvoiceStatus
		if u.opts.StrictTransitions {
			if _, err := current.Status.TransitionTo(status); err != nil {
				return err
			}
			expected = current.Status
		}
		ok, err := u.repo.UpdateStatus(ctx, id, expected, status)
		if err != nil {
			return err
		}
		if !ok {
			return ErrInvoiceStatusChanged
		}
		out, err = u.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	log.Info().Str("invoice_id", id).Str("status", out.Status.String()).Msg("[invoice][usecase] status updated")
	return out, nil
}

// GetInvoice joins everything needed to render the invoice document. Client and vehicle
// are nil when they were deleted after invoicing.
func (u *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (entities.InvoiceDocument, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoiceDocument{}, ErrInvalidID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoiceDocument{}, err
	}
	if inv.ID == "" {
		return entities.InvoiceDocument{}, ErrInvoiceNotFound
	}
	doc := entities.InvoiceDocument{Invoice: inv}

	if doc.Order, err = u.orders.GetByID(ctx, inv.ServiceOrderID); err != nil {
		return entities.InvoiceDocument{}, err
	}
	if doc.Order.ClientID != "" {
		c, err := u.clients.GetByID(ctx, doc.Order.ClientID)
		if err != nil {
			return entities.InvoiceDocument{}, err
		}
		if c.ID != "" {
			doc.Client = &c
		}
	}
	if doc.Order.VehicleID != "" {
		v, err := u.vehicles.GetByID(ctx, doc.Order.VehicleID)
		if err != nil {
			return entities.InvoiceDocument{}, err
		}
		if v.ID != "" {
			doc.Vehicle = &v
		}
	}
	if doc.Services, err = u.services.List(ctx); err != nil {
		return entities.InvoiceDocument{}, err
	}
	if doc.Company, err = u.company.Get(ctx); err != nil {
		return entities.InvoiceDocument{}, err
	}
	return doc, nil
}

func (u *InvoiceUseCase) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}
