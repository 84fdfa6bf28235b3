package interfaces

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
)

//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/invoice_repository_interface_mock.go -package=mock_interfaces

// IInvoiceRepository abstracts persistence for Invoice.
//
// ListUnreconciled returns non-cancelled invoices whose service order is not marked "Faturada",
// which is the footprint left by a half-applied invoice generation.
//
// ClaimPayment marks a pending invoice as being charged by token. It fails when another
// attempt holds a claim taken after staleBefore. ReleasePayment drops the claim held by
// token and, with settle, moves the invoice to "Concluída" in the same statement.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.InvoiceStatus) (bool, error)
	ListUnreconciled(ctx context.Context, limit int) ([]entities.Invoice, error)
	ClaimPayment(ctx context.Context, id, token string, now, staleBefore time.Time) (bool, error)
	ReleasePayment(ctx context.Context, id, token string, settle bool) (bool, error)
}
