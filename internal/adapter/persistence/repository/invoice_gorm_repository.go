package repository

import (
	"context"
	"time"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type InvoiceGormRepository struct {
	gormBase
}

var _ interfaces.IInvoiceRepository = (*InvoiceGormRepository)(nil)

func NewInvoiceGormRepository(db *gorm.DB) *InvoiceGormRepository {
	return &InvoiceGormRepository{gormBase{db: db}}
}

func (r *InvoiceGormRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	m := toInvoiceModel(inv)
	if err := r.conn(ctx).Create(&m).Error; err != nil {
		return entities.Invoice{}, translateError("create invoice", err)
	}
	return fromInvoiceModel(m), nil
}

func (r *InvoiceGormRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var m invoiceModel
	found, err := takeOne(r.conn(ctx).Where("id = ?", id), &m)
	if err != nil {
		return entities.Invoice{}, translateError("get invoice", err)
	}
	if !found {
		return entities.Invoice{}, nil
	}
	return fromInvoiceModel(m), nil
}

func (r *InvoiceGormRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	return r.find(r.conn(ctx).Order("issue_date DESC"))
}

func (r *InvoiceGormRepository) UpdateStatus(ctx context.Context, id string, expected, next entities.InvoiceStatus) (bool, error) {
	q := r.conn(ctx).Model(&invoiceModel{}).Where("id = ?", id)
	if expected != "" {
		q = q.Where("status = ?", string(expected))
	}
	res := q.Update("status", string(next))
	if res.Error != nil {
		return false, translateError("update invoice status", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *InvoiceGormRepository) ClaimPayment(ctx context.Context, id, token string, now, staleBefore time.Time) (bool, error) {
	res := r.conn(ctx).Model(&invoiceModel{}).
		Where("id = ? AND status = ?", id, string(entities.InvoiceStatusPendente)).
		Where("(payment_claim = '' OR payment_claimed_at IS NULL OR payment_claimed_at < ?)", staleBefore).
		Updates(map[string]any{"payment_claim": token, "payment_claimed_at": now})
	if res.Error != nil {
		return false, translateError("claim invoice payment", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *InvoiceGormRepository) ReleasePayment(ctx context.Context, id, token string, settle bool) (bool, error) {
	q := r.conn(ctx).Model(&invoiceModel{}).Where("id = ? AND payment_claim = ?", id, token)
	values := map[string]any{"payment_claim": "", "payment_claimed_at": nil}
	if settle {
		q = q.Where("status = ?", string(entities.InvoiceStatusPendente))
		values["status"] = string(entities.InvoiceStatusConcluida)
	}
	res := q.Updates(values)
	if res.Error != nil {
		return false, translateError("release invoice payment", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *InvoiceGormRepository) ListUnreconciled(ctx context.Context, limit int) ([]entities.Invoice, error) {
	q := r.conn(ctx).
		Joins("JOIN service_orders ON service_orders.id = invoices.service_order_id").
		Where("invoices.status <> ? AND service_orders.status <> ?",
			string(entities.InvoiceStatusCancelada), string(entities.OrderStatusFaturada)).
		Order("invoices.issue_date ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.find(q)
}

func (r *InvoiceGormRepository) find(q *gorm.DB) ([]entities.Invoice, error) {
	var rows []invoiceModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, translateError("list invoices", err)
	}
	out := make([]entities.Invoice, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromInvoiceModel(m))
	}
	return out, nil
}

func toInvoiceModel(inv entities.Invoice) invoiceModel {
	return invoiceModel{
		ID:             inv.ID,
		ServiceOrderID: inv.ServiceOrderID,
		IssueDate:      inv.IssueDate,
		TotalValue:     inv.TotalValue,
		Status:         string(inv.Status),
		CreatedAt:      inv.CreatedAt,
	}
}

func fromInvoiceModel(m invoiceModel) entities.Invoice {
	return entities.Invoice{
		ID:             m.ID,
		ServiceOrderID: m.ServiceOrderID,
		IssueDate:      m.IssueDate,
		TotalValue:     m.TotalValue,
		Status:         entities.InvoiceStatus(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}
