package repository_test

import (
	"context"
	"testing"
	"time"

	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBudgetGormRepository_RoundTripsLineItems(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBudgetGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	_, err := repo.Create(ctx, entities.Budget{
		ID: "b-1", Number: 1000, QuoteDate: now, ClientID: "c-1", VehicleID: "v-1", Odometer: 42000,
		Description: "Revisão", ServiceIDs: []string{"S0002", "S0001"},
		Parts:      []entities.Part{{Name: "Filtro", Value: dec("50.00")}, {Name: "Óleo", Value: dec("35.90")}},
		TotalValue: dec("185.90"), Status: entities.BudgetStatusPendente, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"S0002", "S0001"}, got.ServiceIDs)
	require.Len(t, got.Parts, 2)
	assert.Equal(t, "Filtro", got.Parts[0].Name)
	assert.True(t, got.Parts[0].Value.Equal(dec("50")))
	assert.True(t, got.Parts[1].Value.Equal(dec("35.90")))
	assert.True(t, got.TotalValue.Equal(dec("185.90")))
	assert.Equal(t, int64(42000), got.Odometer)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestBudgetGormRepository_UpdateStatusIfIsGuarded(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBudgetGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := repo.Create(ctx, entities.Budget{ID: "b-1", Number: 1000, QuoteDate: now, ClientID: "c", VehicleID: "v",
		TotalValue: decimal.Zero, Status: entities.BudgetStatusPendente, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)

	ok, err := repo.UpdateStatusIf(ctx, "b-1", entities.BudgetStatusPendente, entities.BudgetStatusAprovado)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.UpdateStatusIf(ctx, "b-1", entities.BudgetStatusPendente, entities.BudgetStatusAprovado)
	require.NoError(t, err)
	assert.False(t, ok, "second approval must not match")

	ok, err = repo.UpdateStatusIf(ctx, "missing", entities.BudgetStatusPendente, entities.BudgetStatusAprovado)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBudgetGormRepository_ListOrdersByNumberDesc(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBudgetGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	for i, id := range []string{"b-a", "b-b", "b-c"} {
		_, err := repo.Create(ctx, entities.Budget{ID: id, Number: int64(1000 + i), QuoteDate: now, ClientID: "c", VehicleID: "v",
			TotalValue: decimal.Zero, Status: entities.BudgetStatusPendente, CreatedAt: now, UpdatedAt: now})
		require.NoError(t, err)
	}
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{1002, 1001, 1000}, []int64{list[0].Number, list[1].Number, list[2].Number})
}

func TestServiceOrderGormRepository_CostsAndStatus(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewServiceOrderGormRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, entities.ServiceOrder{
		ID: "os-1", ClientID: "c-1", VehicleID: "v-1", Status: entities.OrderStatusEmAndamento,
		StartDate: time.Now().UTC(), PartsCost: decimal.Zero, LaborCost: decimal.Zero, TotalPrice: decimal.Zero,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateCosts(ctx, "os-1", dec("50.00"), dec("200.00"), dec("250.00"))
	require.NoError(t, err)
	assert.True(t, updated.TotalPrice.Equal(dec("250")))
	assert.Empty(t, updated.BudgetID)

	missing, err := repo.UpdateCosts(ctx, "nope", decimal.Zero, decimal.Zero, decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	ok, err := repo.UpdateStatus(ctx, "os-1", entities.OrderStatusConcluida, entities.OrderStatusFaturada, nil)
	require.NoError(t, err)
	assert.False(t, ok, "expected status does not match")

	end := time.Now().UTC()
	ok, err = repo.UpdateStatus(ctx, "os-1", entities.OrderStatusEmAndamento, entities.OrderStatusConcluida, &end)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, "os-1")
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusConcluida, got.Status)
	require.NotNil(t, got.EndDate)

	ok, err = repo.UpdateStatus(ctx, "os-1", "", entities.OrderStatusCancelada, nil)
	require.NoError(t, err)
	assert.True(t, ok, "empty expected status is unconditional")
}

func TestServiceOrderGormRepository_Counters(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewServiceOrderGormRepository(db)
	ctx := context.Background()
	base := time.Now().UTC()

	statuses := []entities.OrderStatus{entities.OrderStatusEmAndamento, entities.OrderStatusEmAndamento, entities.OrderStatusConcluida}
	for i, st := range statuses {
		_, err := repo.Create(ctx, entities.ServiceOrder{
			ID: []string{"os-1", "os-2", "os-3"}[i], Status: st, StartDate: base.Add(time.Duration(i) * time.Minute),
			PartsCost: decimal.Zero, LaborCost: decimal.Zero, TotalPrice: decimal.Zero,
		})
		require.NoError(t, err)
	}

	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	byStatus, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byStatus[entities.OrderStatusEmAndamento])
	assert.Equal(t, int64(1), byStatus[entities.OrderStatusConcluida])

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "os-3", recent[0].ID)

	open, err := repo.List(ctx, entities.OrderStatusEmAndamento)
	require.NoError(t, err)
	assert.Len(t, open, 2)
}

func TestInvoiceGormRepository_ListUnreconciled(t *testing.T) {
	db := newTestDB(t)
	orders := repository.NewServiceOrderGormRepository(db)
	invoices := repository.NewInvoiceGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	for id, st := range map[string]entities.OrderStatus{
		"os-stale":    entities.OrderStatusConcluida,
		"os-ok":       entities.OrderStatusFaturada,
		"os-canceled": entities.OrderStatusConcluida,
	} {
		_, err := orders.Create(ctx, entities.ServiceOrder{ID: id, Status: st, StartDate: now,
			PartsCost: decimal.Zero, LaborCost: decimal.Zero, TotalPrice: dec("10")})
		require.NoError(t, err)
	}
	for _, inv := range []entities.Invoice{
		{ID: "inv-stale", ServiceOrderID: "os-stale", Status: entities.InvoiceStatusPendente},
		{ID: "inv-ok", ServiceOrderID: "os-ok", Status: entities.InvoiceStatusPendente},
		{ID: "inv-canceled", ServiceOrderID: "os-canceled", Status: entities.InvoiceStatusCancelada},
	} {
		inv.IssueDate, inv.CreatedAt, inv.TotalValue = now, now, dec("10")
		_, err := invoices.Create(ctx, inv)
		require.NoError(t, err)
	}

	pending, err := invoices.ListUnreconciled(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "inv-stale", pending[0].ID)

	ok, err := invoices.UpdateStatus(ctx, "inv-ok", entities.InvoiceStatusPendente, entities.InvoiceStatusConcluida)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = invoices.UpdateStatus(ctx, "inv-ok", entities.InvoiceStatusPendente, entities.InvoiceStatusCancelada)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvoiceGormRepository_PaymentClaim(t *testing.T) {
	db := newTestDB(t)
	invoices := repository.NewInvoiceGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := invoices.Create(ctx, entities.Invoice{ID: "inv-1", ServiceOrderID: "os-1", Status: entities.InvoiceStatusPendente,
		IssueDate: now, CreatedAt: now, TotalValue: dec("10")})
	require.NoError(t, err)

	ok, err := invoices.ClaimPayment(ctx, "inv-1", "first", now, now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = invoices.ClaimPayment(ctx, "inv-1", "second", now.Add(time.Second), now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok, "a live claim blocks other attempts")

	ok, err = invoices.ReleasePayment(ctx, "inv-1", "second", true)
	require.NoError(t, err)
	assert.False(t, ok, "only the claim holder can release")

	later := now.Add(10 * time.Minute)
	ok, err = invoices.ClaimPayment(ctx, "inv-1", "third", later, later.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.True(t, ok, "an expired claim can be taken over")

	ok, err = invoices.ReleasePayment(ctx, "inv-1", "first", false)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = invoices.ReleasePayment(ctx, "inv-1", "third", true)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := invoices.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusConcluida, got.Status)

	ok, err = invoices.ClaimPayment(ctx, "inv-1", "fourth", later, later.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.False(t, ok, "settled invoices cannot be claimed")
}

func TestInvoiceGormRepository_ReleaseWithoutSettling(t *testing.T) {
	db := newTestDB(t)
	invoices := repository.NewInvoiceGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := invoices.Create(ctx, entities.Invoice{ID: "inv-1", ServiceOrderID: "os-1", Status: entities.InvoiceStatusPendente,
		IssueDate: now, CreatedAt: now, TotalValue: dec("10")})
	require.NoError(t, err)

	ok, err := invoices.ClaimPayment(ctx, "inv-1", "first", now, now.Add(-5*time.Minute))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = invoices.ReleasePayment(ctx, "inv-1", "first", false)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := invoices.GetByID(ctx, "inv-1")
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPendente, got.Status)

	ok, err = invoices.ClaimPayment(ctx, "inv-1", "second", now, now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.True(t, ok, "a released invoice can be claimed again")
}

func TestClientGormRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	clients := repository.NewClientGormRepository(db)
	vehicles := repository.NewVehicleGormRepository(db)
	budgets := repository.NewBudgetGormRepository(db)
	orders := repository.NewServiceOrderGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	_, err := clients.Create(ctx, entities.Client{ID: "c-1", Name: "Maria Silva", TaxID: "12345678901", CreatedAt: now})
	require.NoError(t, err)
	_, err = vehicles.Create(ctx, entities.Vehicle{ID: "v-1", Make: "Fiat", Model: "Uno", Year: 2010, Plate: "ABC1234", ClientID: "c-1", CreatedAt: now})
	require.NoError(t, err)
	_, err = vehicles.AppendServiceRecord(ctx, entities.ServiceRecord{ID: "r-1", VehicleID: "v-1", Description: "Troca de óleo", PerformedAt: now})
	require.NoError(t, err)
	_, err = budgets.Create(ctx, entities.Budget{ID: "b-1", Number: 1000, QuoteDate: now, ClientID: "c-1", VehicleID: "v-1",
		TotalValue: decimal.Zero, Status: entities.BudgetStatusPendente, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	_, err = orders.Create(ctx, entities.ServiceOrder{ID: "os-1", ClientID: "c-1", VehicleID: "v-1", Status: entities.OrderStatusConcluida,
		StartDate: now, PartsCost: decimal.Zero, LaborCost: decimal.Zero, TotalPrice: dec("99.90")})
	require.NoError(t, err)

	deleted, err := clients.Delete(ctx, "c-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	v, err := vehicles.GetByID(ctx, "v-1")
	require.NoError(t, err)
	assert.Empty(t, v.ID)
	b, err := budgets.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.Empty(t, b.ID)
	records, err := vehicles.ListServiceRecords(ctx, "v-1")
	require.NoError(t, err)
	assert.Empty(t, records)

	o, err := orders.GetByID(ctx, "os-1")
	require.NoError(t, err)
	assert.Equal(t, "os-1", o.ID, "orders survive client deletion")
	assert.Empty(t, o.ClientID)
	assert.Empty(t, o.VehicleID)
	assert.True(t, o.TotalPrice.Equal(dec("99.90")))

	deleted, err = clients.Delete(ctx, "c-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestClientGormRepository_DuplicateTaxIDIsConflict(t *testing.T) {
	db := newTestDB(t)
	clients := repository.NewClientGormRepository(db)
	ctx := context.Background()

	_, err := clients.Create(ctx, entities.Client{ID: "c-1", Name: "Maria", TaxID: "12345678901"})
	require.NoError(t, err)
	_, err = clients.Create(ctx, entities.Client{ID: "c-2", Name: "Outra", TaxID: "12345678901"})
	require.ErrorIs(t, err, entities.ErrConflict)
}

func TestCompanyGormRepository_SingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewCompanyGormRepository(db)
	ctx := context.Background()

	empty, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.ID)

	first, err := repo.Save(ctx, entities.CompanyInfo{ID: "ignored", Name: "Oficina XPTO"})
	require.NoError(t, err)
	assert.Equal(t, entities.CompanyProfileID, first.ID)

	_, err = repo.Save(ctx, entities.CompanyInfo{Name: "Oficina XPTO Ltda", TaxID: "12345678000199"})
	require.NoError(t, err)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Oficina XPTO Ltda", got.Name)
	assert.Equal(t, "12345678000199", got.TaxID)

	var rows int64
	require.NoError(t, db.Table("company_info").Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestServiceGormRepository_CountReferences(t *testing.T) {
	db := newTestDB(t)
	services := repository.NewServiceGormRepository(db)
	budgets := repository.NewBudgetGormRepository(db)
	orders := repository.NewServiceOrderGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, id := range []string{"S0001", "S0002", "S0003"} {
		_, err := services.Create(ctx, entities.Service{ID: id, Name: id, Price: dec("10")})
		require.NoError(t, err)
	}
	_, err := budgets.Create(ctx, entities.Budget{
		ID: "b-1", Number: 1000, QuoteDate: now, ClientID: "c", VehicleID: "v", ServiceIDs: []string{"S0001", "S0002"},
		TotalValue: dec("20"), Status: entities.BudgetStatusAprovado, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = orders.Create(ctx, entities.ServiceOrder{
		ID: "os-1", ClientID: "c", VehicleID: "v", Status: entities.OrderStatusEmAndamento, StartDate: now,
		ServiceIDs: []string{"S0001"}, PartsCost: decimal.Zero, LaborCost: decimal.Zero, TotalPrice: decimal.Zero,
	})
	require.NoError(t, err)

	refs, err := services.CountReferences(ctx, "S0001")
	require.NoError(t, err)
	assert.Equal(t, int64(2), refs)

	refs, err = services.CountReferences(ctx, "S0002")
	require.NoError(t, err)
	assert.Equal(t, int64(1), refs)

	refs, err = services.CountReferences(ctx, "S0003")
	require.NoError(t, err)
	assert.Zero(t, refs)
}
