package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceGormRepository_StartsAfterFloor(t *testing.T) {
	db := newTestDB(t)
	seq := repository.NewSequenceGormRepository(db)
	ctx := context.Background()

	first, err := seq.Next(ctx, entities.BudgetNumberSequence, entities.FirstBudgetNumber-1)
	require.NoError(t, err)
	second, err := seq.Next(ctx, entities.BudgetNumberSequence, entities.FirstBudgetNumber-1)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), first)
	assert.Equal(t, int64(1001), second)

	code, err := seq.Next(ctx, entities.ServiceCodeSequence, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), code, "sequences are independent")
}

func TestSequenceGormRepository_SeedsFromExistingRows(t *testing.T) {
	db := newTestDB(t)
	budgets := repository.NewBudgetGormRepository(db)
	services := repository.NewServiceGormRepository(db)
	seq := repository.NewSequenceGormRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	_, err := budgets.Create(ctx, entities.Budget{
		ID: "b-legacy", Number: 1500, QuoteDate: now, ClientID: "c", VehicleID: "v",
		TotalValue: decimal.Zero, Status: entities.BudgetStatusAprovado, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)
	_, err = services.Create(ctx, entities.Service{ID: "S0007", Name: "Alinhamento", Price: decimal.NewFromInt(80)})
	require.NoError(t, err)

	n, err := seq.Next(ctx, entities.BudgetNumberSequence, entities.FirstBudgetNumber-1)
	require.NoError(t, err)
	assert.Equal(t, int64(1501), n)

	code, err := seq.Next(ctx, entities.ServiceCodeSequence, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(8), code)

	hwm, err := seq.HighWaterMark(ctx, entities.BudgetNumberSequence)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), hwm)

	unknown, err := seq.HighWaterMark(ctx, "unknown")
	require.NoError(t, err)
	assert.Zero(t, unknown)
}

func TestSequenceGormRepository_JoinsCallerTransaction(t *testing.T) {
	db := newTestDB(t)
	tx := repository.NewGormTransactor(db)
	seq := repository.NewSequenceGormRepository(db)
	ctx := context.Background()

	_, err := seq.Next(ctx, "orders", 0)
	require.NoError(t, err)

	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		n, err := seq.Next(ctx, "orders", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		return errors.New("abort")
	})
	require.Error(t, err)

	n, err := seq.Next(ctx, "orders", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "an aborted allocation never reached a committed row")
}
