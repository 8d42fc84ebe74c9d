package memory

import (
	"context"
	"testing"
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T) *order.ServiceOrder {
	t.Helper()
	o, err := order.NewServiceOrder("cust-1", "celular", "Samsung", "Galaxy S23", "não liga")
	require.NoError(t, err)
	return o
}

func TestCreateAssignsSequentialID(t *testing.T) {
	repo := NewOrderRepository()
	repo.now = func() time.Time { return time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	first := newOrder(t)
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "OS-2025-001", first.ID)

	second := newOrder(t)
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, "OS-2025-002", second.ID)

	// A sequência reinicia a cada ano
	repo.now = func() time.Time { return time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC) }
	third := newOrder(t)
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, "OS-2026-001", third.ID)
}

func TestCreateWithExplicitID(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newOrder(t)
	o.ID = "OS-2025-099"
	require.NoError(t, repo.Create(ctx, o))

	dup := newOrder(t)
	dup.ID = "OS-2025-099"
	assert.ErrorIs(t, repo.Create(ctx, dup), order.ErrDuplicateOrder)

	bad := newOrder(t)
	bad.ID = "OS-25-1"
	assert.ErrorIs(t, repo.Create(ctx, bad), order.ErrInvalidOrderID)
}

func TestCreateSequenceSkipsExplicitIDs(t *testing.T) {
	repo := NewOrderRepository()
	repo.now = func() time.Time { return time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	explicit := newOrder(t)
	explicit.ID = "OS-2025-001"
	explicit.DeviceModel = "Moto G84"
	require.NoError(t, repo.Create(ctx, explicit))

	// A sequência começaria em 001, já ocupado: a OS existente não pode
	// ser sobrescrita
	auto := newOrder(t)
	require.NoError(t, repo.Create(ctx, auto))
	assert.Equal(t, "OS-2025-002", auto.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	kept, err := repo.FindByID(ctx, "OS-2025-001")
	require.NoError(t, err)
	assert.Equal(t, "Moto G84", kept.DeviceModel)
}

func TestCreateForcesPendingStatus(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newOrder(t)
	o.Status = order.StatusInRepair
	require.NoError(t, repo.Create(ctx, o))

	stored, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPendingApproval, stored.Status)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := NewOrderRepository()

	_, err := repo.FindByID(context.Background(), "OS-2025-404")
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestFindByIDReturnsCopy(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newOrder(t)
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)

	got.DeviceModel = "alterado"

	again, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Galaxy S23", again.DeviceModel)
}

func TestListMostRecentFirst(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	base := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		offset := time.Duration(i) * time.Hour
		repo.now = func() time.Time { return base.Add(offset) }
		require.NoError(t, repo.Create(ctx, newOrder(t)))
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, orders, 3)
	assert.Equal(t, "OS-2025-003", orders[0].ID)
	assert.Equal(t, "OS-2025-002", orders[1].ID)
	assert.Equal(t, "OS-2025-001", orders[2].ID)
}

func TestUpdateAppliesPatch(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newOrder(t)
	require.NoError(t, repo.Create(ctx, o))

	diagnosis := "conector de carga oxidado"
	amount := decimal.NewFromFloat(150.00)

	updated, err := repo.Update(ctx, o.ID, order.Patch{
		TechnicalDiagnosis: &diagnosis,
		TotalAmount:        &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, diagnosis, updated.TechnicalDiagnosis)
	require.NotNil(t, updated.TotalAmount)
	assert.True(t, updated.TotalAmount.Equal(amount))

	// Patch inválido não altera o que está guardado
	empty := ""
	_, err = repo.Update(ctx, o.ID, order.Patch{ReportedIssue: &empty})
	assert.ErrorIs(t, err, order.ErrEmptyReportedIssue)

	stored, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "não liga", stored.ReportedIssue)
}

func TestUpdateStatus(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newOrder(t)
	require.NoError(t, repo.Create(ctx, o))

	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.UpdateStatus(ctx, o.ID, order.StatusInAnalysis, at))

	stored, err := repo.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, order.StatusInAnalysis, stored.Status)
	assert.Equal(t, at, stored.UpdatedAt)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "OS-2025-404", order.StatusInAnalysis, at), order.ErrOrderNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := NewOrderRepository()
	ctx := context.Background()

	o := newOrder(t)
	require.NoError(t, repo.Create(ctx, o))

	require.NoError(t, repo.Delete(ctx, o.ID))
	require.NoError(t, repo.Delete(ctx, o.ID), "remover número inexistente não é erro")

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
