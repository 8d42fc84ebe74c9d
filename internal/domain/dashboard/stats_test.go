package dashboard

import (
	"testing"
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/financial"
	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/hugohenrick/erp-assistencia/internal/domain/product"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestComputeStatsOrders(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	orders := []*order.ServiceOrder{
		{ID: "OS-2025-001", Status: order.StatusPendingApproval, UpdatedAt: now},
		{ID: "OS-2025-002", Status: order.StatusInRepair, UpdatedAt: now},
		{ID: "OS-2025-003", Status: order.StatusCompleted, TotalAmount: amount("320.00"), UpdatedAt: now},
	}

	stats := ComputeStats(orders, nil, nil, now)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.CompletedOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("320.00")),
		"receita total %s", stats.TotalRevenue)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.RequireFromString("320.00")))
}

func TestComputeStatsMonthlyRevenueCalendarMonth(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	orders := []*order.ServiceOrder{
		// Concluída neste mês: entra nas duas receitas
		{ID: "OS-2025-010", Status: order.StatusCompleted, TotalAmount: amount("100.00"),
			UpdatedAt: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		// Concluída no mês anterior: só receita total
		{ID: "OS-2025-011", Status: order.StatusAwaitingPickup, TotalAmount: amount("200.00"),
			UpdatedAt: time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)},
		// Mesmo mês do ano anterior: só receita total
		{ID: "OS-2024-050", Status: order.StatusCompleted, TotalAmount: amount("50.00"),
			UpdatedAt: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)},
		// Aberta com valor orçado: não conta como receita
		{ID: "OS-2025-012", Status: order.StatusInRepair, TotalAmount: amount("999.00"), UpdatedAt: now},
		// Concluída sem valor: conta como concluída, não soma
		{ID: "OS-2025-013", Status: order.StatusCompleted, UpdatedAt: now},
	}

	stats := ComputeStats(orders, nil, nil, now)

	assert.Equal(t, 4, stats.CompletedOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("350.00")),
		"receita total %s", stats.TotalRevenue)
	assert.True(t, stats.MonthlyRevenue.Equal(decimal.RequireFromString("100.00")),
		"receita mensal %s", stats.MonthlyRevenue)
}

func TestComputeStatsLowStock(t *testing.T) {
	products := []*product.Product{
		{ID: "p1", Quantity: 3, MinQuantity: 5},
		{ID: "p2", Quantity: 5, MinQuantity: 5}, // igual ao mínimo não conta
		{ID: "p3", Quantity: 0, MinQuantity: 1},
		{ID: "p4", Quantity: 10, MinQuantity: 2},
	}

	stats := ComputeStats(nil, products, nil, time.Now())
	assert.Equal(t, 2, stats.LowStockItems)
}

func TestComputeStatsOverduePayments(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	paid := now.Add(-24 * time.Hour)

	transactions := []*financial.Transaction{
		{ID: "t1", Status: financial.StatusPending, DueDate: now.Add(-48 * time.Hour)},
		{ID: "t2", Status: financial.StatusPending, DueDate: now.Add(48 * time.Hour)},
		{ID: "t3", Status: financial.StatusPaid, DueDate: now.Add(-48 * time.Hour), PaidDate: &paid},
	}

	stats := ComputeStats(nil, nil, transactions, now)
	assert.Equal(t, 1, stats.OverduePayments)
}

func TestComputeStatsIsPure(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	orders := []*order.ServiceOrder{
		{ID: "OS-2025-001", Status: order.StatusCompleted, TotalAmount: amount("10.00"), UpdatedAt: now},
	}

	first := ComputeStats(orders, nil, nil, now)
	second := ComputeStats(orders, nil, nil, now)

	require.Equal(t, first.TotalOrders, second.TotalOrders)
	assert.True(t, first.TotalRevenue.Equal(second.TotalRevenue))
	assert.True(t, first.MonthlyRevenue.Equal(second.MonthlyRevenue))
}

func TestComputeStatsEmptyInputs(t *testing.T) {
	stats := ComputeStats(nil, nil, nil, time.Now())

	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.MonthlyRevenue.IsZero())
}
