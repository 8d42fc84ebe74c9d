package dashboard

import (
	"time"

	"github.com/hugohenrick/erp-assistencia/internal/domain/financial"
	"github.com/hugohenrick/erp-assistencia/internal/domain/order"
	"github.com/hugohenrick/erp-assistencia/internal/domain/product"
	"github.com/shopspring/decimal"
)

// Stats é o resumo exibido no painel. É sempre derivado sob demanda das
// ordens, produtos e lançamentos; nunca é persistido.
type Stats struct {
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CompletedOrders int             `json:"completed_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	LowStockItems   int             `json:"low_stock_items"`
	OverduePayments int             `json:"overdue_payments"`
}

// ComputeStats deriva o resumo do painel. Função pura das entradas e do
// instante de referência: entradas idênticas produzem sempre o mesmo
// resultado. Receita mensal considera o mês-calendário de now, comparado
// contra o updated_at das ordens concluídas.
func ComputeStats(orders []*order.ServiceOrder, products []*product.Product, transactions []*financial.Transaction, now time.Time) Stats {
	stats := Stats{
		TotalRevenue:   decimal.Zero,
		MonthlyRevenue: decimal.Zero,
	}

	year, month := now.Year(), now.Month()

	for _, o := range orders {
		stats.TotalOrders++

		if o.Status.IsOpen() {
			stats.PendingOrders++
		}

		if o.Status.IsConcluded() {
			stats.CompletedOrders++

			if o.TotalAmount != nil {
				stats.TotalRevenue = stats.TotalRevenue.Add(*o.TotalAmount)

				updated := o.UpdatedAt.In(now.Location())
				if updated.Year() == year && updated.Month() == month {
					stats.MonthlyRevenue = stats.MonthlyRevenue.Add(*o.TotalAmount)
				}
			}
		}
	}

	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockItems++
		}
	}

	for _, t := range transactions {
		if t.IsOverdue(now) {
			stats.OverduePayments++
		}
	}

	return stats
}
