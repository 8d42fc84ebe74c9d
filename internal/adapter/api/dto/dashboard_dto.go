package dto

import (
	"github.com/hugohenrick/erp-assistencia/internal/domain/dashboard"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse representa a resposta de indicadores do painel
type DashboardStatsResponse struct {
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CompletedOrders int             `json:"completed_orders"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	LowStockItems   int             `json:"low_stock_items"`
	OverduePayments int             `json:"overdue_payments"`
}

// ToDashboardStatsResponse converte os indicadores para o DTO de resposta
func ToDashboardStatsResponse(s dashboard.Stats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalOrders:     s.TotalOrders,
		PendingOrders:   s.PendingOrders,
		CompletedOrders: s.CompletedOrders,
		TotalRevenue:    s.TotalRevenue,
		MonthlyRevenue:  s.MonthlyRevenue,
		LowStockItems:   s.LowStockItems,
		OverduePayments: s.OverduePayments,
	}
}
