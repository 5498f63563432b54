package dto

import (
	"github.com/petrini31/bike-garage-manager/internal/domain/dashboard"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// DashboardResponse representa o resumo do painel com os valores brutos e
// suas versões formatadas em pt-BR
type DashboardResponse struct {
	RealizedRevenue      float64 `json:"faturamento_realizado"`
	RealizedRevenueLabel string  `json:"faturamento_realizado_formatado"`
	ManualRevenue        float64 `json:"receitas_manuais"`
	TotalExpenses        float64 `json:"total_gastos"`
	TotalExpensesLabel   string  `json:"total_gastos_formatado"`
	NetProfit            float64 `json:"lucro_liquido"`
	NetProfitLabel       string  `json:"lucro_liquido_formatado"`
	MonthlyGoal          float64 `json:"meta_mensal"`
	GoalAttainment       float64 `json:"percentual_meta"`
	OpenOrders           int     `json:"ordens_abertas"`
	FinishedOrders       int     `json:"ordens_finalizadas"`
	CancelledOrders      int     `json:"ordens_canceladas"`
}

// ToDashboardResponse converte o resumo para o DTO de resposta
func ToDashboardResponse(s dashboard.Summary) DashboardResponse {
	return DashboardResponse{
		RealizedRevenue:      s.RealizedRevenue,
		RealizedRevenueLabel: formatter.FormatCurrency(s.RealizedRevenue),
		ManualRevenue:        s.ManualRevenue,
		TotalExpenses:        s.TotalExpenses,
		TotalExpensesLabel:   formatter.FormatCurrency(s.TotalExpenses),
		NetProfit:            s.NetProfit,
		NetProfitLabel:       formatter.FormatCurrency(s.NetProfit),
		MonthlyGoal:          s.MonthlyGoal,
		GoalAttainment:       s.GoalAttainment,
		OpenOrders:           s.OpenOrders,
		FinishedOrders:       s.FinishedOrders,
		CancelledOrders:      s.CancelledOrders,
	}
}
