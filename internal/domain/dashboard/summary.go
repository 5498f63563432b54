package dashboard

import (
	"github.com/petrini31/bike-garage-manager/internal/domain/expense"
	"github.com/petrini31/bike-garage-manager/internal/domain/goal"
	"github.com/petrini31/bike-garage-manager/internal/domain/revenue"
	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
)

// Summary agrega os números do painel inicial. Tudo é recalculado a cada
// consulta a partir das ordens, gastos e receitas do período.
type Summary struct {
	RealizedRevenue float64 `json:"faturamento_realizado"`
	ManualRevenue   float64 `json:"receitas_manuais"`
	TotalExpenses   float64 `json:"total_gastos"`
	NetProfit       float64 `json:"lucro_liquido"`
	MonthlyGoal     float64 `json:"meta_mensal"`
	GoalAttainment  float64 `json:"percentual_meta"`
	OpenOrders      int     `json:"ordens_abertas"`
	FinishedOrders  int     `json:"ordens_finalizadas"`
	CancelledOrders int     `json:"ordens_canceladas"`
}

// BuildSummary calcula o resumo do painel. Apenas ordens com status
// "Finalizada" contam como faturamento realizado; o valor das demais é
// ignorado, qualquer que seja.
func BuildSummary(orders []*serviceorder.Order, expenses []*expense.Expense, revenues []*revenue.ManualRevenue, revenueGoal *goal.RevenueGoal) Summary {
	var s Summary

	for _, o := range orders {
		name := ""
		if o.Status != nil {
			name = o.Status.Name
		}
		switch name {
		case serviceorder.StatusFinished:
			s.RealizedRevenue += o.FinalAmount
			s.FinishedOrders++
		case serviceorder.StatusCancelled:
			s.CancelledOrders++
		default:
			s.OpenOrders++
		}
	}

	for _, r := range revenues {
		s.ManualRevenue += r.Value
	}

	for _, e := range expenses {
		s.TotalExpenses += e.Value
	}

	s.NetProfit = s.RealizedRevenue + s.ManualRevenue - s.TotalExpenses

	if revenueGoal != nil {
		s.MonthlyGoal = revenueGoal.MonthlyGoal
		if revenueGoal.MonthlyGoal > 0 {
			s.GoalAttainment = (s.RealizedRevenue + s.ManualRevenue) / revenueGoal.MonthlyGoal * 100
		}
	}

	return s
}
