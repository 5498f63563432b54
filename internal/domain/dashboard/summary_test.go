package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrini31/bike-garage-manager/internal/domain/expense"
	"github.com/petrini31/bike-garage-manager/internal/domain/goal"
	"github.com/petrini31/bike-garage-manager/internal/domain/revenue"
	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
)

func orderWithStatus(name string, finalAmount float64) *serviceorder.Order {
	return &serviceorder.Order{
		Status:      &serviceorder.Status{Name: name},
		FinalAmount: finalAmount,
	}
}

func TestBuildSummary_OnlyFinishedOrdersCount(t *testing.T) {
	orders := []*serviceorder.Order{
		orderWithStatus("Finalizada", 100),
		orderWithStatus("Finalizada", 50),
		orderWithStatus("Em Serviço", 999),
	}

	s := BuildSummary(orders, nil, nil, nil)

	assert.Equal(t, 150.0, s.RealizedRevenue)
	assert.Equal(t, 2, s.FinishedOrders)
	assert.Equal(t, 1, s.OpenOrders)
}

func TestBuildSummary_NetProfitAndGoal(t *testing.T) {
	orders := []*serviceorder.Order{
		orderWithStatus("Finalizada", 800),
		orderWithStatus("Cancelada", 300),
	}

	due := time.Now()
	aluguel, err := expense.NewExpense("Aluguel", "", "Fixo", 500, &due, nil, true, expense.StatusPaid)
	require.NoError(t, err)

	venda, err := revenue.NewManualRevenue("Venda de bicicleta usada", 200, time.Now())
	require.NoError(t, err)

	rg, err := goal.NewRevenueGoal(2000, 24000)
	require.NoError(t, err)

	s := BuildSummary(orders, []*expense.Expense{aluguel}, []*revenue.ManualRevenue{venda}, rg)

	assert.Equal(t, 800.0, s.RealizedRevenue)
	assert.Equal(t, 200.0, s.ManualRevenue)
	assert.Equal(t, 500.0, s.TotalExpenses)
	assert.Equal(t, 500.0, s.NetProfit)
	assert.Equal(t, 50.0, s.GoalAttainment)
	assert.Equal(t, 1, s.CancelledOrders)
}

func TestBuildSummary_NoGoalConfigured(t *testing.T) {
	s := BuildSummary([]*serviceorder.Order{orderWithStatus("Finalizada", 100)}, nil, nil, nil)

	assert.Equal(t, 0.0, s.MonthlyGoal)
	assert.Equal(t, 0.0, s.GoalAttainment)
}

func TestBuildSummary_OrderWithoutStatusIsOpen(t *testing.T) {
	s := BuildSummary([]*serviceorder.Order{{FinalAmount: 100}}, nil, nil, nil)

	assert.Equal(t, 0.0, s.RealizedRevenue)
	assert.Equal(t, 1, s.OpenOrders)
}
