package goal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGoal(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	g, err := NewGoal("Vender 50 bikes", 50000, start, end)
	require.NoError(t, err)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "Vender 50 bikes", g.Name)
	assert.Equal(t, 50000.0, g.TargetValue)
	assert.Zero(t, g.CurrentValue)
}

func TestNewGoalValidation(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := NewGoal("", 1000, end, start)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewGoal("Meta", 0, end, start)
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = NewGoal("Meta", 1000, start, end)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGoalProgress(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	g, err := NewGoal("Faturamento", 2000, start, end)
	require.NoError(t, err)

	assert.Zero(t, g.Progress())

	g.CurrentValue = 500
	assert.InDelta(t, 25.0, g.Progress(), 0.001)

	// Progresso pode passar de 100%
	g.CurrentValue = 2500
	assert.InDelta(t, 125.0, g.Progress(), 0.001)
}

func TestNewRevenueGoal(t *testing.T) {
	rg, err := NewRevenueGoal(10000, 120000)
	require.NoError(t, err)

	assert.NotEmpty(t, rg.ID)
	assert.Equal(t, 10000.0, rg.MonthlyGoal)
	assert.Equal(t, 120000.0, rg.AnnualGoal)
}
