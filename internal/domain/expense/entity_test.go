package expense

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	due := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	e, err := NewExpense("Aluguel", "Aluguel do galpão", "Fixo", 2500, &due, nil, true, StatusPending)
	require.NoError(t, err)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "Aluguel", e.Name)
	assert.Equal(t, 2500.0, e.Value)
	assert.True(t, e.Recurring)
	assert.Equal(t, StatusPending, e.Status)
	assert.Nil(t, e.PaymentDate)
}

func TestNewExpenseValidation(t *testing.T) {
	_, err := NewExpense("", "", "Fixo", 100, nil, nil, false, StatusPending)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewExpense("Energia", "", "Fixo", 0, nil, nil, false, StatusPending)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestExpenseDefaultStatus(t *testing.T) {
	e, err := NewExpense("Energia", "", "Fixo", 350, nil, nil, false, "")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, e.Status)
}

func TestExpenseMarkPaid(t *testing.T) {
	e, err := NewExpense("Internet", "", "Fixo", 120, nil, nil, true, StatusPending)
	require.NoError(t, err)

	paid := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	e.MarkPaid(paid)

	assert.Equal(t, StatusPaid, e.Status)
	require.NotNil(t, e.PaymentDate)
	assert.Equal(t, paid, *e.PaymentDate)
}
