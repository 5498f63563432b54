package goal

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrInvalidTarget = errors.New("valor objetivo deve ser maior que zero")
	ErrInvalidPeriod = errors.New("data final deve ser posterior à data inicial")
)

// Goal representa uma meta genérica com acompanhamento de progresso
type Goal struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	TargetValue  float64   `json:"valor_objetivo"`
	CurrentValue float64   `json:"valor_atual"`
	StartDate    time.Time `json:"data_inicio"`
	EndDate      time.Time `json:"data_fim"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewGoal cria uma nova meta
func NewGoal(name string, targetValue float64, startDate, endDate time.Time) (*Goal, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if targetValue <= 0 {
		return nil, ErrInvalidTarget
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidPeriod
	}

	now := time.Now()
	return &Goal{
		ID:          uuid.New().String(),
		Name:        name,
		TargetValue: targetValue,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Update atualiza os dados da meta
func (g *Goal) Update(name string, targetValue, currentValue float64, startDate, endDate time.Time) error {
	if name == "" {
		return ErrEmptyName
	}
	if targetValue <= 0 {
		return ErrInvalidTarget
	}
	if endDate.Before(startDate) {
		return ErrInvalidPeriod
	}

	g.Name = name
	g.TargetValue = targetValue
	g.CurrentValue = currentValue
	g.StartDate = startDate
	g.EndDate = endDate
	g.UpdatedAt = time.Now()

	return nil
}

// Progress retorna o percentual de atingimento da meta
func (g *Goal) Progress() float64 {
	if g.TargetValue <= 0 {
		return 0
	}
	return g.CurrentValue / g.TargetValue * 100
}

// RevenueGoal guarda as metas de faturamento mensal e anual da oficina.
// Existe no máximo um registro; a gravação substitui o anterior.
type RevenueGoal struct {
	ID          string    `json:"id"`
	MonthlyGoal float64   `json:"meta_mensal"`
	AnnualGoal  float64   `json:"meta_anual"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewRevenueGoal cria as metas de faturamento
func NewRevenueGoal(monthlyGoal, annualGoal float64) (*RevenueGoal, error) {
	if monthlyGoal < 0 || annualGoal < 0 {
		return nil, ErrInvalidTarget
	}

	now := time.Now()
	return &RevenueGoal{
		ID:          uuid.New().String(),
		MonthlyGoal: monthlyGoal,
		AnnualGoal:  annualGoal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}
