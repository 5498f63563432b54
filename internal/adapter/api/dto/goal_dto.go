package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/goal"
	"github.com/petrini31/bike-garage-manager/pkg/formatter"
)

// GoalRequest representa a requisição de meta
type GoalRequest struct {
	Name         string    `json:"nome" binding:"required"`
	TargetValue  float64   `json:"valor_objetivo" binding:"required"`
	CurrentValue float64   `json:"valor_atual"`
	StartDate    time.Time `json:"data_inicio" binding:"required"`
	EndDate      time.Time `json:"data_fim" binding:"required"`
}

// GoalResponse representa a resposta de meta
type GoalResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"nome"`
	TargetValue  float64   `json:"valor_objetivo"`
	CurrentValue float64   `json:"valor_atual"`
	Progress     float64   `json:"progresso"`
	StartDate    time.Time `json:"data_inicio"`
	EndDate      time.Time `json:"data_fim"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// GoalListResponse representa a resposta de lista de metas
type GoalListResponse struct {
	Items      []GoalResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// RevenueGoalRequest representa a requisição de metas de faturamento
type RevenueGoalRequest struct {
	MonthlyGoal float64 `json:"meta_mensal"`
	AnnualGoal  float64 `json:"meta_anual"`
}

// RevenueGoalResponse representa a resposta de metas de faturamento
type RevenueGoalResponse struct {
	ID               string    `json:"id"`
	MonthlyGoal      float64   `json:"meta_mensal"`
	MonthlyGoalLabel string    `json:"meta_mensal_formatada"`
	AnnualGoal       float64   `json:"meta_anual"`
	AnnualGoalLabel  string    `json:"meta_anual_formatada"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToGoalResponse converte a entidade para o DTO de resposta
func ToGoalResponse(g *goal.Goal) GoalResponse {
	return GoalResponse{
		ID:           g.ID,
		Name:         g.Name,
		TargetValue:  g.TargetValue,
		CurrentValue: g.CurrentValue,
		Progress:     g.Progress(),
		StartDate:    g.StartDate,
		EndDate:      g.EndDate,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// ToGoalListResponse converte uma lista de entidades para o DTO de lista
func ToGoalListResponse(goals []*goal.Goal, total, page, size int) GoalListResponse {
	items := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		items = append(items, ToGoalResponse(g))
	}

	return GoalListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: totalPages(total, size),
	}
}

// ToRevenueGoalResponse converte a entidade para o DTO de resposta
func ToRevenueGoalResponse(rg *goal.RevenueGoal) RevenueGoalResponse {
	return RevenueGoalResponse{
		ID:               rg.ID,
		MonthlyGoal:      rg.MonthlyGoal,
		MonthlyGoalLabel: formatter.FormatCurrency(rg.MonthlyGoal),
		AnnualGoal:       rg.AnnualGoal,
		AnnualGoalLabel:  formatter.FormatCurrency(rg.AnnualGoal),
		CreatedAt:        rg.CreatedAt,
		UpdatedAt:        rg.UpdatedAt,
	}
}
