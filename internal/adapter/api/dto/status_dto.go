package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
)

// StatusRequest representa a requisição de status de O.S.
type StatusRequest struct {
	Name     string `json:"nome" binding:"required"`
	Color    string `json:"cor"`
	Position int    `json:"ordem"`
}

// StatusResponse representa a resposta de status de O.S.
type StatusResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Color     string    `json:"cor"`
	Position  int       `json:"ordem"`
	CreatedAt time.Time `json:"created_at"`
}

// ToStatusResponse converte a entidade para o DTO de resposta
func ToStatusResponse(s *serviceorder.Status) StatusResponse {
	return StatusResponse{
		ID:        s.ID,
		Name:      s.Name,
		Color:     s.Color,
		Position:  s.Position,
		CreatedAt: s.CreatedAt,
	}
}

// ToStatusListResponse converte uma lista de entidades para DTOs de resposta
func ToStatusListResponse(statuses []*serviceorder.Status) []StatusResponse {
	responses := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		responses = append(responses, ToStatusResponse(s))
	}
	return responses
}
