package dto

import (
	"time"

	"github.com/petrini31/bike-garage-manager/internal/domain/tag"
)

// TagRequest representa a requisição de tag
type TagRequest struct {
	Name  string `json:"nome" binding:"required"`
	Color string `json:"cor"`
}

// TagResponse representa a resposta de tag
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Color     string    `json:"cor"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTagResponse converte a entidade para o DTO de resposta
func ToTagResponse(t *tag.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
	}
}

// ToTagResponses converte uma lista de entidades para DTOs de resposta
func ToTagResponses(tags []tag.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for i := range tags {
		responses = append(responses, ToTagResponse(&tags[i]))
	}
	return responses
}

// ToTagListResponse converte uma lista de ponteiros de entidades
func ToTagListResponse(tags []*tag.Tag) []TagResponse {
	responses := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, ToTagResponse(t))
	}
	return responses
}
