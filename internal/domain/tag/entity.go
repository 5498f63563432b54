package tag

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Tag representa uma etiqueta de classificação de produtos e fornecedores
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	Color     string    `json:"cor"` // Cor em hexadecimal para o badge
	CreatedAt time.Time `json:"created_at"`
}

// NewTag cria uma nova tag
func NewTag(name, color string) (*Tag, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if color == "" {
		color = "#6b7280"
	}

	return &Tag{
		ID:        uuid.New().String(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}, nil
}

// Update atualiza os dados da tag
func (t *Tag) Update(name, color string) error {
	if name == "" {
		return ErrEmptyName
	}

	t.Name = name
	if color != "" {
		t.Color = color
	}

	return nil
}
