package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
)

// Erros específicos do repositório
var (
	ErrStatusNotFound  = errors.New("status não encontrado")
	ErrStatusDuplicate = errors.New("status com mesmo nome já existe")
	ErrStatusInUse     = errors.New("status em uso por ordens de serviço")
)

// StatusRepository implementa a interface serviceorder.StatusRepository
type StatusRepository struct {
	db *pgxpool.Pool
}

// NewStatusRepository cria uma nova instância de StatusRepository
func NewStatusRepository(db *pgxpool.Pool) serviceorder.StatusRepository {
	return &StatusRepository{
		db: db,
	}
}

// Create implementa serviceorder.StatusRepository.Create
func (r *StatusRepository) Create(ctx context.Context, s *serviceorder.Status) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO status_os (id, nome, cor, ordem, created_at) VALUES ($1, $2, $3, $4, $5)",
		s.ID, s.Name, s.Color, s.Position, s.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrStatusDuplicate
		}
		return fmt.Errorf("erro ao criar status: %w", err)
	}

	return nil
}

// FindByID implementa serviceorder.StatusRepository.FindByID
func (r *StatusRepository) FindByID(ctx context.Context, id string) (*serviceorder.Status, error) {
	var s serviceorder.Status

	err := r.db.QueryRow(ctx,
		"SELECT id, nome, cor, ordem, created_at FROM status_os WHERE id = $1",
		id).Scan(&s.ID, &s.Name, &s.Color, &s.Position, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		return nil, fmt.Errorf("erro ao buscar status: %w", err)
	}

	return &s, nil
}

// FindByName implementa serviceorder.StatusRepository.FindByName
func (r *StatusRepository) FindByName(ctx context.Context, name string) (*serviceorder.Status, error) {
	var s serviceorder.Status

	err := r.db.QueryRow(ctx,
		"SELECT id, nome, cor, ordem, created_at FROM status_os WHERE nome = $1",
		name).Scan(&s.ID, &s.Name, &s.Color, &s.Position, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		return nil, fmt.Errorf("erro ao buscar status: %w", err)
	}

	return &s, nil
}

// List implementa serviceorder.StatusRepository.List
func (r *StatusRepository) List(ctx context.Context) ([]*serviceorder.Status, error) {
	rows, err := r.db.Query(ctx,
		"SELECT id, nome, cor, ordem, created_at FROM status_os ORDER BY ordem ASC")
	if err != nil {
		return nil, fmt.Errorf("erro ao listar status: %w", err)
	}
	defer rows.Close()

	statuses := make([]*serviceorder.Status, 0)
	for rows.Next() {
		var s serviceorder.Status
		if err := rows.Scan(&s.ID, &s.Name, &s.Color, &s.Position, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler status: %w", err)
		}
		statuses = append(statuses, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return statuses, nil
}

// Update implementa serviceorder.StatusRepository.Update
func (r *StatusRepository) Update(ctx context.Context, s *serviceorder.Status) error {
	result, err := r.db.Exec(ctx,
		"UPDATE status_os SET nome = $1, cor = $2, ordem = $3 WHERE id = $4",
		s.Name, s.Color, s.Position, s.ID)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrStatusDuplicate
		}
		return fmt.Errorf("erro ao atualizar status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrStatusNotFound
	}

	return nil
}

// Delete implementa serviceorder.StatusRepository.Delete. Um status
// referenciado por alguma ordem não pode ser removido.
func (r *StatusRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM status_os WHERE id = $1", id)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return ErrStatusInUse
		}
		return fmt.Errorf("erro ao excluir status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrStatusNotFound
	}

	return nil
}
