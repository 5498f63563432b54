package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/revenue"
)

// Erros específicos do repositório
var (
	ErrRevenueNotFound = errors.New("receita não encontrada")
)

// RevenueRepository implementa a interface revenue.Repository
type RevenueRepository struct {
	db *pgxpool.Pool
}

// NewRevenueRepository cria uma nova instância de RevenueRepository
func NewRevenueRepository(db *pgxpool.Pool) revenue.Repository {
	return &RevenueRepository{
		db: db,
	}
}

// Create implementa revenue.Repository.Create
func (r *RevenueRepository) Create(ctx context.Context, m *revenue.ManualRevenue) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO receitas_manuais (id, descricao, valor, data, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Description, m.Value, m.Date, m.CreatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar receita: %w", err)
	}

	return nil
}

// FindByID implementa revenue.Repository.FindByID
func (r *RevenueRepository) FindByID(ctx context.Context, id string) (*revenue.ManualRevenue, error) {
	var m revenue.ManualRevenue

	err := r.db.QueryRow(ctx,
		"SELECT id, descricao, valor, data, created_at FROM receitas_manuais WHERE id = $1",
		id).Scan(&m.ID, &m.Description, &m.Value, &m.Date, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRevenueNotFound
		}
		return nil, fmt.Errorf("erro ao buscar receita: %w", err)
	}

	return &m, nil
}

// List implementa revenue.Repository.List, das mais recentes para as mais antigas
func (r *RevenueRepository) List(ctx context.Context, limit, offset int) ([]*revenue.ManualRevenue, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, descricao, valor, data, created_at
		FROM receitas_manuais
		ORDER BY data DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar receitas: %w", err)
	}
	defer rows.Close()

	revenues := make([]*revenue.ManualRevenue, 0)
	for rows.Next() {
		var m revenue.ManualRevenue
		if err := rows.Scan(&m.ID, &m.Description, &m.Value, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler receita: %w", err)
		}
		revenues = append(revenues, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return revenues, nil
}

// Delete implementa revenue.Repository.Delete
func (r *RevenueRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM receitas_manuais WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir receita: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrRevenueNotFound
	}

	return nil
}

// SumByPeriod implementa revenue.Repository.SumByPeriod
func (r *RevenueRepository) SumByPeriod(ctx context.Context, from, to time.Time) (float64, error) {
	var sum float64
	err := r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(valor), 0) FROM receitas_manuais WHERE data >= $1 AND data < $2",
		from, to).Scan(&sum)

	if err != nil {
		return 0, fmt.Errorf("erro ao somar receitas: %w", err)
	}

	return sum, nil
}
