package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/petrini31/bike-garage-manager/internal/domain/serviceorder"
)

// Erros específicos do repositório
var (
	ErrOrderNotFound = errors.New("ordem de serviço não encontrada")
)

// ServiceOrderRepository implementa a interface serviceorder.Repository
type ServiceOrderRepository struct {
	db *pgxpool.Pool
}

// NewServiceOrderRepository cria uma nova instância de ServiceOrderRepository
func NewServiceOrderRepository(db *pgxpool.Pool) serviceorder.Repository {
	return &ServiceOrderRepository{
		db: db,
	}
}

// Create implementa serviceorder.Repository.Create. A ordem e seus itens são
// gravados na mesma transação: se um item falhar, nada é persistido. O
// numero_os vem da sequência do banco.
func (r *ServiceOrderRepository) Create(ctx context.Context, o *serviceorder.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO ordens_servico (
			id, cliente_id, cliente_nome, cliente_telefone, cliente_cpf_cnpj,
			cliente_endereco, status_id, observacoes, valor_total,
			desconto_total, valor_final, motivo_cancelamento, created_at,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING numero_os`,
		o.ID, o.CustomerID, o.CustomerName, o.CustomerPhone,
		o.CustomerDocument, o.CustomerAddress, o.StatusID, o.Notes,
		o.TotalAmount, o.TotalDiscount, o.FinalAmount, o.CancelReason,
		o.CreatedAt, o.UpdatedAt).Scan(&o.Number)

	if err != nil {
		return fmt.Errorf("erro ao criar ordem de serviço: %w", err)
	}

	if err := insertItems(ctx, tx, o); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// FindByID implementa serviceorder.Repository.FindByID, carregando itens e
// status junto com a ordem
func (r *ServiceOrderRepository) FindByID(ctx context.Context, id string) (*serviceorder.Order, error) {
	var o serviceorder.Order
	var statusID, statusName, statusColor *string
	var statusPosition *int
	var statusCreatedAt *time.Time

	err := r.db.QueryRow(ctx,
		`SELECT o.id, o.numero_os, o.cliente_id, o.cliente_nome,
			o.cliente_telefone, o.cliente_cpf_cnpj, o.cliente_endereco,
			o.status_id, o.observacoes, o.valor_total, o.desconto_total,
			o.valor_final, o.motivo_cancelamento, o.created_at, o.updated_at,
			s.id, s.nome, s.cor, s.ordem, s.created_at
		FROM ordens_servico o
		LEFT JOIN status_os s ON s.id = o.status_id
		WHERE o.id = $1`,
		id).Scan(
		&o.ID, &o.Number, &o.CustomerID, &o.CustomerName, &o.CustomerPhone,
		&o.CustomerDocument, &o.CustomerAddress, &o.StatusID, &o.Notes,
		&o.TotalAmount, &o.TotalDiscount, &o.FinalAmount, &o.CancelReason,
		&o.CreatedAt, &o.UpdatedAt,
		&statusID, &statusName, &statusColor, &statusPosition, &statusCreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ordem de serviço: %w", err)
	}

	if statusID != nil {
		o.Status = &serviceorder.Status{
			ID:        *statusID,
			Name:      *statusName,
			Color:     *statusColor,
			Position:  *statusPosition,
			CreatedAt: *statusCreatedAt,
		}
	}

	items, err := r.findItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

// List implementa serviceorder.Repository.List, das ordens mais recentes
// para as mais antigas
func (r *ServiceOrderRepository) List(ctx context.Context, limit, offset int) ([]*serviceorder.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT o.id, o.numero_os, o.cliente_id, o.cliente_nome,
			o.cliente_telefone, o.cliente_cpf_cnpj, o.cliente_endereco,
			o.status_id, o.observacoes, o.valor_total, o.desconto_total,
			o.valor_final, o.motivo_cancelamento, o.created_at, o.updated_at,
			s.id, s.nome, s.cor, s.ordem, s.created_at
		FROM ordens_servico o
		LEFT JOIN status_os s ON s.id = o.status_id
		ORDER BY o.numero_os DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de serviço: %w", err)
	}
	defer rows.Close()

	return r.scanOrderRows(ctx, rows)
}

// ListByStatus implementa serviceorder.Repository.ListByStatus
func (r *ServiceOrderRepository) ListByStatus(ctx context.Context, statusID string, limit, offset int) ([]*serviceorder.Order, error) {
	rows, err := r.db.Query(ctx,
		`SELECT o.id, o.numero_os, o.cliente_id, o.cliente_nome,
			o.cliente_telefone, o.cliente_cpf_cnpj, o.cliente_endereco,
			o.status_id, o.observacoes, o.valor_total, o.desconto_total,
			o.valor_final, o.motivo_cancelamento, o.created_at, o.updated_at,
			s.id, s.nome, s.cor, s.ordem, s.created_at
		FROM ordens_servico o
		LEFT JOIN status_os s ON s.id = o.status_id
		WHERE o.status_id = $1
		ORDER BY o.numero_os DESC
		LIMIT $2 OFFSET $3`,
		statusID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de serviço: %w", err)
	}
	defer rows.Close()

	return r.scanOrderRows(ctx, rows)
}

// Update implementa serviceorder.Repository.Update. Os itens existentes são
// removidos e os itens do rascunho reinseridos na mesma transação.
func (r *ServiceOrderRepository) Update(ctx context.Context, o *serviceorder.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}
	defer tx.Rollback(ctx)

	result, err := tx.Exec(ctx,
		`UPDATE ordens_servico SET
			cliente_id = $1, cliente_nome = $2, cliente_telefone = $3,
			cliente_cpf_cnpj = $4, cliente_endereco = $5, status_id = $6,
			observacoes = $7, valor_total = $8, desconto_total = $9,
			valor_final = $10, motivo_cancelamento = $11, updated_at = $12
		WHERE id = $13`,
		o.CustomerID, o.CustomerName, o.CustomerPhone, o.CustomerDocument,
		o.CustomerAddress, o.StatusID, o.Notes, o.TotalAmount,
		o.TotalDiscount, o.FinalAmount, o.CancelReason, o.UpdatedAt, o.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar ordem de serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	_, err = tx.Exec(ctx, "DELETE FROM os_itens WHERE os_id = $1", o.ID)
	if err != nil {
		return fmt.Errorf("erro ao remover itens da ordem: %w", err)
	}

	if err := insertItems(ctx, tx, o); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao confirmar transação: %w", err)
	}

	return nil
}

// UpdateStatus implementa serviceorder.Repository.UpdateStatus
func (r *ServiceOrderRepository) UpdateStatus(ctx context.Context, id, statusID string) error {
	result, err := r.db.Exec(ctx,
		"UPDATE ordens_servico SET status_id = $1, updated_at = $2 WHERE id = $3",
		statusID, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao atualizar status da ordem: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Cancel implementa serviceorder.Repository.Cancel
func (r *ServiceOrderRepository) Cancel(ctx context.Context, id, statusID, reason string) error {
	result, err := r.db.Exec(ctx,
		`UPDATE ordens_servico SET
			status_id = $1, motivo_cancelamento = $2, updated_at = $3
		WHERE id = $4`,
		statusID, reason, time.Now(), id)

	if err != nil {
		return fmt.Errorf("erro ao cancelar ordem de serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Delete implementa serviceorder.Repository.Delete. Os itens caem junto por
// ON DELETE CASCADE.
func (r *ServiceOrderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM ordens_servico WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir ordem de serviço: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// Count implementa serviceorder.Repository.Count
func (r *ServiceOrderRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM ordens_servico").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar ordens de serviço: %w", err)
	}

	return count, nil
}

func (r *ServiceOrderRepository) findItems(ctx context.Context, orderID string) ([]serviceorder.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, os_id, numero_item, descricao, quantidade, preco_unitario,
			desconto, total, created_at
		FROM os_itens
		WHERE os_id = $1
		ORDER BY numero_item ASC`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar itens da ordem: %w", err)
	}
	defer rows.Close()

	items := make([]serviceorder.Item, 0)
	for rows.Next() {
		var it serviceorder.Item
		err := rows.Scan(
			&it.ID, &it.OrderID, &it.Number, &it.Description, &it.Quantity,
			&it.UnitPrice, &it.Discount, &it.Total, &it.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler item da ordem: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}

// scanOrderRows processa resultados de consultas que retornam múltiplas ordens,
// carregando os itens de cada uma
func (r *ServiceOrderRepository) scanOrderRows(ctx context.Context, rows pgx.Rows) ([]*serviceorder.Order, error) {
	orders := make([]*serviceorder.Order, 0)

	for rows.Next() {
		var o serviceorder.Order
		var statusID, statusName, statusColor *string
		var statusPosition *int
		var statusCreatedAt *time.Time

		err := rows.Scan(
			&o.ID, &o.Number, &o.CustomerID, &o.CustomerName, &o.CustomerPhone,
			&o.CustomerDocument, &o.CustomerAddress, &o.StatusID, &o.Notes,
			&o.TotalAmount, &o.TotalDiscount, &o.FinalAmount, &o.CancelReason,
			&o.CreatedAt, &o.UpdatedAt,
			&statusID, &statusName, &statusColor, &statusPosition, &statusCreatedAt)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler ordem de serviço: %w", err)
		}

		if statusID != nil {
			o.Status = &serviceorder.Status{
				ID:        *statusID,
				Name:      *statusName,
				Color:     *statusColor,
				Position:  *statusPosition,
				CreatedAt: *statusCreatedAt,
			}
		}

		orders = append(orders, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	for _, o := range orders {
		items, err := r.findItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	return orders, nil
}

func insertItems(ctx context.Context, tx pgx.Tx, o *serviceorder.Order) error {
	for _, it := range o.Items {
		_, err := tx.Exec(ctx,
			`INSERT INTO os_itens (
				id, os_id, numero_item, descricao, quantidade, preco_unitario,
				desconto, total, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9
			)`,
			it.ID, o.ID, it.Number, it.Description, it.Quantity, it.UnitPrice,
			it.Discount, it.Total, it.CreatedAt)
		if err != nil {
			return fmt.Errorf("erro ao inserir item da ordem: %w", err)
		}
	}

	return nil
}
