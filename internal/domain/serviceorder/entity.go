package serviceorder

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("nome do cliente não pode ser vazio")
	ErrNoItems           = errors.New("a ordem de serviço deve ter pelo menos um item")
	ErrEmptyCancelReason = errors.New("motivo do cancelamento não pode ser vazio")
)

// Item representa uma linha da ordem de serviço. O total é sempre derivado:
// quantidade * preco_unitario - desconto.
type Item struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"os_id"`
	Number      int       `json:"numero_item"`
	Description string    `json:"descricao"`
	Quantity    float64   `json:"quantidade"`
	UnitPrice   float64   `json:"preco_unitario"`
	Discount    float64   `json:"desconto"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"created_at"`
}

// Recalculate recalcula o total do item
func (i *Item) Recalculate() {
	i.Total = i.Quantity*i.UnitPrice - i.Discount
}

// Order representa uma ordem de serviço da oficina. Os dados do cliente são
// copiados no momento da criação: edições posteriores no cadastro do cliente
// não alteram ordens já abertas.
type Order struct {
	ID               string    `json:"id"`
	Number           int       `json:"numero_os"`
	CustomerID       *string   `json:"cliente_id"`
	CustomerName     string    `json:"cliente_nome"`
	CustomerPhone    string    `json:"cliente_telefone"`
	CustomerDocument string    `json:"cliente_cpf_cnpj"`
	CustomerAddress  string    `json:"cliente_endereco"`
	StatusID         *string   `json:"status_id"`
	Status           *Status   `json:"status,omitempty"`
	Notes            string    `json:"observacoes"`
	TotalAmount      float64   `json:"valor_total"`
	TotalDiscount    float64   `json:"desconto_total"`
	FinalAmount      float64   `json:"valor_final"`
	CancelReason     string    `json:"motivo_cancelamento"`
	Items            []Item    `json:"itens,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Cancel marca a ordem como cancelada registrando o motivo
func (o *Order) Cancel(statusID, reason string) error {
	if reason == "" {
		return ErrEmptyCancelReason
	}

	o.StatusID = &statusID
	o.CancelReason = reason
	o.UpdatedAt = time.Now()

	return nil
}

func newItemID() string {
	return uuid.New().String()
}
