package model

import "time"

type Pedido struct {
	DTO
	CodigoPublico  string       `gorm:"unique;size:20" json:"codigoPublico"` // PED-XXXXXX
	ClienteID      uint         `gorm:"not null;index" json:"clienteId"`
	Cliente        Cliente      `json:"cliente"`
	Status         string       `gorm:"not null;index;default:PENDENTE" json:"status"`
	FormaPagamento string       `gorm:"not null" json:"formaPagamento"`
	TrocoPara      *float64     `json:"trocoPara"` // só para DINHEIRO
	Observacoes    *string      `json:"observacoes"`
	Total          float64      `gorm:"not null" json:"total"`
	TaxaEntrega    float64      `gorm:"default:0" json:"taxaEntrega"`
	PreparadoAt    *time.Time   `json:"preparadoAt"`
	SaiuEntregaAt  *time.Time   `json:"saiuEntregaAt"`
	EntregueAt     *time.Time   `json:"entregueAt"`
	CanceladoAt    *time.Time   `json:"canceladoAt"`
	Itens          []ItemPedido `gorm:"foreignKey:PedidoID" json:"itens"`
}

type ItemPedido struct {
	DTO
	PedidoID     uint     `gorm:"not null;index" json:"pedidoId"`
	ProdutoID    uint     `gorm:"not null" json:"produtoId"`
	Produto      Produto  `json:"produto"`
	TamanhoID    *uint    `gorm:"index" json:"tamanhoId"`
	Tamanho      *Tamanho `json:"tamanho,omitempty"`
	Quantidade   int      `gorm:"not null" json:"quantidade"`
	PrecoUnit    float64  `gorm:"not null" json:"precoUnit"` // congelado na criação do pedido
	Complementos *string  `json:"complementos"`
	Observacao   *string  `json:"observacao"`
}

type CriarItemInput struct {
	ProdutoID    uint     `json:"produtoId" validate:"required"`
	TamanhoID    *uint    `json:"tamanhoId"`
	Quantidade   int      `json:"quantidade" validate:"required,gt=0"`
	PrecoUnit    float64  `json:"precoUnit" validate:"required,gte=0"`
	Complementos *string  `json:"complementos"`
	Observacao   *string  `json:"observacao"`
}

type CriarPedidoInput struct {
	Cliente        UpsertClienteInput `json:"cliente" validate:"required"`
	Itens          []CriarItemInput   `json:"itens" validate:"required,min=1,dive"`
	FormaPagamento string             `json:"formaPagamento" validate:"required,oneof=PIX DINHEIRO CARTAO_CREDITO CARTAO_DEBITO"`
	TrocoPara      *float64           `json:"trocoPara" validate:"omitempty,gt=0"`
	Observacoes    *string            `json:"observacoes"`
	Total          float64            `json:"total" validate:"required,gt=0"`
	TaxaEntrega    float64            `json:"taxaEntrega" validate:"gte=0"`
}

type EditPedidoInput struct {
	Status      *string  `json:"status" validate:"omitempty,oneof=PENDENTE EM_PREPARO SAIU_ENTREGA ENTREGUE CANCELADO"`
	Observacoes *string  `json:"observacoes"`
	TrocoPara   *float64 `json:"trocoPara"`
}

type IniciarRotaInput struct {
	PedidoIDs []uint `json:"pedidoIds" validate:"required,min=1"`
}
