package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// transicoesPermitidas é o grafo do ciclo de vida: caminho linear
// PENDENTE → EM_PREPARO → SAIU_ENTREGA → ENTREGUE, com cancelamento
// possível até a entrega. Nada de voltar status nem pular etapas.
var transicoesPermitidas = map[string][]string{
	constants.STATUS_PENDENTE:     {constants.STATUS_EM_PREPARO, constants.STATUS_CANCELADO},
	constants.STATUS_EM_PREPARO:   {constants.STATUS_SAIU_ENTREGA, constants.STATUS_CANCELADO},
	constants.STATUS_SAIU_ENTREGA: {constants.STATUS_ENTREGUE, constants.STATUS_CANCELADO},
	constants.STATUS_ENTREGUE:     {},
	constants.STATUS_CANCELADO:    {},
}

func TransicaoValida(de, para string) bool {
	for _, s := range transicoesPermitidas[de] {
		if s == para {
			return true
		}
	}
	return false
}

// AplicarTransicao muda o status do pedido e carimba o timestamp da etapa.
func AplicarTransicao(pedido *model.Pedido, novoStatus string, agora time.Time) error {
	if !TransicaoValida(pedido.Status, novoStatus) {
		return fmt.Errorf("%s: %s → %s", constants.TRANSICAO_INVALIDA, pedido.Status, novoStatus)
	}

	pedido.Status = novoStatus
	switch novoStatus {
	case constants.STATUS_EM_PREPARO:
		pedido.PreparadoAt = &agora
	case constants.STATUS_SAIU_ENTREGA:
		pedido.SaiuEntregaAt = &agora
	case constants.STATUS_ENTREGUE:
		pedido.EntregueAt = &agora
	case constants.STATUS_CANCELADO:
		pedido.CanceladoAt = &agora
	}
	return nil
}

// IniciarRota move todos os pedidos informados de EM_PREPARO para
// SAIU_ENTREGA dentro de uma única transação: ou a rota inteira sai,
// ou nenhum pedido muda.
func IniciarRota(pedidoIDs []uint) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	agora := time.Now()

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Cliente").Where("id IN ?", pedidoIDs).Find(&pedidos).Error; err != nil {
			return err
		}
		if len(pedidos) != len(pedidoIDs) {
			return errors.New("um ou mais pedidos da rota não existem")
		}

		for i := range pedidos {
			if err := AplicarTransicao(&pedidos[i], constants.STATUS_SAIU_ENTREGA, agora); err != nil {
				return fmt.Errorf("pedido #%d: %w", pedidos[i].ID, err)
			}
			if err := tx.Save(&pedidos[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pedidos, nil
}

// TotalItens soma quantidade × preço congelado de cada item.
func TotalItens(itens []model.CriarItemInput) float64 {
	total := 0.0
	for _, item := range itens {
		total += item.PrecoUnit * float64(item.Quantidade)
	}
	return total
}

// GerarCodigoPedido cria o código público exibido ao cliente (PED-XXXXXX).
func GerarCodigoPedido() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "PED-" + id[:6]
}

// TamanhoEmUso verifica se algum item de pedido referencia o tamanho.
func TamanhoEmUso(tamanhoID uint) (bool, error) {
	var count int64
	if err := database.DB.Model(&model.ItemPedido{}).
		Where("tamanho_id = ?", tamanhoID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
