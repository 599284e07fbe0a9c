package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func preloadPedido(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Cliente").
		Preload("Itens").
		Preload("Itens.Produto").
		Preload("Itens.Tamanho")
}

// GetPedidos lista pedidos filtrados por status (?status=a,b) e/ou telefone
// do cliente, limitados a 100, mais recentes primeiro.
func GetPedidos(c *fiber.Ctx) error {
	db := database.DB.Model(&model.Pedido{})

	if statusParam := c.Query("status"); statusParam != "" {
		db = db.Where("status IN ?", strings.Split(statusParam, ","))
	}
	if telefone := c.Query("telefone"); telefone != "" {
		telefoneLimpo := utils.LimparTelefone(telefone)
		db = db.Joins("JOIN clientes ON clientes.id = pedidos.cliente_id").
			Where("clientes.telefone = ?", telefoneLimpo)
	}

	var pedidos []model.Pedido
	if err := preloadPedido(db).Order("pedidos.created_at desc").Limit(100).Find(&pedidos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar pedidos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pedidos)
}

// CriarPedido fecha o checkout: upsert do cliente pelo telefone e criação do
// pedido com seus itens numa única transação. O preço unitário de cada item é
// congelado aqui e nunca recalculado.
func CriarPedido(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CriarPedidoInput)

	// o total chega pronto do cliente, mas o servidor não confia nele
	esperado := helper.TotalItens(input.Itens) + input.TaxaEntrega
	if math.Abs(esperado-input.Total) > 0.009 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
			fmt.Errorf("total %.2f não confere com itens + entrega (%.2f)", input.Total, esperado))
	}

	if !helper.LojaAberta() {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.LOJA_FECHADA, errors.New("store is not accepting orders"))
	}

	var pedido model.Pedido
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		cliente, err := helper.UpsertClientePorTelefone(tx, input.Cliente)
		if err != nil {
			return err
		}

		pedido = model.Pedido{
			CodigoPublico:  helper.GerarCodigoPedido(),
			ClienteID:      cliente.ID,
			Status:         constants.STATUS_PENDENTE,
			FormaPagamento: input.FormaPagamento,
			TrocoPara:      input.TrocoPara,
			Observacoes:    input.Observacoes,
			Total:          input.Total,
			TaxaEntrega:    input.TaxaEntrega,
		}
		for _, item := range input.Itens {
			pedido.Itens = append(pedido.Itens, model.ItemPedido{
				ProdutoID:    item.ProdutoID,
				TamanhoID:    item.TamanhoID,
				Quantidade:   item.Quantidade,
				PrecoUnit:    item.PrecoUnit,
				Complementos: item.Complementos,
				Observacao:   item.Observacao,
			})
		}

		return tx.Create(&pedido).Error
	})
	if err != nil {
		log.Printf("Erro ao criar pedido: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao criar pedido", err)
	}

	if err := preloadPedido(database.DB).First(&pedido, pedido.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar pedido", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, pedido)
}

func GetPedidoById(c *fiber.Ctx) error {
	pedidoId := c.Locals("inputId").(int)

	var pedido model.Pedido
	if err := preloadPedido(database.DB).First(&pedido, pedidoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Pedido não encontrado", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pedido)
}

// EditPedido aplica mudança de status (validada contra o ciclo de vida) e
// edições de campos livres. Mudanças de status fora do grafo — inclusive
// cancelar um pedido já entregue — são rejeitadas com 409.
func EditPedido(c *fiber.Ctx) error {
	pedidoId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.EditPedidoInput)

	var pedido model.Pedido
	if err := database.DB.First(&pedido, pedidoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Pedido não encontrado", err)
	}

	if input.Status != nil && *input.Status != pedido.Status {
		if err := helper.AplicarTransicao(&pedido, *input.Status, time.Now()); err != nil {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TRANSICAO_INVALIDA, err)
		}
	}
	if input.Observacoes != nil {
		pedido.Observacoes = input.Observacoes
	}
	if input.TrocoPara != nil {
		pedido.TrocoPara = input.TrocoPara
	}

	if err := database.DB.Save(&pedido).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao atualizar pedido", err)
	}

	if err := preloadPedido(database.DB).First(&pedido, pedido.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao carregar pedido", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pedido)
}

func DeletePedido(c *fiber.Ctx) error {
	pedidoId := c.Locals("inputId").(int)

	var pedido model.Pedido
	if err := database.DB.First(&pedido, pedidoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Pedido não encontrado", err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pedido_id = ?", pedido.ID).Delete(&model.ItemPedido{}).Error; err != nil {
			return err
		}
		return tx.Delete(&pedido).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao excluir pedido", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Pedido excluído"})
}

// GetPedidoWhatsApp devolve a mensagem de confirmação e o deep link wa.me
// para o telefone do cliente do pedido.
func GetPedidoWhatsApp(c *fiber.Ctx) error {
	pedidoId := c.Locals("inputId").(int)

	var pedido model.Pedido
	if err := preloadPedido(database.DB).First(&pedido, pedidoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Pedido não encontrado", err)
	}

	mensagem := helper.GerarMensagemPedido(pedido)
	if pedido.Status == constants.STATUS_SAIU_ENTREGA {
		mensagem = helper.GerarMensagemSaiuEntrega(pedido.Cliente.Nome)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"mensagem":    mensagem,
		"link":        helper.GerarLinkWhatsApp(pedido.Cliente.Telefone, mensagem),
		"statusLabel": constants.StatusLabel(pedido.Status),
	})
}

// GetPedidoPix gera o payload "copia e cola" e o QR code PIX do pedido.
func GetPedidoPix(c *fiber.Ctx) error {
	pedidoId := c.Locals("inputId").(int)

	var pedido model.Pedido
	if err := database.DB.First(&pedido, pedidoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Pedido não encontrado", err)
	}
	if pedido.FormaPagamento != constants.PAGAMENTO_PIX {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Pedido não é PIX", errors.New("payment method is not PIX"))
	}

	cfg, err := helper.GetConfiguracao()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if cfg.PixChave == "" {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Chave PIX não configurada", nil)
	}

	// txid do BR Code só aceita alfanuméricos
	txid := strings.ReplaceAll(pedido.CodigoPublico, "-", "")
	payload := helper.GerarPayloadPix(cfg.PixChave, cfg.PixNome, "", txid, pedido.Total)

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(payload, 400)
	if err != nil {
		log.Printf("Erro ao gerar QR PIX do pedido %s: %v", pedido.CodigoPublico, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"payload": payload,
		"qrCode":  qrBase64,
	})
}
