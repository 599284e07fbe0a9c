package handler

import (
	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
)

// GetPedidosEntrega lista os pedidos relevantes para o entregador:
// prontos para sair (EM_PREPARO) e em rota (SAIU_ENTREGA).
func GetPedidosEntrega(c *fiber.Ctx) error {
	var pedidos []model.Pedido
	err := database.DB.
		Preload("Cliente").
		Preload("Itens").
		Preload("Itens.Produto").
		Preload("Itens.Tamanho").
		Where("status IN ?", []string{constants.STATUS_EM_PREPARO, constants.STATUS_SAIU_ENTREGA}).
		Order("created_at asc").
		Find(&pedidos).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar pedidos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pedidos)
}

// IniciarRota move os pedidos selecionados para SAIU_ENTREGA (tudo ou nada)
// e devolve o link de rota do Google Maps com as paradas.
func IniciarRota(c *fiber.Ctx) error {
	input := c.Locals("rotaInput").(model.IniciarRotaInput)

	pedidos, err := helper.IniciarRota(input.PedidoIDs)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Não foi possível iniciar a rota", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"pedidos":  pedidos,
		"linkRota": helper.GerarLinkRotaMaps(pedidos),
	})
}
