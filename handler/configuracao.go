package handler

import (
	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
)

// GetConfiguracao devolve o registro único, criando o padrão se ainda não existir.
func GetConfiguracao(c *fiber.Ctx) error {
	cfg, err := helper.GetConfiguracao()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar configurações", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, cfg)
}

func EditConfiguracao(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.EditConfiguracaoInput)

	cfg, err := helper.GetConfiguracao()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.NomeLoja != nil {
		cfg.NomeLoja = *input.NomeLoja
	}
	if input.Telefone != nil {
		cfg.Telefone = utils.LimparTelefone(*input.Telefone)
	}
	if input.HorarioAbertura != nil {
		cfg.HorarioAbertura = *input.HorarioAbertura
	}
	if input.HorarioFechamento != nil {
		cfg.HorarioFechamento = *input.HorarioFechamento
	}
	if input.AceitaPedidos != nil {
		cfg.AceitaPedidos = *input.AceitaPedidos
	}
	if input.TaxaEntrega != nil {
		cfg.TaxaEntrega = *input.TaxaEntrega
	}
	if input.RaioEntregaGratisKm != nil {
		cfg.RaioEntregaGratisKm = *input.RaioEntregaGratisKm
	}
	if input.TaxaEntregaExtra != nil {
		cfg.TaxaEntregaExtra = *input.TaxaEntregaExtra
	}
	if input.LatitudeLoja != nil {
		cfg.LatitudeLoja = *input.LatitudeLoja
	}
	if input.LongitudeLoja != nil {
		cfg.LongitudeLoja = *input.LongitudeLoja
	}
	if input.PixChave != nil {
		cfg.PixChave = *input.PixChave
	}
	if input.PixNome != nil {
		cfg.PixNome = *input.PixNome
	}
	if input.SenhaAdmin != nil && *input.SenhaAdmin != "" {
		cfg.SenhaAdmin = *input.SenhaAdmin
	}
	if input.SenhaEntregador != nil && *input.SenhaEntregador != "" {
		hash, err := helper.HashPassword(*input.SenhaEntregador)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		cfg.SenhaEntregador = hash
	}

	if err := database.DB.Save(&cfg).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao atualizar configurações", err)
	}

	// horários podem ter mudado; reavalia o status da loja sem esperar o scheduler
	helper.AtualizarStatusLoja()

	return utils.SuccessResponse(c, fiber.StatusOK, cfg)
}

// GetStatusLoja informa se a loja está aceitando pedidos agora. O valor é
// recalculado pelo scheduler a cada minuto.
func GetStatusLoja(c *fiber.Ctx) error {
	cfg, err := helper.GetConfiguracao()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"aberta":            helper.LojaAberta(),
		"aceitaPedidos":     cfg.AceitaPedidos,
		"horarioAbertura":   cfg.HorarioAbertura,
		"horarioFechamento": cfg.HorarioFechamento,
	})
}
