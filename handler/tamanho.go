package handler

import (
	"errors"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetTamanhos(c *fiber.Ctx) error {
	var tamanhos []model.Tamanho
	if err := database.DB.Where("ativo = ?", true).Order("ordem asc").Find(&tamanhos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar tamanhos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tamanhos)
}

func CreateTamanho(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateTamanhoInput)

	var tamanho model.Tamanho
	if err := copier.Copy(&tamanho, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Ativo == nil {
		tamanho.Ativo = true
	}

	if err := database.DB.Create(&tamanho).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao criar tamanho", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, tamanho)
}

func EditTamanho(c *fiber.Ctx) error {
	tamanhoId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.EditTamanhoInput)

	var tamanho model.Tamanho
	if err := database.DB.First(&tamanho, tamanhoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if input.Nome != nil {
		tamanho.Nome = *input.Nome
	}
	if input.Descricao != nil {
		tamanho.Descricao = *input.Descricao
	}
	if input.Preco != nil {
		tamanho.Preco = *input.Preco
	}
	if input.Ativo != nil {
		tamanho.Ativo = *input.Ativo
	}
	if input.Ordem != nil {
		tamanho.Ordem = *input.Ordem
	}

	if err := database.DB.Save(&tamanho).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao atualizar tamanho", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tamanho)
}

// DeleteTamanho exclui um tamanho, recusando quando há pedidos que o
// referenciam (preços históricos dependem do registro).
func DeleteTamanho(c *fiber.Ctx) error {
	tamanhoId := c.Locals("inputId").(int)

	var tamanho model.Tamanho
	if err := database.DB.First(&tamanho, tamanhoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	emUso, err := helper.TamanhoEmUso(tamanho.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if emUso {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TAMANHO_EM_USO, errors.New("size referenced by order items"))
	}

	if err := database.DB.Delete(&tamanho).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao excluir tamanho", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Tamanho excluído"})
}
