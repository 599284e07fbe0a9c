package handler

import (
	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetProdutos(c *fiber.Ctx) error {
	filter := new(model.FilterProduto)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Produto{})
	if filter.Categoria != "" {
		db = db.Where("categoria = ?", filter.Categoria)
	}
	if filter.Disponiveis == "true" {
		db = db.Where("disponivel = ?", true)
	}

	var produtos []model.Produto
	if err := db.Order("ordem asc").Order("nome asc").Find(&produtos).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar produtos", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, produtos)
}

func CreateProduto(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateProdutoInput)

	var produto model.Produto
	if err := copier.Copy(&produto, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	produto.Slug = helper.GenerateUniqueProdutoSlug(database.DB, input.Nome)
	if input.Disponivel == nil {
		produto.Disponivel = true
	}

	if err := database.DB.Create(&produto).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao criar produto", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, produto)
}

func EditProduto(c *fiber.Ctx) error {
	produtoId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.EditProdutoInput)

	var produto model.Produto
	if err := database.DB.First(&produto, produtoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if input.Nome != nil && *input.Nome != produto.Nome {
		produto.Nome = *input.Nome
		produto.Slug = helper.GenerateUniqueProdutoSlug(database.DB, *input.Nome)
	}
	if input.Descricao != nil {
		produto.Descricao = *input.Descricao
	}
	if input.Categoria != nil {
		produto.Categoria = *input.Categoria
	}
	if input.Preco != nil {
		produto.Preco = input.Preco
	}
	if input.Disponivel != nil {
		produto.Disponivel = *input.Disponivel
	}
	if input.Destaque != nil {
		produto.Destaque = *input.Destaque
	}
	if input.Ordem != nil {
		produto.Ordem = *input.Ordem
	}
	if input.Imagem != nil {
		produto.Imagem = input.Imagem
	}

	if err := database.DB.Save(&produto).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao atualizar produto", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, produto)
}

// ToggleDisponibilidade inverte a disponibilidade do produto no cardápio.
func ToggleDisponibilidade(c *fiber.Ctx) error {
	produtoId := c.Locals("inputId").(int)

	var produto model.Produto
	if err := database.DB.First(&produto, produtoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	produto.Disponivel = !produto.Disponivel
	if err := database.DB.Save(&produto).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao atualizar produto", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, produto)
}

func DeleteProduto(c *fiber.Ctx) error {
	produtoId := c.Locals("inputId").(int)

	var produto model.Produto
	if err := database.DB.First(&produto, produtoId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := database.DB.Delete(&produto).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao excluir produto", err)
	}

	if produto.Imagem != nil && *produto.Imagem != "" {
		go helper.DeleteImagemProduto(*produto.Imagem)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Produto excluído"})
}
