package handler

import (
	"errors"
	"log"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BuscarClientePorTelefone alimenta o fluxo de cliente recorrente no checkout:
// devolve o cadastro com os campos estruturados do endereço (recuperados do
// texto legado quando necessário) e regeocodifica rua + bairro para já
// devolver a taxa de entrega do endereço salvo.
func BuscarClientePorTelefone(c *fiber.Ctx) error {
	telefone := c.Query("telefone")
	if telefone == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("telefone obrigatório"))
	}

	telefoneLimpo := utils.LimparTelefone(telefone)

	var cliente model.Cliente
	err := database.DB.Where("telefone = ?", telefoneLimpo).First(&cliente).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.SuccessResponse(c, fiber.StatusOK, nil)
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar cliente", err)
	}

	// registros antigos guardam número e CEP embutidos no texto
	partes := helper.ParsearEnderecoLegado(cliente.Endereco)
	cliente.Endereco = partes.Rua
	if cliente.Numero == "" {
		cliente.Numero = partes.Numero
	}
	if cliente.Cep == "" {
		cliente.Cep = partes.Cep
	}

	resposta := fiber.Map{
		"cliente":   cliente,
		"calculada": false,
	}

	if cliente.Endereco != "" {
		consulta := helper.MontarConsultaGeocodificacao(cliente.Endereco, cliente.Numero, cliente.Bairro)
		lat, lng, geoErr := helper.Geocodificar(consulta)
		if geoErr != nil {
			log.Printf("Geocodificação falhou para cliente %d: %v", cliente.ID, geoErr)
			if cfg, cfgErr := helper.GetConfiguracao(); cfgErr == nil {
				resposta["taxa"] = cfg.TaxaEntrega
			}
		} else if taxa, distanciaKm, calculada, freteErr := freteDaLoja(lat, lng); freteErr == nil {
			resposta["taxa"] = taxa
			resposta["distanciaKm"] = distanciaKm
			resposta["calculada"] = calculada
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, resposta)
}

// GetClientes lista o cadastro completo para o painel admin, paginado.
func GetClientes(c *fiber.Ctx) error {
	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Cliente{})

	var total int64
	db.Count(&total)

	var clientes []model.Cliente
	if err := utils.ApplyPagination(db, pagination.Limit, pagination.Page).
		Order("nome asc").Find(&clientes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao buscar clientes", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       clientes,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: total,
	})
}

// UpsertCliente cria ou atualiza o cliente usando o telefone como chave de
// identidade: dois envios com o mesmo telefone mantêm um único registro.
func UpsertCliente(c *fiber.Ctx) error {
	input := c.Locals("upsertInput").(model.UpsertClienteInput)

	cliente, err := helper.UpsertClientePorTelefone(database.DB, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Erro ao criar/atualizar cliente", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, cliente)
}
