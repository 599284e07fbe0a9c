package validate

import (
	"errors"
	"strconv"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
)

func CriarPedido() fiber.Handler {
	return parseAndValidate[model.CriarPedidoInput]("createInput")
}

func EditPedido(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		var input model.EditPedidoInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputId", id)
		c.Locals("updateInput", input)
		return c.Next()
	}
}

func IniciarRota() fiber.Handler {
	return parseAndValidate[model.IniciarRotaInput]("rotaInput")
}
