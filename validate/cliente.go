package validate

import (
	"github.com/samsuns9sued-hue/marmitariachefe/model"

	"github.com/gofiber/fiber/v2"
)

func UpsertCliente() fiber.Handler {
	return parseAndValidate[model.UpsertClienteInput]("upsertInput")
}
