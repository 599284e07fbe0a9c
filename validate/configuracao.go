package validate

import (
	"github.com/samsuns9sued-hue/marmitariachefe/model"

	"github.com/gofiber/fiber/v2"
)

func EditConfiguracao() fiber.Handler {
	return parseAndValidate[model.EditConfiguracaoInput]("updateInput")
}

func Login() fiber.Handler {
	return parseAndValidate[model.LoginInput]("loginInput")
}
