package middleware

import (
	"errors"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
)

// protectedArea valida o cookie de sessão da área informada. Sem sessão
// válida a requisição é rejeitada com 401.
func protectedArea(cookieName, area string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_AUTHENTICATED, errors.New("no session cookie"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_AUTHENTICATED, err)
		}
		if helper.TokenArea(jwtToken) != area {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_AUTHENTICATED, errors.New("wrong session area"))
		}

		c.Locals("session", jwtToken)
		return c.Next()
	}
}

func AdminProtected() fiber.Handler {
	return protectedArea(constants.COOKIE_ADMIN, "admin")
}

func EntregadorProtected() fiber.Handler {
	return protectedArea(constants.COOKIE_ENTREGADOR, "entregador")
}

// SessaoProtected aceita sessão válida de qualquer área (admin ou entregador).
func SessaoProtected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		areas := []struct{ cookie, area string }{
			{constants.COOKIE_ADMIN, "admin"},
			{constants.COOKIE_ENTREGADOR, "entregador"},
		}
		for _, a := range areas {
			token := c.Cookies(a.cookie)
			if token == "" {
				continue
			}
			jwtToken, err := helper.ParseToken(token)
			if err != nil || !jwtToken.Valid || helper.TokenArea(jwtToken) != a.area {
				continue
			}
			c.Locals("session", jwtToken)
			return c.Next()
		}
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_AUTHENTICATED, errors.New("no session cookie"))
	}
}
