package handler

import (
	"errors"
	"time"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
)

func setSessionCookie(c *fiber.Ctx, name, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// AdminLogin compara a senha enviada com a senha do registro de configuração
// e grava o cookie de sessão da área administrativa.
func AdminLogin(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	cfg, err := helper.GetConfiguracao()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if cfg.SenhaAdmin == "" || input.Senha != cfg.SenhaAdmin {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("wrong password"))
	}

	token, err := helper.GenerateSessionToken("admin")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setSessionCookie(c, constants.COOKIE_ADMIN, token)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Login realizado"})
}

func AdminLogout(c *fiber.Ctx) error {
	clearSessionCookie(c, constants.COOKIE_ADMIN)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Sessão encerrada"})
}

// EntregadorLogin valida a senha do entregador (armazenada como hash bcrypt).
func EntregadorLogin(c *fiber.Ctx) error {
	input := c.Locals("loginInput").(model.LoginInput)

	cfg, err := helper.GetConfiguracao()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if cfg.SenhaEntregador == "" || !helper.CheckPasswordHash(input.Senha, cfg.SenhaEntregador) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("wrong password"))
	}

	token, err := helper.GenerateSessionToken("entregador")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setSessionCookie(c, constants.COOKIE_ENTREGADOR, token)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Login realizado"})
}

func EntregadorLogout(c *fiber.Ctx) error {
	clearSessionCookie(c, constants.COOKIE_ENTREGADOR)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Sessão encerrada"})
}
