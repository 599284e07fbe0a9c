package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/helper"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
)

// freteDaLoja carrega a configuração e calcula a taxa; sem coordenada da loja
// cadastrada devolve a taxa fixa como fallback. Falha de leitura da
// configuração é erro, não entrega grátis.
func freteDaLoja(latCliente, lngCliente float64) (taxa float64, distanciaKm string, calculada bool, err error) {
	cfg, err := helper.GetConfiguracao()
	if err != nil {
		return 0, "", false, err
	}

	taxa, distanciaKm, calculada = helper.FreteDaLoja(cfg, latCliente, lngCliente)
	return taxa, distanciaKm, calculada, nil
}

// GetFrete calcula a taxa de entrega para uma coordenada do cliente.
func GetFrete(c *fiber.Ctx) error {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("lat/lng inválidos"))
	}

	taxa, distanciaKm, calculada, err := freteDaLoja(lat, lng)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"taxa":        taxa,
		"distanciaKm": distanciaKm,
		"calculada":   calculada,
	})
}

// BuscarEnderecoPorCep resolve um CEP em endereço via ViaCEP, geocodifica o
// resultado e devolve a taxa de entrega. Falha de geocodificação não bloqueia:
// o endereço volta preenchido e a taxa cai no valor fixo da loja.
func BuscarEnderecoPorCep(c *fiber.Ctx) error {
	cep := utils.SoDigitos(c.Params("cep"))
	if len(cep) != 8 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "CEP deve ter 8 dígitos", errors.New("invalid CEP length"))
	}

	endereco, err := helper.BuscarCep(cep)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "CEP não encontrado", err)
	}

	resposta := fiber.Map{
		"endereco": endereco.Logradouro,
		"bairro":   endereco.Bairro,
		"cidade":   endereco.Localidade,
		"uf":       endereco.Uf,
	}

	lat, lng, err := helper.GeocodificarEndereco(endereco.Logradouro, endereco.Bairro, endereco.Localidade, endereco.Uf)
	if err != nil {
		log.Printf("Geocodificação falhou para CEP %s: %v", cep, err)
		cfg, cfgErr := helper.GetConfiguracao()
		if cfgErr == nil {
			resposta["taxa"] = cfg.TaxaEntrega
		}
		resposta["calculada"] = false
		return utils.SuccessResponse(c, fiber.StatusOK, resposta)
	}

	taxa, distanciaKm, calculada, err := freteDaLoja(lat, lng)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	resposta["taxa"] = taxa
	resposta["distanciaKm"] = distanciaKm
	resposta["calculada"] = calculada
	resposta["latitude"] = lat
	resposta["longitude"] = lng

	return utils.SuccessResponse(c, fiber.StatusOK, resposta)
}

// EnderecoReverso converte coordenadas do aparelho em campos de endereço e
// já devolve a taxa de entrega calculada a partir delas.
func EnderecoReverso(c *fiber.Ctx) error {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lng, err2 := strconv.ParseFloat(c.Query("lng"), 64)
	if err1 != nil || err2 != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("lat/lng inválidos"))
	}

	endereco, err := helper.GeocodificarReverso(lat, lng)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Endereço não encontrado para a localização", err)
	}

	taxa, distanciaKm, calculada, err := freteDaLoja(lat, lng)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"endereco":    endereco.Rua,
		"bairro":      endereco.Bairro,
		"cep":         utils.SoDigitos(endereco.Cep),
		"taxa":        taxa,
		"distanciaKm": distanciaKm,
		"calculada":   calculada,
	})
}
