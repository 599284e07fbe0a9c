package helper

import (
	"fmt"
	"math"

	"github.com/samsuns9sued-hue/marmitariachefe/model"
)

const raioTerraKm = 6371.0

// DistanciaKm calcula a distância de círculo máximo (Haversine) entre duas
// coordenadas em graus decimais.
func DistanciaKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return raioTerraKm * c
}

// CalcularFrete aplica a regra da loja: entrega grátis dentro do raio,
// taxa extra fixa fora dele. Devolve também a distância com uma casa decimal.
func CalcularFrete(latLoja, lngLoja, latCliente, lngCliente, raioGratisKm, taxaExtra float64) (float64, string) {
	dist := DistanciaKm(latLoja, lngLoja, latCliente, lngCliente)
	taxa := 0.0
	if dist > raioGratisKm {
		taxa = taxaExtra
	}
	return taxa, fmt.Sprintf("%.1f", dist)
}

// FreteDaLoja aplica a configuração da loja à coordenada do cliente. Sem a
// coordenada da loja cadastrada não há distância a calcular e vale a taxa fixa.
func FreteDaLoja(cfg model.Configuracao, latCliente, lngCliente float64) (taxa float64, distanciaKm string, calculada bool) {
	if cfg.LatitudeLoja == 0 && cfg.LongitudeLoja == 0 {
		return cfg.TaxaEntrega, "", false
	}

	taxa, distanciaKm = CalcularFrete(
		cfg.LatitudeLoja, cfg.LongitudeLoja,
		latCliente, lngCliente,
		cfg.RaioEntregaGratisKm, cfg.TaxaEntregaExtra,
	)
	return taxa, distanciaKm, true
}
