package helper

import (
	"math"
	"testing"

	"github.com/samsuns9sued-hue/marmitariachefe/model"
)

func TestDistanciaKm(t *testing.T) {
	latLoja, lngLoja := -15.6014, -56.0979

	if d := DistanciaKm(latLoja, lngLoja, latLoja, lngLoja); d != 0 {
		t.Errorf("distância de um ponto até ele mesmo = %f, esperado 0", d)
	}

	ida := DistanciaKm(latLoja, lngLoja, -15.58, -56.12)
	volta := DistanciaKm(-15.58, -56.12, latLoja, lngLoja)
	if math.Abs(ida-volta) > 1e-9 {
		t.Errorf("distância não é simétrica: %f != %f", ida, volta)
	}

	// 0.01 grau de latitude na mesma longitude ≈ 1.112 km
	d := DistanciaKm(0, 0, 0.01, 0)
	if math.Abs(d-1.1119) > 0.001 {
		t.Errorf("DistanciaKm(0,0 -> 0.01,0) = %f, esperado ~1.1119", d)
	}
}

func TestCalcularFrete(t *testing.T) {
	latLoja, lngLoja := -15.6014, -56.0979
	raio := 2.0
	extra := 3.0

	tests := []struct {
		name        string
		latCliente  float64
		lngCliente  float64
		wantTaxa    float64
		wantDistStr string
	}{
		{"mesmo ponto", latLoja, lngLoja, 0, "0.0"},
		{"dentro do raio", latLoja + 0.01, lngLoja, 0, "1.1"},
		{"fora do raio", latLoja + 0.02248, lngLoja, 3.0, "2.5"},
		{"bem fora do raio", latLoja + 0.03, lngLoja, 3.0, "3.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxa, dist := CalcularFrete(latLoja, lngLoja, tt.latCliente, tt.lngCliente, raio, extra)
			if taxa != tt.wantTaxa {
				t.Errorf("taxa = %f, esperado %f", taxa, tt.wantTaxa)
			}
			if dist != tt.wantDistStr {
				t.Errorf("distância = %q, esperado %q", dist, tt.wantDistStr)
			}
		})
	}
}

func TestFreteDaLoja(t *testing.T) {
	cfg := model.Configuracao{
		TaxaEntrega:         5.00,
		RaioEntregaGratisKm: 2.0,
		TaxaEntregaExtra:    3.00,
	}

	// sem coordenada da loja vale a taxa fixa, nunca entrega grátis
	taxa, dist, calculada := FreteDaLoja(cfg, -15.58, -56.12)
	if taxa != 5.00 || dist != "" || calculada {
		t.Errorf("sem coordenada: taxa=%.2f dist=%q calculada=%v, esperado 5.00/\"\"/false", taxa, dist, calculada)
	}

	cfg.LatitudeLoja = -15.6014
	cfg.LongitudeLoja = -56.0979
	taxa, dist, calculada = FreteDaLoja(cfg, cfg.LatitudeLoja+0.01, cfg.LongitudeLoja)
	if taxa != 0 || dist != "1.1" || !calculada {
		t.Errorf("dentro do raio: taxa=%.2f dist=%q calculada=%v, esperado 0/\"1.1\"/true", taxa, dist, calculada)
	}

	taxa, _, _ = FreteDaLoja(cfg, cfg.LatitudeLoja+0.03, cfg.LongitudeLoja)
	if taxa != 3.00 {
		t.Errorf("fora do raio: taxa=%.2f, esperado 3.00", taxa)
	}
}

func TestCalcularFreteNoLimiteDoRaio(t *testing.T) {
	// exatamente sobre o raio não cobra taxa extra (regra "> raio")
	taxa, _ := CalcularFrete(0, 0, 0, 0, 0, 3.0)
	if taxa != 0 {
		t.Errorf("taxa no limite = %f, esperado 0", taxa)
	}
}
