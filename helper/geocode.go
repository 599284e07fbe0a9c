package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samsuns9sued-hue/marmitariachefe/database"
)

const geocodeCacheTTL = 24 * time.Hour

var httpClient = &http.Client{Timeout: 10 * time.Second}

type EnderecoViaCep struct {
	Cep        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	Uf         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

type EnderecoReverso struct {
	Rua    string `json:"rua"`
	Bairro string `json:"bairro"`
	Cep    string `json:"cep"`
}

func cacheGet(key string, dest any) bool {
	if database.Redis == nil {
		return false
	}
	raw, err := database.Redis.Get(context.Background(), key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

func cacheSet(key string, value any) {
	if database.Redis == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	database.Redis.Set(context.Background(), key, raw, geocodeCacheTTL)
}

// BuscarCep consulta o ViaCEP por um CEP de 8 dígitos.
func BuscarCep(cep string) (*EnderecoViaCep, error) {
	var cached EnderecoViaCep
	if cacheGet("viacep:"+cep, &cached) {
		return &cached, nil
	}

	resp, err := httpClient.Get(fmt.Sprintf("https://viacep.com.br/ws/%s/json/", cep))
	if err != nil {
		return nil, fmt.Errorf("failed to call ViaCEP: %v", err)
	}
	defer resp.Body.Close()

	var endereco EnderecoViaCep
	if err := json.NewDecoder(resp.Body).Decode(&endereco); err != nil {
		return nil, fmt.Errorf("failed to decode ViaCEP response: %v", err)
	}
	if endereco.Erro {
		return nil, fmt.Errorf("CEP %s não encontrado", cep)
	}

	cacheSet("viacep:"+cep, endereco)
	return &endereco, nil
}

// Geocodificar converte um texto de endereço em coordenadas via Nominatim.
func Geocodificar(consulta string) (lat, lng float64, err error) {
	type ponto struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	}
	var cached ponto
	if cacheGet("geo:"+consulta, &cached) {
		return cached.Lat, cached.Lng, nil
	}

	endpoint := fmt.Sprintf("https://nominatim.openstreetmap.org/search?format=json&q=%s&limit=1&countrycodes=br",
		url.QueryEscape(consulta),
	)

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %v", err)
	}
	// Nominatim exige identificação do cliente
	req.Header.Set("User-Agent", "MarmitariaChefe/1.0 (contato@marmitariachefe.com.br)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to call Nominatim API: %v", err)
	}
	defer resp.Body.Close()

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode API response: %v", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("endereço sem resultados: %s", consulta)
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse latitude: %v", err)
	}
	lng, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse longitude: %v", err)
	}

	cacheSet("geo:"+consulta, ponto{Lat: lat, Lng: lng})
	return lat, lng, nil
}

// GeocodificarEndereco monta a consulta "rua, bairro, cidade, uf" usada nos
// fluxos de CEP e de cliente recorrente.
func GeocodificarEndereco(rua, bairro, cidade, uf string) (float64, float64, error) {
	consulta := fmt.Sprintf("%s, %s, %s, %s", rua, bairro, cidade, uf)
	return Geocodificar(consulta)
}

// GeocodificarReverso converte coordenadas em rua/bairro/CEP via Nominatim.
func GeocodificarReverso(lat, lng float64) (*EnderecoReverso, error) {
	key := fmt.Sprintf("georev:%.5f,%.5f", lat, lng)
	var cached EnderecoReverso
	if cacheGet(key, &cached) {
		return &cached, nil
	}

	endpoint := fmt.Sprintf("https://nominatim.openstreetmap.org/reverse?format=json&lat=%f&lon=%f", lat, lng)
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", "MarmitariaChefe/1.0 (contato@marmitariachefe.com.br)")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Nominatim API: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		Address struct {
			Road          string `json:"road"`
			Suburb        string `json:"suburb"`
			Neighbourhood string `json:"neighbourhood"`
			Postcode      string `json:"postcode"`
		} `json:"address"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode API response: %v", err)
	}

	bairro := result.Address.Suburb
	if bairro == "" {
		bairro = result.Address.Neighbourhood
	}
	endereco := EnderecoReverso{
		Rua:    result.Address.Road,
		Bairro: bairro,
		Cep:    result.Address.Postcode,
	}

	cacheSet(key, endereco)
	return &endereco, nil
}
