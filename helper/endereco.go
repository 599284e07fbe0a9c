package helper

import (
	"regexp"
	"strings"

	"github.com/samsuns9sued-hue/marmitariachefe/utils"
)

var (
	numeroRegex = regexp.MustCompile(`(\d+)`)
	cepRegex    = regexp.MustCompile(`CEP:\s*([\d-]+)`)
)

// EnderecoPartes são os campos estruturados recuperados de um endereço legado.
type EnderecoPartes struct {
	Rua    string
	Numero string
	Cep    string
}

// MontarEnderecoCompleto concatena os campos estruturados no formato de
// exibição gravado em Cliente.Endereco.
func MontarEnderecoCompleto(rua, numero, cep string) string {
	completo := rua
	if numero != "" {
		completo += ", Nº " + numero
	}
	if cep != "" {
		completo += " - CEP: " + cep
	}
	return completo
}

// MontarConsultaGeocodificacao monta o texto de busca do Nominatim a partir
// dos campos do cliente, pulando os vazios.
func MontarConsultaGeocodificacao(rua, numero, bairro string) string {
	consulta := strings.TrimSpace(rua)
	if numero != "" {
		consulta += " " + numero
	}
	if bairro != "" {
		consulta += ", " + bairro
	}
	return consulta
}

// ParsearEnderecoLegado recupera rua, número e CEP de um endereço gravado como
// texto livre ("Rua X, Nº 123 - CEP: 78000-000"). Registros novos carregam os
// campos estruturados e não passam por aqui.
func ParsearEnderecoLegado(endereco string) EnderecoPartes {
	partes := EnderecoPartes{Rua: strings.TrimSpace(endereco)}

	if !strings.Contains(endereco, "Nº") {
		return partes
	}

	pedacos := strings.SplitN(endereco, "Nº", 2)
	partes.Rua = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(pedacos[0]), ","))

	resto := pedacos[1]
	if m := numeroRegex.FindString(resto); m != "" {
		partes.Numero = m
	}
	if strings.Contains(resto, "CEP:") {
		if m := cepRegex.FindStringSubmatch(resto); len(m) > 1 {
			partes.Cep = utils.SoDigitos(m[1])
		}
	}

	return partes
}
