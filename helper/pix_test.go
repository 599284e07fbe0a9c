package helper

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGerarPayloadPix(t *testing.T) {
	payload := GerarPayloadPix("chave@pix.com", "Marmitaria da Mãe", "Cuiabá", "PED1A2B3C", 41.00)

	quer := []string{
		"br.gov.bcb.pix",
		"chave@pix.com",
		"Marmitaria da Mãe",
		"41.00",
		"PED1A2B3C",
		"5802BR",
	}
	for _, trecho := range quer {
		if !strings.Contains(payload, trecho) {
			t.Errorf("payload não contém %q:\n%s", trecho, payload)
		}
	}

	if !strings.Contains(payload, strings.ToUpper("Cuiabá")) {
		t.Errorf("cidade não está em maiúsculas: %s", payload)
	}

	// CRC16-CCITT do payload confere com o sufixo
	base := payload[:len(payload)-4]
	if !strings.HasSuffix(base, "6304") {
		t.Fatalf("campo 63 ausente: %s", payload)
	}
	esperado := fmt.Sprintf("%04X", crc16(base))
	if !strings.HasSuffix(payload, esperado) {
		t.Errorf("CRC = %s, esperado %s", payload[len(payload)-4:], esperado)
	}
}

func TestGerarPayloadPixDefaults(t *testing.T) {
	payload := GerarPayloadPix("11999990000", "Loja", "", "", 10.50)

	if !strings.Contains(payload, "BRASIL") {
		t.Errorf("cidade padrão ausente: %s", payload)
	}
	if !strings.Contains(payload, campo("62", campo("05", "***"))) {
		t.Errorf("txid padrão ausente: %s", payload)
	}
}

func TestGerarPayloadPixTruncaNome(t *testing.T) {
	nome := strings.Repeat("A", 40)
	payload := GerarPayloadPix("chave", nome, "Cuiaba", "TX", 1.00)

	if strings.Contains(payload, nome) {
		t.Errorf("nome não foi truncado em 25 caracteres: %s", payload)
	}
	if !strings.Contains(payload, campo("59", nome[:25])) {
		t.Errorf("nome truncado ausente: %s", payload)
	}

	// caractere acentuado exatamente no limite não pode ser partido
	acentuado := strings.Repeat("a", 24) + "ão"
	payload = GerarPayloadPix("chave", acentuado, "Cuiaba", "TX", 1.00)
	if !utf8.ValidString(payload) {
		t.Errorf("payload com UTF-8 inválido: %q", payload)
	}
	if !strings.Contains(payload, campo("59", strings.Repeat("a", 24)+"ã")) {
		t.Errorf("truncamento não respeitou a runa no limite: %s", payload)
	}
}
