package helper

import (
	"fmt"
	"strings"
)

// campo monta um campo EMV "id + tamanho(2) + valor".
func campo(id, valor string) string {
	return fmt.Sprintf("%s%02d%s", id, len(valor), valor)
}

// crc16 calcula o CRC16-CCITT (polinômio 0x1021, inicial 0xFFFF) exigido
// pelo BR Code do Banco Central.
func crc16(payload string) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range []byte(payload) {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// GerarPayloadPix monta o "copia e cola" PIX (BR Code estático) para o valor
// do pedido, usando a chave e o nome configurados na loja.
func GerarPayloadPix(chave, nome, cidade, txid string, valor float64) string {
	// truncar por runas para não partir um caractere acentuado no limite
	if r := []rune(nome); len(r) > 25 {
		nome = string(r[:25])
	}
	if cidade == "" {
		cidade = "BRASIL"
	}
	if r := []rune(cidade); len(r) > 15 {
		cidade = string(r[:15])
	}
	cidade = strings.ToUpper(cidade)
	if txid == "" {
		txid = "***"
	}

	merchantInfo := campo("00", "br.gov.bcb.pix") + campo("01", chave)

	payload := campo("00", "01") +
		campo("26", merchantInfo) +
		campo("52", "0000") +
		campo("53", "986") +
		campo("54", fmt.Sprintf("%.2f", valor)) +
		campo("58", "BR") +
		campo("59", nome) +
		campo("60", cidade) +
		campo("62", campo("05", txid)) +
		"6304"

	return payload + fmt.Sprintf("%04X", crc16(payload))
}
