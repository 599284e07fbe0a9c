package utils

import (
	"fmt"
	"strings"
	"unicode"
)

// SoDigitos remove tudo que não for dígito.
func SoDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LimparTelefone normaliza o telefone para a forma armazenada (só dígitos).
func LimparTelefone(telefone string) string {
	return SoDigitos(telefone)
}

// FormatarTelefone exibe números de 11 dígitos como (xx) xxxxx-xxxx.
func FormatarTelefone(telefone string) string {
	numeros := LimparTelefone(telefone)
	if len(numeros) == 11 {
		return fmt.Sprintf("(%s) %s-%s", numeros[0:2], numeros[2:7], numeros[7:])
	}
	return telefone
}

// NumeroWhatsApp prefixa o código do Brasil em números locais de 11 dígitos.
func NumeroWhatsApp(telefone string) string {
	numeros := LimparTelefone(telefone)
	if len(numeros) == 11 {
		return "55" + numeros
	}
	return numeros
}
