package utils

import "testing"

func TestSoDigitos(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(65) 99999-0000", "65999990000"},
		{"78000-000", "78000000"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SoDigitos(tt.in); got != tt.want {
			t.Errorf("SoDigitos(%q) = %q, esperado %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatarTelefone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"65999990000", "(65) 99999-0000"},
		{"(65)99999-0000", "(65) 99999-0000"},
		{"999990000", "999990000"}, // fora do padrão de 11 dígitos fica como veio
	}
	for _, tt := range tests {
		if got := FormatarTelefone(tt.in); got != tt.want {
			t.Errorf("FormatarTelefone(%q) = %q, esperado %q", tt.in, got, tt.want)
		}
	}
}

func TestNumeroWhatsApp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"65999990000", "5565999990000"},
		{"(65) 99999-0000", "5565999990000"},
		{"5565999990000", "5565999990000"}, // já com DDI, não duplica
	}
	for _, tt := range tests {
		if got := NumeroWhatsApp(tt.in); got != tt.want {
			t.Errorf("NumeroWhatsApp(%q) = %q, esperado %q", tt.in, got, tt.want)
		}
	}
}
