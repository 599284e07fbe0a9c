package helper

import "testing"

func TestMontarEnderecoCompleto(t *testing.T) {
	tests := []struct {
		name   string
		rua    string
		numero string
		cep    string
		want   string
	}{
		{"completo", "Rua das Flores", "123", "78000-000", "Rua das Flores, Nº 123 - CEP: 78000-000"},
		{"sem cep", "Rua das Flores", "123", "", "Rua das Flores, Nº 123"},
		{"só rua", "Rua das Flores", "", "", "Rua das Flores"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MontarEnderecoCompleto(tt.rua, tt.numero, tt.cep); got != tt.want {
				t.Errorf("MontarEnderecoCompleto = %q, esperado %q", got, tt.want)
			}
		})
	}
}

func TestMontarConsultaGeocodificacao(t *testing.T) {
	tests := []struct {
		name   string
		rua    string
		numero string
		bairro string
		want   string
	}{
		{"completo", "Rua das Flores", "123", "Centro", "Rua das Flores 123, Centro"},
		{"sem número", "Av. Brasil", "", "Centro", "Av. Brasil, Centro"},
		{"só rua", "Av. Brasil", "", "", "Av. Brasil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MontarConsultaGeocodificacao(tt.rua, tt.numero, tt.bairro); got != tt.want {
				t.Errorf("MontarConsultaGeocodificacao = %q, esperado %q", got, tt.want)
			}
		})
	}
}

func TestParsearEnderecoLegado(t *testing.T) {
	tests := []struct {
		name     string
		endereco string
		want     EnderecoPartes
	}{
		{
			"formato completo",
			"Rua das Flores, Nº 123 - CEP: 78000-000",
			EnderecoPartes{Rua: "Rua das Flores", Numero: "123", Cep: "78000000"},
		},
		{
			"sem cep",
			"Av. Brasil, Nº 45",
			EnderecoPartes{Rua: "Av. Brasil", Numero: "45"},
		},
		{
			"texto livre sem marcadores",
			"Chácara perto do mercado",
			EnderecoPartes{Rua: "Chácara perto do mercado"},
		},
		{
			"espaços extras",
			"  Rua A , Nº 7 - CEP: 78123-456 ",
			EnderecoPartes{Rua: "Rua A", Numero: "7", Cep: "78123456"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsearEnderecoLegado(tt.endereco)
			if got != tt.want {
				t.Errorf("ParsearEnderecoLegado(%q) = %+v, esperado %+v", tt.endereco, got, tt.want)
			}
		})
	}
}
