package model

type Cliente struct {
	DTO
	Nome       string `gorm:"not null" json:"nome"`
	Telefone   string `gorm:"unique;not null" json:"telefone"` // só dígitos, chave natural
	Endereco   string `json:"endereco"`
	Numero     string `json:"numero"`
	Cep        string `json:"cep"`
	Bairro     string `json:"bairro"`
	Referencia string `json:"referencia"`
}

type UpsertClienteInput struct {
	Nome       string `json:"nome" validate:"required"`
	Telefone   string `json:"telefone" validate:"required,min=8"`
	Endereco   string `json:"endereco"`
	Numero     string `json:"numero"`
	Cep        string `json:"cep"`
	Bairro     string `json:"bairro"`
	Referencia string `json:"referencia"`
}
