package model

type Tamanho struct {
	DTO
	Nome      string  `gorm:"not null" json:"nome"`
	Descricao string  `json:"descricao"`
	Preco     float64 `gorm:"not null" json:"preco"`
	Ativo     bool    `gorm:"default:true" json:"ativo"`
	Ordem     int     `gorm:"default:0" json:"ordem"`
}

type CreateTamanhoInput struct {
	Nome      string  `json:"nome" validate:"required"`
	Descricao string  `json:"descricao"`
	Preco     float64 `json:"preco" validate:"required,gt=0"`
	Ativo     *bool   `json:"ativo"`
	Ordem     *int    `json:"ordem"`
}

type EditTamanhoInput struct {
	Nome      *string  `json:"nome"`
	Descricao *string  `json:"descricao"`
	Preco     *float64 `json:"preco" validate:"omitempty,gt=0"`
	Ativo     *bool    `json:"ativo"`
	Ordem     *int     `json:"ordem"`
}
