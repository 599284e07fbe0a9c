package model

type Produto struct {
	DTO
	Nome       string   `gorm:"not null" json:"nome"`
	Slug       string   `gorm:"unique;size:120" json:"slug"`
	Descricao  string   `json:"descricao"`
	Categoria  string   `gorm:"not null;index" json:"categoria"` // MISTURA, COMPLEMENTO, BEBIDA
	Preco      *float64 `json:"preco"`                           // null quando o preço vem do tamanho
	Disponivel bool     `gorm:"default:true" json:"disponivel"`
	Destaque   bool     `gorm:"default:false" json:"destaque"`
	Ordem      int      `gorm:"default:0" json:"ordem"`
	Imagem     *string  `json:"imagem"`
}

type CreateProdutoInput struct {
	Nome       string   `json:"nome" validate:"required"`
	Descricao  string   `json:"descricao"`
	Categoria  string   `json:"categoria" validate:"required,oneof=MISTURA COMPLEMENTO BEBIDA"`
	Preco      *float64 `json:"preco" validate:"omitempty,gte=0"`
	Disponivel *bool    `json:"disponivel"`
	Destaque   *bool    `json:"destaque"`
	Ordem      *int     `json:"ordem"`
	Imagem     *string  `json:"imagem"`
}

type EditProdutoInput struct {
	Nome       *string  `json:"nome"`
	Descricao  *string  `json:"descricao"`
	Categoria  *string  `json:"categoria" validate:"omitempty,oneof=MISTURA COMPLEMENTO BEBIDA"`
	Preco      *float64 `json:"preco" validate:"omitempty,gte=0"`
	Disponivel *bool    `json:"disponivel"`
	Destaque   *bool    `json:"destaque"`
	Ordem      *int     `json:"ordem"`
	Imagem     *string  `json:"imagem"`
}

type FilterProduto struct {
	Categoria   string `query:"categoria"`
	Disponiveis string `query:"disponiveis"`
}
