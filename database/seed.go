package database

import (
	"log"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	var count int64
	db.Model(&model.Configuracao{}).Count(&count)
	if count == 0 {
		bytes, err := bcrypt.GenerateFromPassword([]byte("entrega123"), 10)
		senhaEntregador := string(bytes)
		if err != nil {
			log.Println("failed to hash courier password:", err)
			senhaEntregador = ""
		}
		cfg := model.Configuracao{
			NomeLoja:            "Marmitaria da Mãe",
			Telefone:            "11999999999",
			HorarioAbertura:     "11:00",
			HorarioFechamento:   "14:00",
			AceitaPedidos:       true,
			TaxaEntrega:         5.00,
			RaioEntregaGratisKm: 2.0,
			TaxaEntregaExtra:    3.00,
			PixChave:            "11999999999",
			PixNome:             "Maria Silva",
			SenhaAdmin:          "123456",
			SenhaEntregador:     senhaEntregador,
		}
		if err := db.Create(&cfg).Error; err != nil {
			log.Println("failed to seed config:", err)
		}
	}

	tamanhos := []model.Tamanho{
		{Nome: "P", Descricao: "Pequena - Ideal para 1 pessoa", Preco: 15.00, Ativo: true, Ordem: 1},
		{Nome: "M", Descricao: "Média - Com bastante comida", Preco: 18.00, Ativo: true, Ordem: 2},
		{Nome: "G", Descricao: "Grande - Para quem tem fome!", Preco: 22.00, Ativo: true, Ordem: 3},
		{Nome: "GG", Descricao: "Gigante - Dá pra dividir", Preco: 28.00, Ativo: true, Ordem: 4},
	}
	for _, t := range tamanhos {
		if err := db.Where(model.Tamanho{Nome: t.Nome}).FirstOrCreate(&t).Error; err != nil {
			log.Println("failed to seed size:", t.Nome, "error:", err)
		}
	}

	produtos := []model.Produto{
		{Nome: "Bife Acebolado", Descricao: "Bife grelhado com cebolas douradas", Categoria: constants.CATEGORIA_MISTURA, Disponivel: true, Destaque: true, Ordem: 1},
		{Nome: "Frango Grelhado", Descricao: "Peito de frango temperado e grelhado", Categoria: constants.CATEGORIA_MISTURA, Disponivel: true, Destaque: true, Ordem: 2},
		{Nome: "Strogonoff de Frango", Descricao: "Cremoso com batata palha", Categoria: constants.CATEGORIA_MISTURA, Disponivel: true, Ordem: 3},
		{Nome: "Peixe Frito", Descricao: "Filé de tilápia empanado", Categoria: constants.CATEGORIA_MISTURA, Disponivel: false, Ordem: 4},
		{Nome: "Linguiça Calabresa", Descricao: "Acebolada", Categoria: constants.CATEGORIA_MISTURA, Disponivel: true, Ordem: 5},
		{Nome: "Ovo Frito", Descricao: "2 ovos fritos", Categoria: constants.CATEGORIA_MISTURA, Disponivel: true, Ordem: 6},

		{Nome: "Batata Frita", Descricao: "Porção extra de batata", Categoria: constants.CATEGORIA_COMPLEMENTO, Preco: utils.Ptr(5.00), Disponivel: true, Ordem: 1},
		{Nome: "Farofa", Descricao: "Farofa caseira temperada", Categoria: constants.CATEGORIA_COMPLEMENTO, Preco: utils.Ptr(3.00), Disponivel: true, Ordem: 2},
		{Nome: "Vinagrete", Descricao: "Salada de tomate e cebola", Categoria: constants.CATEGORIA_COMPLEMENTO, Preco: utils.Ptr(2.00), Disponivel: true, Ordem: 3},
		{Nome: "Salada Extra", Descricao: "Alface, tomate e cenoura", Categoria: constants.CATEGORIA_COMPLEMENTO, Preco: utils.Ptr(4.00), Disponivel: true, Ordem: 4},
		{Nome: "Ovo Extra", Descricao: "1 ovo frito adicional", Categoria: constants.CATEGORIA_COMPLEMENTO, Preco: utils.Ptr(2.50), Disponivel: true, Ordem: 5},

		{Nome: "Refrigerante Lata", Descricao: "Coca, Guaraná ou Fanta", Categoria: constants.CATEGORIA_BEBIDA, Preco: utils.Ptr(5.00), Disponivel: true, Ordem: 1},
		{Nome: "Suco Natural", Descricao: "Laranja, Limão ou Maracujá", Categoria: constants.CATEGORIA_BEBIDA, Preco: utils.Ptr(6.00), Disponivel: true, Ordem: 2},
		{Nome: "Água Mineral", Descricao: "500ml", Categoria: constants.CATEGORIA_BEBIDA, Preco: utils.Ptr(3.00), Disponivel: true, Ordem: 3},
	}
	for _, p := range produtos {
		p.Slug = utils.Slugify(p.Nome)
		if err := db.Where(model.Produto{Nome: p.Nome, Categoria: p.Categoria}).FirstOrCreate(&p).Error; err != nil {
			log.Println("failed to seed product:", p.Nome, "error:", err)
		}
	}
}
