package helper

import (
	"errors"

	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"gorm.io/gorm"
)

// UpsertClientePorTelefone cria ou atualiza o cliente identificado pelo
// telefone normalizado. Pedidos repetidos do mesmo telefone nunca duplicam
// o cadastro, só refrescam os dados.
func UpsertClientePorTelefone(tx *gorm.DB, input model.UpsertClienteInput) (model.Cliente, error) {
	telefone := utils.LimparTelefone(input.Telefone)

	var cliente model.Cliente
	err := tx.Where("telefone = ?", telefone).First(&cliente).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return cliente, err
	}

	cliente.Nome = input.Nome
	cliente.Telefone = telefone
	cliente.Numero = input.Numero
	cliente.Cep = utils.SoDigitos(input.Cep)
	cliente.Bairro = input.Bairro
	cliente.Referencia = input.Referencia
	// o campo de exibição guarda o endereço completo, como nos registros legados
	cliente.Endereco = input.Endereco
	if input.Numero != "" || cliente.Cep != "" {
		cliente.Endereco = MontarEnderecoCompleto(input.Endereco, input.Numero, cliente.Cep)
	}

	if err := tx.Save(&cliente).Error; err != nil {
		return cliente, err
	}
	return cliente, nil
}
