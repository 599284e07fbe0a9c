package helper

import (
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
)

// ConfiguracaoID é o id fixo do registro único de configuração.
const ConfiguracaoID uint = 1

// GetConfiguracao devolve o registro singleton, criando o padrão na primeira leitura.
func GetConfiguracao() (model.Configuracao, error) {
	var cfg model.Configuracao
	err := database.DB.Where(model.Configuracao{DTO: model.DTO{ID: ConfiguracaoID}}).
		Attrs(model.Configuracao{
			NomeLoja:            "Marmitaria",
			HorarioAbertura:     "11:00",
			HorarioFechamento:   "14:00",
			AceitaPedidos:       true,
			TaxaEntrega:         0,
			RaioEntregaGratisKm: 2.0,
			TaxaEntregaExtra:    3.00,
		}).
		FirstOrCreate(&cfg).Error
	return cfg, err
}
