package model

// Configuracao é o registro único de ajustes da loja (id fixo, ver helper.GetConfiguracao).
type Configuracao struct {
	DTO
	NomeLoja            string  `gorm:"not null" json:"nomeLoja"`
	Telefone            string  `json:"telefone"`
	HorarioAbertura     string  `gorm:"size:5" json:"horarioAbertura"`   // "HH:MM"
	HorarioFechamento   string  `gorm:"size:5" json:"horarioFechamento"` // "HH:MM"
	AceitaPedidos       bool    `gorm:"default:true" json:"aceitaPedidos"`
	TaxaEntrega         float64 `gorm:"default:0" json:"taxaEntrega"` // valor fixo de fallback
	RaioEntregaGratisKm float64 `gorm:"default:2" json:"raioEntregaGratisKm"`
	TaxaEntregaExtra    float64 `gorm:"default:3" json:"taxaEntregaExtra"`
	LatitudeLoja        float64 `json:"latitudeLoja"`
	LongitudeLoja       float64 `json:"longitudeLoja"`
	PixChave            string  `json:"pixChave"`
	PixNome             string  `json:"pixNome"`
	SenhaAdmin          string  `json:"senhaAdmin"`
	SenhaEntregador     string  `json:"-"` // hash bcrypt
}

type EditConfiguracaoInput struct {
	NomeLoja            *string  `json:"nomeLoja"`
	Telefone            *string  `json:"telefone"`
	HorarioAbertura     *string  `json:"horarioAbertura"`
	HorarioFechamento   *string  `json:"horarioFechamento"`
	AceitaPedidos       *bool    `json:"aceitaPedidos"`
	TaxaEntrega         *float64 `json:"taxaEntrega" validate:"omitempty,gte=0"`
	RaioEntregaGratisKm *float64 `json:"raioEntregaGratisKm" validate:"omitempty,gte=0"`
	TaxaEntregaExtra    *float64 `json:"taxaEntregaExtra" validate:"omitempty,gte=0"`
	LatitudeLoja        *float64 `json:"latitudeLoja"`
	LongitudeLoja       *float64 `json:"longitudeLoja"`
	PixChave            *string  `json:"pixChave"`
	PixNome             *string  `json:"pixNome"`
	SenhaAdmin          *string  `json:"senhaAdmin"`
	SenhaEntregador     *string  `json:"senhaEntregador"`
}
