package handler

import (
	"time"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/database"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"github.com/gofiber/fiber/v2"
)

func somaDoDia(inicio, fim time.Time) (pedidos int64, receita float64) {
	database.DB.Model(&model.Pedido{}).
		Where("created_at >= ? AND created_at < ?", inicio, fim).
		Where("status <> ?", constants.STATUS_CANCELADO).
		Count(&pedidos)

	var total *float64
	database.DB.Model(&model.Pedido{}).
		Select("SUM(total)").
		Where("created_at >= ? AND created_at < ?", inicio, fim).
		Where("status <> ?", constants.STATUS_CANCELADO).
		Scan(&total)
	if total != nil {
		receita = *total
	}
	return pedidos, receita
}

func calculateGrowth(today, yesterday float64) float64 {
	if yesterday == 0 {
		if today == 0 {
			return 0
		}
		return 100
	}
	return ((today - yesterday) / yesterday) * 100
}

// GetEstatisticas resume o dia para o painel admin: pedidos e receita de hoje,
// comparados com ontem, mais a contagem por status.
func GetEstatisticas(c *fiber.Ctx) error {
	agora := time.Now()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	ontem := hoje.AddDate(0, 0, -1)

	pedidosHoje, receitaHoje := somaDoDia(hoje, hoje.AddDate(0, 0, 1))
	pedidosOntem, receitaOntem := somaDoDia(ontem, hoje)

	porStatus := map[string]int64{}
	for _, status := range []string{
		constants.STATUS_PENDENTE,
		constants.STATUS_EM_PREPARO,
		constants.STATUS_SAIU_ENTREGA,
		constants.STATUS_ENTREGUE,
		constants.STATUS_CANCELADO,
	} {
		var count int64
		database.DB.Model(&model.Pedido{}).
			Where("created_at >= ? AND status = ?", hoje, status).
			Count(&count)
		porStatus[status] = count
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"pedidosHoje":        pedidosHoje,
		"receitaHoje":        receitaHoje,
		"pedidosOntem":       pedidosOntem,
		"receitaOntem":       receitaOntem,
		"crescimentoPedidos": calculateGrowth(float64(pedidosHoje), float64(pedidosOntem)),
		"crescimentoReceita": calculateGrowth(receitaHoje, receitaOntem),
		"porStatus":          porStatus,
	})
}
