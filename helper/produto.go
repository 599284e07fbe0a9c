package helper

import (
	"fmt"

	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"

	"gorm.io/gorm"
)

func GenerateUniqueProdutoSlug(tx *gorm.DB, nome string) string {
	base := utils.Slugify(nome)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Produto{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}
