package helper

import (
	"context"
	"log"
	"strings"

	"github.com/samsuns9sued-hue/marmitariachefe/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		config.Config("CLOUDINARY_CLOUD_NAME"),
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// PublicIDFromURL recupera o public_id de uma URL de entrega do Cloudinary
// ("…/upload/v123/pasta/arquivo.jpg" → "pasta/arquivo").
func PublicIDFromURL(imageURL string) string {
	_, depois, ok := strings.Cut(imageURL, "/upload/")
	if !ok {
		return ""
	}
	// descarta o segmento de versão (v123…)
	if i := strings.Index(depois, "/"); i > 0 && strings.HasPrefix(depois, "v") {
		depois = depois[i+1:]
	}
	if i := strings.LastIndex(depois, "."); i > 0 {
		depois = depois[:i]
	}
	return depois
}

// DeleteImagemProduto remove a foto do produto do Cloudinary. Falha aqui não
// bloqueia a exclusão do produto; só registra o erro.
func DeleteImagemProduto(imageURL string) {
	publicID := PublicIDFromURL(imageURL)
	if publicID == "" || config.Config("CLOUDINARY_CLOUD_NAME") == "" {
		return
	}

	cld := InitCloudinary()
	_, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		log.Printf("Erro ao remover imagem %s do Cloudinary: %v", publicID, err)
	}
}
