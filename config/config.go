package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// Config lê uma variável de ambiente, carregando o .env na primeira chamada.
func Config(key string) string {
	once.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
		}
	})
	return os.Getenv(key)
}

// ConfigOr retorna o valor da variável ou um padrão quando vazia.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
