package helper

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var lojaScheduler gocron.Scheduler

// lojaAberta guarda o último resultado do recálculo periódico; o endpoint
// público lê daqui em vez de reavaliar o horário a cada requisição.
var lojaAberta atomic.Bool

// DentroDoHorario avalia se o relógio está entre abertura e fechamento "HH:MM".
func DentroDoHorario(abertura, fechamento string, agora time.Time) bool {
	abre, err1 := time.Parse("15:04", abertura)
	fecha, err2 := time.Parse("15:04", fechamento)
	if err1 != nil || err2 != nil {
		return false
	}

	minutos := agora.Hour()*60 + agora.Minute()
	minAbre := abre.Hour()*60 + abre.Minute()
	minFecha := fecha.Hour()*60 + fecha.Minute()

	if minAbre <= minFecha {
		return minutos >= minAbre && minutos < minFecha
	}
	// horário atravessando a meia-noite
	return minutos >= minAbre || minutos < minFecha
}

func AtualizarStatusLoja() {
	cfg, err := GetConfiguracao()
	if err != nil {
		log.Printf("Erro ao recarregar configuração da loja: %v", err)
		return
	}

	aberta := cfg.AceitaPedidos && DentroDoHorario(cfg.HorarioAbertura, cfg.HorarioFechamento, time.Now())
	lojaAberta.Store(aberta)
}

func LojaAberta() bool {
	return lojaAberta.Load()
}

func StartLojaScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	lojaScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(AtualizarStatusLoja),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	AtualizarStatusLoja()
	log.Println("Loja status scheduler started (1m)")
}

func StopLojaScheduler() {
	if lojaScheduler != nil {
		if err := lojaScheduler.Shutdown(); err != nil {
			log.Printf("Erro ao parar scheduler da loja: %v", err)
		}
	}
}
