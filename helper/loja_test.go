package helper

import (
	"testing"
	"time"
)

func TestDentroDoHorario(t *testing.T) {
	hora := func(h, m int) time.Time {
		return time.Date(2025, 3, 10, h, m, 0, 0, time.Local)
	}

	tests := []struct {
		name       string
		abertura   string
		fechamento string
		agora      time.Time
		want       bool
	}{
		{"meio do expediente", "11:00", "14:00", hora(12, 30), true},
		{"exatamente na abertura", "11:00", "14:00", hora(11, 0), true},
		{"um minuto antes de abrir", "11:00", "14:00", hora(10, 59), false},
		{"exatamente no fechamento", "11:00", "14:00", hora(14, 0), false},
		{"depois de fechar", "11:00", "14:00", hora(18, 0), false},
		{"madrugada, expediente noturno", "22:00", "02:00", hora(23, 30), true},
		{"depois da virada", "22:00", "02:00", hora(1, 0), true},
		{"fora do expediente noturno", "22:00", "02:00", hora(12, 0), false},
		{"horário mal formado", "11h", "14:00", hora(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DentroDoHorario(tt.abertura, tt.fechamento, tt.agora); got != tt.want {
				t.Errorf("DentroDoHorario(%s, %s, %s) = %v, esperado %v",
					tt.abertura, tt.fechamento, tt.agora.Format("15:04"), got, tt.want)
			}
		})
	}
}
