package helper

import (
	"strings"
	"testing"
	"time"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
)

func TestTransicaoValida(t *testing.T) {
	statuses := []string{
		constants.STATUS_PENDENTE,
		constants.STATUS_EM_PREPARO,
		constants.STATUS_SAIU_ENTREGA,
		constants.STATUS_ENTREGUE,
		constants.STATUS_CANCELADO,
	}

	permitidas := map[string]map[string]bool{
		constants.STATUS_PENDENTE: {
			constants.STATUS_EM_PREPARO: true,
			constants.STATUS_CANCELADO:  true,
		},
		constants.STATUS_EM_PREPARO: {
			constants.STATUS_SAIU_ENTREGA: true,
			constants.STATUS_CANCELADO:    true,
		},
		constants.STATUS_SAIU_ENTREGA: {
			constants.STATUS_ENTREGUE:  true,
			constants.STATUS_CANCELADO: true,
		},
	}

	for _, de := range statuses {
		for _, para := range statuses {
			got := TransicaoValida(de, para)
			want := permitidas[de][para]
			if got != want {
				t.Errorf("TransicaoValida(%s, %s) = %v, esperado %v", de, para, got, want)
			}
		}
	}
}

func TestAplicarTransicao(t *testing.T) {
	agora := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)

	pedido := model.Pedido{Status: constants.STATUS_PENDENTE}
	if err := AplicarTransicao(&pedido, constants.STATUS_EM_PREPARO, agora); err != nil {
		t.Fatalf("transição PENDENTE -> EM_PREPARO falhou: %v", err)
	}
	if pedido.Status != constants.STATUS_EM_PREPARO {
		t.Errorf("status = %s, esperado EM_PREPARO", pedido.Status)
	}
	if pedido.PreparadoAt == nil || !pedido.PreparadoAt.Equal(agora) {
		t.Error("PreparadoAt não foi carimbado")
	}

	if err := AplicarTransicao(&pedido, constants.STATUS_SAIU_ENTREGA, agora); err != nil {
		t.Fatalf("transição EM_PREPARO -> SAIU_ENTREGA falhou: %v", err)
	}
	if pedido.SaiuEntregaAt == nil {
		t.Error("SaiuEntregaAt não foi carimbado")
	}

	if err := AplicarTransicao(&pedido, constants.STATUS_ENTREGUE, agora); err != nil {
		t.Fatalf("transição SAIU_ENTREGA -> ENTREGUE falhou: %v", err)
	}
	if pedido.EntregueAt == nil {
		t.Error("EntregueAt não foi carimbado")
	}

	if err := AplicarTransicao(&pedido, constants.STATUS_CANCELADO, agora); err == nil {
		t.Error("pedido entregue não pode ser cancelado")
	}
	if pedido.Status != constants.STATUS_ENTREGUE {
		t.Errorf("status mudou após transição inválida: %s", pedido.Status)
	}
	if pedido.CanceladoAt != nil {
		t.Error("CanceladoAt carimbado em transição inválida")
	}
}

func TestAplicarTransicaoCancelamento(t *testing.T) {
	agora := time.Now()
	pedido := model.Pedido{Status: constants.STATUS_EM_PREPARO}

	if err := AplicarTransicao(&pedido, constants.STATUS_CANCELADO, agora); err != nil {
		t.Fatalf("cancelamento em EM_PREPARO falhou: %v", err)
	}
	if pedido.CanceladoAt == nil {
		t.Error("CanceladoAt não foi carimbado")
	}
}

func TestTotalItens(t *testing.T) {
	itens := []model.CriarItemInput{
		{ProdutoID: 1, Quantidade: 2, PrecoUnit: 18.00},
		{ProdutoID: 2, Quantidade: 1, PrecoUnit: 5.00},
	}
	if total := TotalItens(itens); total != 41.00 {
		t.Errorf("TotalItens = %.2f, esperado 41.00", total)
	}

	if total := TotalItens(nil); total != 0 {
		t.Errorf("TotalItens(nil) = %.2f, esperado 0", total)
	}
}

func TestGerarCodigoPedido(t *testing.T) {
	visto := map[string]bool{}
	for i := 0; i < 100; i++ {
		codigo := GerarCodigoPedido()
		if !strings.HasPrefix(codigo, "PED-") {
			t.Fatalf("código sem prefixo PED-: %s", codigo)
		}
		if len(codigo) != 10 {
			t.Fatalf("código com tamanho %d, esperado 10: %s", len(codigo), codigo)
		}
		sufixo := strings.TrimPrefix(codigo, "PED-")
		if sufixo != strings.ToUpper(sufixo) {
			t.Fatalf("sufixo não está em maiúsculas: %s", codigo)
		}
		visto[codigo] = true
	}
	if len(visto) < 90 {
		t.Errorf("códigos repetidos demais: %d únicos em 100", len(visto))
	}
}
