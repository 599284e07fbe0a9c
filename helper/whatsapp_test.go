package helper

import (
	"strings"
	"testing"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
)

func pedidoDeTeste(formaPagamento string, trocoPara *float64) model.Pedido {
	obs := "sem cebola"
	tamanho := model.Tamanho{Nome: "M"}
	return model.Pedido{
		DTO:            model.DTO{ID: 42},
		Status:         constants.STATUS_PENDENTE,
		FormaPagamento: formaPagamento,
		TrocoPara:      trocoPara,
		Total:          41.00,
		Cliente: model.Cliente{
			Nome:     "Maria",
			Telefone: "65999990000",
			Endereco: "Rua das Flores, Nº 123",
			Bairro:   "Centro",
		},
		Itens: []model.ItemPedido{
			{
				Quantidade: 2,
				Produto:    model.Produto{Nome: "Marmita de Frango"},
				Tamanho:    &tamanho,
				Observacao: &obs,
			},
			{
				Quantidade: 1,
				Produto:    model.Produto{Nome: "Coca-Cola Lata"},
			},
		},
	}
}

func TestGerarMensagemPedidoDinheiroComTroco(t *testing.T) {
	troco := 50.0
	msg := GerarMensagemPedido(pedidoDeTeste(constants.PAGAMENTO_DINHEIRO, &troco))

	quer := []string{
		"PEDIDO #42",
		"Maria",
		"Telefone:* (65) 99999-0000",
		"Rua das Flores, Nº 123 - Centro",
		"2x M Marmita de Frango (sem cebola)",
		"1x Coca-Cola Lata",
		"R$ 41.00",
		"Dinheiro",
		"Troco para:* R$ 50.00",
	}
	for _, trecho := range quer {
		if !strings.Contains(msg, trecho) {
			t.Errorf("mensagem não contém %q:\n%s", trecho, msg)
		}
	}
}

func TestGerarMensagemPedidoPix(t *testing.T) {
	msg := GerarMensagemPedido(pedidoDeTeste(constants.PAGAMENTO_PIX, nil))

	if !strings.Contains(msg, "PIX") {
		t.Errorf("mensagem não contém a forma de pagamento:\n%s", msg)
	}
	if strings.Contains(msg, "Troco para") {
		t.Errorf("pedido PIX não deveria mencionar troco:\n%s", msg)
	}
}

func TestGerarLinkWhatsApp(t *testing.T) {
	link := GerarLinkWhatsApp("(65) 99999-0000", "Olá, tudo bem?")

	if !strings.HasPrefix(link, "https://wa.me/5565999990000?text=") {
		t.Errorf("link com número errado: %s", link)
	}
	if strings.Contains(link, " ") {
		t.Errorf("mensagem não foi codificada: %s", link)
	}
	if !strings.Contains(link, "Ol%C3%A1") {
		t.Errorf("acentos não codificados: %s", link)
	}
}

func TestGerarLinkRotaMaps(t *testing.T) {
	pedidos := []model.Pedido{
		pedidoDeTeste(constants.PAGAMENTO_PIX, nil),
		pedidoDeTeste(constants.PAGAMENTO_PIX, nil),
	}
	pedidos[1].Cliente.Endereco = "Av. Brasil, Nº 45"
	pedidos[1].Cliente.Bairro = ""

	link := GerarLinkRotaMaps(pedidos)

	if !strings.HasPrefix(link, "https://www.google.com/maps/dir/?api=1&destination=") {
		t.Errorf("link fora do formato esperado: %s", link)
	}
	if !strings.Contains(link, "%7C") {
		t.Errorf("paradas não separadas por pipe codificado: %s", link)
	}
	if !strings.Contains(link, "travelmode=motorcycle") {
		t.Errorf("modo de viagem ausente: %s", link)
	}
	if !strings.Contains(link, "Av.+Brasil") {
		t.Errorf("endereço da segunda parada ausente: %s", link)
	}
}
