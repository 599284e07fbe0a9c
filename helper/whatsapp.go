package helper

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samsuns9sued-hue/marmitariachefe/constants"
	"github.com/samsuns9sued-hue/marmitariachefe/model"
	"github.com/samsuns9sued-hue/marmitariachefe/utils"
)

// GerarMensagemPedido monta o resumo enviado ao cliente pelo WhatsApp.
func GerarMensagemPedido(pedido model.Pedido) string {
	var itens []string
	for _, item := range pedido.Itens {
		texto := fmt.Sprintf("%dx", item.Quantidade)
		if item.Tamanho != nil {
			texto += " " + item.Tamanho.Nome
		}
		texto += " " + item.Produto.Nome
		if item.Observacao != nil && *item.Observacao != "" {
			texto += fmt.Sprintf(" (%s)", *item.Observacao)
		}
		itens = append(itens, texto)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🍱 *PEDIDO #%d*\n\n", pedido.ID)
	fmt.Fprintf(&b, "👤 *Cliente:* %s\n", pedido.Cliente.Nome)
	fmt.Fprintf(&b, "📱 *Telefone:* %s\n", utils.FormatarTelefone(pedido.Cliente.Telefone))
	fmt.Fprintf(&b, "📍 *Endereço:* %s", pedido.Cliente.Endereco)
	if pedido.Cliente.Bairro != "" {
		fmt.Fprintf(&b, " - %s", pedido.Cliente.Bairro)
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "📦 *Itens:*\n%s\n\n", strings.Join(itens, "\n"))
	fmt.Fprintf(&b, "💰 *Total:* R$ %.2f\n", pedido.Total)
	fmt.Fprintf(&b, "💳 *Pagamento:* %s", constants.FormaPagamentoLabel(pedido.FormaPagamento))

	if pedido.FormaPagamento == constants.PAGAMENTO_DINHEIRO && pedido.TrocoPara != nil {
		fmt.Fprintf(&b, "\n💵 *Troco para:* R$ %.2f", *pedido.TrocoPara)
	}
	if pedido.Observacoes != nil && *pedido.Observacoes != "" {
		fmt.Fprintf(&b, "\n\n📝 *Obs:* %s", *pedido.Observacoes)
	}

	return b.String()
}

func GerarMensagemSaiuEntrega(nome string) string {
	return fmt.Sprintf("Olá %s! 🛵\n\nSua marmita acabou de sair para entrega!\n\nBom apetite! 🍱", nome)
}

func GerarMensagemLinkCardapio(nomeLoja, urlLoja string) string {
	return fmt.Sprintf("Olá! 👋\n\n🍱 *%s*\n\nHoje tem comida boa! Faça seu pedido:\n%s\n\nBom apetite! 😋", nomeLoja, urlLoja)
}

// GerarLinkWhatsApp monta o deep link wa.me com a mensagem codificada.
func GerarLinkWhatsApp(telefone, mensagem string) string {
	numero := utils.NumeroWhatsApp(telefone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", numero, url.QueryEscape(mensagem))
}

// GerarLinkRotaMaps monta o deep link do Google Maps com as paradas da rota.
func GerarLinkRotaMaps(pedidos []model.Pedido) string {
	var destinos []string
	for _, p := range pedidos {
		endereco := p.Cliente.Endereco
		if p.Cliente.Bairro != "" {
			endereco += ", " + p.Cliente.Bairro
		}
		destinos = append(destinos, url.QueryEscape(endereco))
	}
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%s&travelmode=motorcycle",
		strings.Join(destinos, "%7C"))
}
