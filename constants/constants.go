package constants

// Status de pedido
const (
	STATUS_PENDENTE     = "PENDENTE"
	STATUS_EM_PREPARO   = "EM_PREPARO"
	STATUS_SAIU_ENTREGA = "SAIU_ENTREGA"
	STATUS_ENTREGUE     = "ENTREGUE"
	STATUS_CANCELADO    = "CANCELADO"
)

// Categorias de produto
const (
	CATEGORIA_MISTURA     = "MISTURA"
	CATEGORIA_COMPLEMENTO = "COMPLEMENTO"
	CATEGORIA_BEBIDA      = "BEBIDA"
)

// Formas de pagamento
const (
	PAGAMENTO_PIX            = "PIX"
	PAGAMENTO_DINHEIRO       = "DINHEIRO"
	PAGAMENTO_CARTAO_CREDITO = "CARTAO_CREDITO"
	PAGAMENTO_CARTAO_DEBITO  = "CARTAO_DEBITO"
)

// Cookies de sessão
const (
	COOKIE_ADMIN      = "admin_session"
	COOKIE_ENTREGADOR = "entregador_session"
)

// Mensagens
const (
	ERROR_INPUT          = "Dados inválidos"
	ERROR_INTERNAL_ERROR = "Erro interno do servidor"
	MISSING_LOGIN_INPUT  = "Informe a senha"
	INVALID_PASSWORD     = "Senha incorreta"
	NOT_AUTHENTICATED    = "Sessão expirada ou inexistente"
	NOT_FOUND            = "Registro não encontrado"
	TAMANHO_EM_USO       = "Tamanho em uso por pedidos existentes"
	TRANSICAO_INVALIDA   = "Transição de status não permitida"
	LOJA_FECHADA         = "A loja não está aceitando pedidos no momento"
)

func StatusLabel(status string) string {
	labels := map[string]string{
		STATUS_PENDENTE:     "Pendente",
		STATUS_EM_PREPARO:   "Em Preparo",
		STATUS_SAIU_ENTREGA: "Saiu p/ Entrega",
		STATUS_ENTREGUE:     "Entregue",
		STATUS_CANCELADO:    "Cancelado",
	}
	if l, ok := labels[status]; ok {
		return l
	}
	return status
}

func FormaPagamentoLabel(forma string) string {
	labels := map[string]string{
		PAGAMENTO_PIX:            "PIX",
		PAGAMENTO_DINHEIRO:       "Dinheiro",
		PAGAMENTO_CARTAO_CREDITO: "Cartão de Crédito",
		PAGAMENTO_CARTAO_DEBITO:  "Cartão de Débito",
	}
	if l, ok := labels[forma]; ok {
		return l
	}
	return forma
}
