package router

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func appDeTeste() *fiber.App {
	app := fiber.New()
	SetupRoutes(app)
	return app
}

func TestRotasProtegidasExigemSessao(t *testing.T) {
	app := appDeTeste()

	casos := []struct {
		metodo string
		rota   string
	}{
		{"GET", "/api/admin/clientes"},
		{"GET", "/api/estatisticas"},
		{"PATCH", "/api/pedidos/1"},
		{"DELETE", "/api/produtos/1"},
		{"PATCH", "/api/config"},
		{"GET", "/api/entregador/pedidos"},
	}

	for _, caso := range casos {
		req := httptest.NewRequest(caso.metodo, caso.rota, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s %s: %v", caso.metodo, caso.rota, err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("%s %s sem sessão = %d, esperado 401", caso.metodo, caso.rota, resp.StatusCode)
		}
	}
}

func TestBuscarClienteExigeTelefone(t *testing.T) {
	app := appDeTeste()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/clientes", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("GET /api/clientes sem telefone = %d, esperado 400", resp.StatusCode)
	}
}

func pedidoJSON(total string) *strings.Reader {
	return strings.NewReader(`{
		"cliente": {"nome": "Maria", "telefone": "65999990000"},
		"itens": [{"produtoId": 1, "quantidade": 2, "precoUnit": 18.0}],
		"formaPagamento": "PIX",
		"total": ` + total + `,
		"taxaEntrega": 5.0
	}`)
}

func TestCheckoutComLojaFechada(t *testing.T) {
	app := appDeTeste()

	req := httptest.NewRequest("POST", "/api/pedidos", pedidoJSON("41.0"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("checkout fora do horário = %d, esperado 409", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "não está aceitando pedidos") {
		t.Errorf("resposta sem a mensagem de loja fechada: %s", body)
	}
}

func TestCheckoutComTotalInconsistente(t *testing.T) {
	app := appDeTeste()

	// itens somam 36.00 + 5.00 de entrega, o total enviado mente
	req := httptest.NewRequest("POST", "/api/pedidos", pedidoJSON("50.0"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("checkout com total inconsistente = %d, esperado 400", resp.StatusCode)
	}
}
