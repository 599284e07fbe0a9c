package router

import (
	"github.com/samsuns9sued-hue/marmitariachefe/handler"
	"github.com/samsuns9sued-hue/marmitariachefe/middleware"
	"github.com/samsuns9sued-hue/marmitariachefe/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	admin := api.Group("/admin")
	admin.Post("/login", validate.Login(), handler.AdminLogin)
	admin.Post("/logout", handler.AdminLogout)
	admin.Get("/clientes", middleware.AdminProtected(), handler.GetClientes)

	entregador := api.Group("/entregador", logger.New())
	entregador.Post("/login", validate.Login(), handler.EntregadorLogin)
	entregador.Post("/logout", handler.EntregadorLogout)
	entregador.Get("/pedidos", middleware.EntregadorProtected(), handler.GetPedidosEntrega)
	entregador.Post("/rota", middleware.EntregadorProtected(), validate.IniciarRota(), handler.IniciarRota)

	produto := api.Group("/produtos", logger.New())
	produto.Get("/", handler.GetProdutos)
	produto.Post("/", middleware.AdminProtected(), validate.CreateProduto(), handler.CreateProduto)
	produto.Put("/:produtoId", middleware.AdminProtected(), validate.EditProduto("produtoId"), handler.EditProduto)
	produto.Patch("/:produtoId/disponivel", middleware.AdminProtected(), validate.GetById("produtoId"), handler.ToggleDisponibilidade)
	produto.Delete("/:produtoId", middleware.AdminProtected(), validate.GetById("produtoId"), handler.DeleteProduto)

	tamanho := api.Group("/tamanhos", logger.New())
	tamanho.Get("/", handler.GetTamanhos)
	tamanho.Post("/", middleware.AdminProtected(), validate.CreateTamanho(), handler.CreateTamanho)
	tamanho.Put("/:tamanhoId", middleware.AdminProtected(), validate.EditTamanho("tamanhoId"), handler.EditTamanho)
	tamanho.Delete("/:tamanhoId", middleware.AdminProtected(), validate.GetById("tamanhoId"), handler.DeleteTamanho)

	cliente := api.Group("/clientes", logger.New())
	cliente.Get("/", handler.BuscarClientePorTelefone)
	cliente.Post("/", validate.UpsertCliente(), handler.UpsertCliente)

	pedido := api.Group("/pedidos", logger.New())
	pedido.Get("/", handler.GetPedidos)
	pedido.Post("/", validate.CriarPedido(), handler.CriarPedido)
	pedido.Get("/:pedidoId", validate.GetById("pedidoId"), handler.GetPedidoById)
	pedido.Patch("/:pedidoId", middleware.SessaoProtected(), validate.EditPedido("pedidoId"), handler.EditPedido)
	pedido.Delete("/:pedidoId", middleware.AdminProtected(), validate.GetById("pedidoId"), handler.DeletePedido)
	pedido.Get("/:pedidoId/whatsapp", middleware.AdminProtected(), validate.GetById("pedidoId"), handler.GetPedidoWhatsApp)
	pedido.Get("/:pedidoId/pix", middleware.AdminProtected(), validate.GetById("pedidoId"), handler.GetPedidoPix)

	endereco := api.Group("/endereco", logger.New())
	endereco.Get("/cep/:cep", handler.BuscarEnderecoPorCep)
	endereco.Get("/reverso", handler.EnderecoReverso)

	api.Get("/frete", handler.GetFrete)
	api.Get("/loja/status", handler.GetStatusLoja)

	config := api.Group("/config", logger.New())
	config.Get("/", handler.GetConfiguracao)
	config.Patch("/", middleware.AdminProtected(), validate.EditConfiguracao(), handler.EditConfiguracao)

	api.Get("/estatisticas", middleware.AdminProtected(), handler.GetEstatisticas)
	api.Post("/cloudinary-signature", middleware.AdminProtected(), handler.GenerateSignature)
}
