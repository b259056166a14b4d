package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/reparto-app/reparto-api/internal/application/access"
	"github.com/reparto-app/reparto-api/internal/application/pallet"
	"github.com/reparto-app/reparto-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AccessUC    *access.UseCase
	PalletUC    *pallet.UseCase
	ArticleUC   *usecase.ArticleUseCase
	CenterUC    *usecase.CenterUseCase
	RedirectURL string
}

// Router registra las rutas de la API. Las rutas conservan los nombres que usa
// el frontend; la verificación del código acompaña cada petición mutadora y se
// comprueba dentro del handler (no hay sesión ni token).
func Router(app *fiber.App, deps RouterDeps) {
	redirect := NewRedirector(deps.RedirectURL)

	palletHandler := NewPalletHandler(deps.PalletUC, deps.AccessUC, redirect)
	articleHandler := NewArticleHandler(deps.ArticleUC, deps.AccessUC, redirect)
	centerHandler := NewCenterHandler(deps.CenterUC, deps.AccessUC, redirect)
	accessHandler := NewAccessHandler(deps.AccessUC, redirect)

	// Palets (nivel user)
	app.Post("/upload", palletHandler.Upload)
	app.Post("/verificar", palletHandler.Query)
	app.Post("/esborrar-palet", palletHandler.Delete)
	app.Post("/acceptar-palet", palletHandler.AcceptByID)
	app.Post("/recepcionar-palet", palletHandler.AcceptOldest)
	app.Post("/simular-palet", palletHandler.Simulate)

	// Centros
	app.Get("/afegir-centre", centerHandler.List)
	app.Post("/afegir-centre", centerHandler.Create)
	app.Post("/esborrar-centre", centerHandler.Delete)

	// Artículos
	app.Get("/verificar-article", articleHandler.List)
	app.Post("/verificar-article", articleHandler.GetByCode)
	app.Post("/afegir-article", articleHandler.Create)
	app.Post("/esborrar-article", articleHandler.Delete)

	// Códigos de acceso
	app.Post("/codi-expirat", accessHandler.CodeExpired)
	app.Post("/codi-expirat-admin", accessHandler.CodeExpiredAdmin)
	app.Post("/canviar-mot-de-pas", accessHandler.Rotate)
	app.Post("/codi-en-vigor", accessHandler.ActiveCode)

	// Operaciones manuales de administración
	app.Post("/insertar-palets", palletHandler.BulkInsert)
	app.Post("/esborrar-palets", palletHandler.BulkDelete)
	app.Post("/filtrar-palets", palletHandler.Filter)
}
