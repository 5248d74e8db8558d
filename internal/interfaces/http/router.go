package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/music-store-api/internal/application/billing"
	"github.com/tu-usuario/music-store-api/internal/application/catalog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ArtistUC      *catalog.ArtistUseCase
	AlbumUC       *catalog.AlbumUseCase
	GenreUC       *catalog.GenreUseCase
	TrackUC       *catalog.TrackUseCase
	CustomerUC    *billing.CustomerUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (solo lectura)
	artists := api.Group("/artists")
	artistHandler := NewArtistHandler(deps.ArtistUC)
	artists.Get("/", artistHandler.List)
	artists.Get("/:id", artistHandler.GetByID)

	albums := api.Group("/albums")
	albumHandler := NewAlbumHandler(deps.AlbumUC)
	albums.Get("/", albumHandler.List)
	albums.Get("/:id", albumHandler.GetByID)

	genres := api.Group("/genres")
	genreHandler := NewGenreHandler(deps.GenreUC)
	genres.Get("/", genreHandler.List)
	genres.Get("/:id", genreHandler.GetByID)

	tracks := api.Group("/tracks")
	trackHandler := NewTrackHandler(deps.TrackUC)
	tracks.Get("/", trackHandler.List)
	tracks.Get("/:id", trackHandler.GetByID)

	// Clientes
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Facturación
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	invoices.Get("/", invoiceHandler.List)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/customer/:id/history", invoiceHandler.CustomerHistory)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id", invoiceHandler.GetByID)
}
