package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/music-store-api/internal/application/billing"
	"github.com/tu-usuario/music-store-api/internal/application/catalog"
	infrapdf "github.com/tu-usuario/music-store-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/music-store-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/music-store-api/internal/interfaces/http"
	"github.com/tu-usuario/music-store-api/pkg/config"
	"github.com/tu-usuario/music-store-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	artistRepo := postgres.NewArtistRepository(pool)
	albumRepo := postgres.NewAlbumRepository(pool)
	genreRepo := postgres.NewGenreRepository(pool)
	trackRepo := postgres.NewTrackRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	artistUC := catalog.NewArtistUseCase(artistRepo)
	albumUC := catalog.NewAlbumUseCase(albumRepo, artistRepo)
	genreUC := catalog.NewGenreUseCase(genreRepo)
	trackUC := catalog.NewTrackUseCase(trackRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, employeeRepo)

	assembler := billing.NewInvoiceDetailAssembler(invoiceRepo, customerRepo, employeeRepo, trackRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		txRunner, customerRepo, employeeRepo, trackRepo, invoiceRepo, assembler,
	)

	// PDF: representación imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	invoicePDFUC := billing.NewPDFUseCase(assembler, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Music Store API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ArtistUC:      artistUC,
		AlbumUC:       albumUC,
		GenreUC:       genreUC,
		TrackUC:       trackUC,
		CustomerUC:    customerUC,
		CreateInvoice: createInvoiceUC,
		InvoicePDF:    invoicePDFUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
