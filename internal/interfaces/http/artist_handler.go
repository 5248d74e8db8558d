package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/music-store-api/internal/application/catalog"
	"github.com/tu-usuario/music-store-api/internal/application/dto"
)

// ArtistHandler maneja las peticiones HTTP del catálogo de artistas.
type ArtistHandler struct {
	uc *catalog.ArtistUseCase
}

// NewArtistHandler construye el handler.
func NewArtistHandler(uc *catalog.ArtistUseCase) *ArtistHandler {
	return &ArtistHandler{uc: uc}
}

// List lista artistas con paginación y búsqueda opcional.
// GET /api/artists?page=&page_size=&search=
func (h *ArtistHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", dto.DefaultPageSize),
		c.Query("search"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtiene un artista por ID.
// GET /api/artists/:id
func (h *ArtistHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	resp, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}
