package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/music-store-api/internal/application/catalog"
	"github.com/tu-usuario/music-store-api/internal/application/dto"
)

// GenreHandler maneja las peticiones HTTP del catálogo de géneros.
type GenreHandler struct {
	uc *catalog.GenreUseCase
}

// NewGenreHandler construye el handler.
func NewGenreHandler(uc *catalog.GenreUseCase) *GenreHandler {
	return &GenreHandler{uc: uc}
}

// List lista todos los géneros musicales.
// GET /api/genres
func (h *GenreHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtiene un género por ID.
// GET /api/genres/:id
func (h *GenreHandler) GetByID(c *fiber.Ctx) error {
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
