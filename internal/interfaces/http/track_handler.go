package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/music-store-api/internal/application/catalog"
	"github.com/tu-usuario/music-store-api/internal/application/dto"
)

// TrackHandler maneja las peticiones HTTP del catálogo de tracks.
type TrackHandler struct {
	uc *catalog.TrackUseCase
}

// NewTrackHandler construye el handler.
func NewTrackHandler(uc *catalog.TrackUseCase) *TrackHandler {
	return &TrackHandler{uc: uc}
}

// List lista tracks con paginación, filtros y búsqueda.
// GET /api/tracks?page=&page_size=&album_id=&genre_id=&search=
func (h *TrackHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", dto.DefaultPageSize),
		queryIntPtr(c, "album_id"),
		queryIntPtr(c, "genre_id"),
		c.Query("search"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtiene un track por ID con sus relaciones.
// GET /api/tracks/:id
func (h *TrackHandler) GetByID(c *fiber.Ctx) error {
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
