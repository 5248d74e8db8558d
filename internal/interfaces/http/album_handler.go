package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/music-store-api/internal/application/catalog"
	"github.com/tu-usuario/music-store-api/internal/application/dto"
)

// AlbumHandler maneja las peticiones HTTP del catálogo de álbumes.
type AlbumHandler struct {
	uc *catalog.AlbumUseCase
}

// NewAlbumHandler construye el handler.
func NewAlbumHandler(uc *catalog.AlbumUseCase) *AlbumHandler {
	return &AlbumHandler{uc: uc}
}

// List lista álbumes con paginación, filtro por artista y búsqueda.
// GET /api/albums?page=&page_size=&artist_id=&search=
func (h *AlbumHandler) List(c *fiber.Ctx) error {
	resp, err := h.uc.List(c.Context(),
		c.QueryInt("page", 1),
		c.QueryInt("page_size", dto.DefaultPageSize),
		queryIntPtr(c, "artist_id"),
		c.Query("search"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// GetByID obtiene un álbum por ID con su artista.
// GET /api/albums/:id
func (h *AlbumHandler) GetByID(c *fiber.Ctx) error {
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
