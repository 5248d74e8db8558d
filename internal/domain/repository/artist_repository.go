package repository

import "github.com/tu-usuario/music-store-api/internal/domain/entity"

// ArtistRepository define el puerto de lectura para Artist.
// GetByID devuelve (nil, nil) cuando el artista no existe.
type ArtistRepository interface {
	GetByID(id int) (*entity.Artist, error)
	// List pagina artistas por nombre; search filtra por substring (vacío = sin filtro).
	// Devuelve la página y el total sin paginar.
	List(limit, offset int, search string) ([]*entity.Artist, int, error)
}
