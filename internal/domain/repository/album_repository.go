package repository

import "github.com/tu-usuario/music-store-api/internal/domain/entity"

// AlbumRepository define el puerto de lectura para Album.
type AlbumRepository interface {
	GetByID(id int) (*entity.Album, error)
	// List pagina álbumes; artistID filtra por artista (nil = todos) y
	// search por substring del título.
	List(limit, offset int, artistID *int, search string) ([]*entity.Album, int, error)
}
