package repository

import "github.com/tu-usuario/music-store-api/internal/domain/entity"

// GenreRepository define el puerto de lectura para Genre.
// La tabla es pequeña: ListAll devuelve el conjunto completo sin paginar.
type GenreRepository interface {
	GetByID(id int) (*entity.Genre, error)
	ListAll() ([]*entity.Genre, error)
}
