package catalog

import (
	"context"
	"fmt"

	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// GenreUseCase lecturas del catálogo de géneros.
type GenreUseCase struct {
	genreRepo repository.GenreRepository
}

// NewGenreUseCase construye el caso de uso.
func NewGenreUseCase(genreRepo repository.GenreRepository) *GenreUseCase {
	return &GenreUseCase{genreRepo: genreRepo}
}

// List devuelve todos los géneros (tabla pequeña, sin paginar).
func (uc *GenreUseCase) List(ctx context.Context) (*dto.GenreListResponse, error) {
	genres, err := uc.genreRepo.ListAll()
	if err != nil {
		return nil, err
	}
	resp := &dto.GenreListResponse{Genres: make([]dto.GenreResponse, 0, len(genres))}
	for _, g := range genres {
		resp.Genres = append(resp.Genres, dto.GenreResponse{GenreID: g.GenreID, Name: g.Name})
	}
	resp.Total = len(resp.Genres)
	return resp, nil
}

// Get obtiene un género por ID.
func (uc *GenreUseCase) Get(ctx context.Context, id int) (*dto.GenreResponse, error) {
	genre, err := uc.genreRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, fmt.Errorf("género %d: %w", id, domain.ErrNotFound)
	}
	return &dto.GenreResponse{GenreID: genre.GenreID, Name: genre.Name}, nil
}
