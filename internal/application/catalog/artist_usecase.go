package catalog

import (
	"context"
	"fmt"

	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// ArtistUseCase lecturas del catálogo de artistas.
type ArtistUseCase struct {
	artistRepo repository.ArtistRepository
}

// NewArtistUseCase construye el caso de uso.
func NewArtistUseCase(artistRepo repository.ArtistRepository) *ArtistUseCase {
	return &ArtistUseCase{artistRepo: artistRepo}
}

// List pagina artistas con búsqueda opcional por nombre.
func (uc *ArtistUseCase) List(ctx context.Context, page, pageSize int, search string) (*dto.ArtistListResponse, error) {
	page, pageSize, offset := dto.NormalizePage(page, pageSize)
	artists, total, err := uc.artistRepo.List(pageSize, offset, NormalizeSearchTerm(search))
	if err != nil {
		return nil, err
	}
	resp := &dto.ArtistListResponse{
		Artists:  make([]dto.ArtistResponse, 0, len(artists)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, a := range artists {
		resp.Artists = append(resp.Artists, toArtistResponse(a))
	}
	return resp, nil
}

// Get obtiene un artista por ID.
func (uc *ArtistUseCase) Get(ctx context.Context, id int) (*dto.ArtistResponse, error) {
	artist, err := uc.artistRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		return nil, fmt.Errorf("artista %d: %w", id, domain.ErrNotFound)
	}
	resp := toArtistResponse(artist)
	return &resp, nil
}

func toArtistResponse(a *entity.Artist) dto.ArtistResponse {
	return dto.ArtistResponse{ArtistID: a.ArtistID, Name: a.Name}
}
