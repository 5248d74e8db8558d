package catalog

import (
	"context"
	"fmt"

	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// AlbumUseCase lecturas del catálogo de álbumes.
type AlbumUseCase struct {
	albumRepo  repository.AlbumRepository
	artistRepo repository.ArtistRepository
}

// NewAlbumUseCase construye el caso de uso.
func NewAlbumUseCase(albumRepo repository.AlbumRepository, artistRepo repository.ArtistRepository) *AlbumUseCase {
	return &AlbumUseCase{albumRepo: albumRepo, artistRepo: artistRepo}
}

// List pagina álbumes con filtro opcional por artista y búsqueda por título.
func (uc *AlbumUseCase) List(ctx context.Context, page, pageSize int, artistID *int, search string) (*dto.AlbumListResponse, error) {
	page, pageSize, offset := dto.NormalizePage(page, pageSize)
	albums, total, err := uc.albumRepo.List(pageSize, offset, artistID, NormalizeSearchTerm(search))
	if err != nil {
		return nil, err
	}
	resp := &dto.AlbumListResponse{
		Albums:   make([]dto.AlbumResponse, 0, len(albums)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, a := range albums {
		resp.Albums = append(resp.Albums, toAlbumResponse(a))
	}
	return resp, nil
}

// Get obtiene un álbum por ID con su artista resuelto (lookup explícito, no
// navegación perezosa).
func (uc *AlbumUseCase) Get(ctx context.Context, id int) (*dto.AlbumDetailResponse, error) {
	album, err := uc.albumRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return nil, fmt.Errorf("álbum %d: %w", id, domain.ErrNotFound)
	}
	detail := &dto.AlbumDetailResponse{AlbumResponse: toAlbumResponse(album)}

	artist, err := uc.artistRepo.GetByID(album.ArtistID)
	if err != nil {
		return nil, err
	}
	if artist != nil {
		a := toArtistResponse(artist)
		detail.Artist = &a
	}
	return detail, nil
}

func toAlbumResponse(a *entity.Album) dto.AlbumResponse {
	return dto.AlbumResponse{AlbumID: a.AlbumID, Title: a.Title, ArtistID: a.ArtistID}
}
