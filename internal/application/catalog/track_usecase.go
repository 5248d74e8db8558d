package catalog

import (
	"context"
	"fmt"

	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// TrackUseCase lecturas del catálogo de tracks.
type TrackUseCase struct {
	trackRepo repository.TrackRepository
}

// NewTrackUseCase construye el caso de uso.
func NewTrackUseCase(trackRepo repository.TrackRepository) *TrackUseCase {
	return &TrackUseCase{trackRepo: trackRepo}
}

// List pagina tracks con filtros opcionales por álbum/género y búsqueda por
// nombre, enriquecidos con nombres de álbum, artista y género.
func (uc *TrackUseCase) List(ctx context.Context, page, pageSize int, albumID, genreID *int, search string) (*dto.TrackListResponse, error) {
	page, pageSize, offset := dto.NormalizePage(page, pageSize)
	tracks, total, err := uc.trackRepo.List(pageSize, offset, albumID, genreID, NormalizeSearchTerm(search))
	if err != nil {
		return nil, err
	}
	resp := &dto.TrackListResponse{
		Tracks:   make([]dto.TrackResponse, 0, len(tracks)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, t := range tracks {
		resp.Tracks = append(resp.Tracks, toTrackResponse(t))
	}
	return resp, nil
}

// Get obtiene un track por ID con sus relaciones resueltas.
func (uc *TrackUseCase) Get(ctx context.Context, id int) (*dto.TrackResponse, error) {
	track, err := uc.trackRepo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if track == nil {
		return nil, fmt.Errorf("track %d: %w", id, domain.ErrTrackNotFound)
	}
	resp := toTrackResponse(track)
	return &resp, nil
}

func toTrackResponse(t *entity.TrackDetail) dto.TrackResponse {
	return dto.TrackResponse{
		TrackID:      t.TrackID,
		Name:         t.Name,
		AlbumID:      t.AlbumID,
		GenreID:      t.GenreID,
		MediaTypeID:  t.MediaTypeID,
		Composer:     t.Composer,
		Milliseconds: t.Milliseconds,
		UnitPrice:    t.UnitPrice,
		AlbumTitle:   t.AlbumTitle,
		ArtistName:   t.ArtistName,
		GenreName:    t.GenreName,
	}
}
