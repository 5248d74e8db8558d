package repository

import "github.com/tu-usuario/music-store-api/internal/domain/entity"

// TrackRepository define el puerto de lectura para Track.
// GetByID devuelve (nil, nil) cuando el track no existe: la ausencia es un
// resultado normal sobre el que el caller decide, no un error.
type TrackRepository interface {
	GetByID(id int) (*entity.Track, error)
	// GetDetailByID resuelve además álbum/artista/género con JOIN explícito.
	GetDetailByID(id int) (*entity.TrackDetail, error)
	// List pagina tracks con filtros opcionales y búsqueda por nombre.
	List(limit, offset int, albumID, genreID *int, search string) ([]*entity.TrackDetail, int, error)
	// GetSummariesByIDs resuelve en una sola consulta (JOIN por lote) los
	// nombres de track/álbum/artista para el armado del detalle de factura.
	// IDs inexistentes simplemente no aparecen en el mapa.
	GetSummariesByIDs(ids []int) (map[int]*entity.TrackSummary, error)
}
