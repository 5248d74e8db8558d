package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

var _ repository.TrackRepository = (*TrackRepo)(nil)

// TrackRepo implementación de TrackRepository (usable con pool o tx).
type TrackRepo struct {
	q Querier
}

// NewTrackRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrackRepository(q Querier) *TrackRepo {
	return &TrackRepo{q: q}
}

// GetByID obtiene un track por ID (sin relaciones). Es la lectura del precio
// autoritativo durante la creación de facturas.
func (r *TrackRepo) GetByID(id int) (*entity.Track, error) {
	query := `
		SELECT track_id, name, album_id, media_type_id, genre_id, composer,
		       milliseconds, bytes, unit_price
		FROM tracks WHERE track_id = $1`
	var t entity.Track
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.TrackID, &t.Name, &t.AlbumID, &t.MediaTypeID, &t.GenreID,
		&t.Composer, &t.Milliseconds, &t.Bytes, &t.UnitPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get track: %w", err)
	}
	return &t, nil
}

// GetDetailByID obtiene un track con nombres de álbum, artista y género
// resueltos en un solo JOIN.
func (r *TrackRepo) GetDetailByID(id int) (*entity.TrackDetail, error) {
	query := `
		SELECT t.track_id, t.name, t.album_id, t.media_type_id, t.genre_id,
		       t.composer, t.milliseconds, t.bytes, t.unit_price,
		       al.title, ar.name, g.name
		FROM tracks t
		LEFT JOIN albums al ON al.album_id = t.album_id
		LEFT JOIN artists ar ON ar.artist_id = al.artist_id
		LEFT JOIN genres g ON g.genre_id = t.genre_id
		WHERE t.track_id = $1`
	var d entity.TrackDetail
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&d.TrackID, &d.Name, &d.AlbumID, &d.MediaTypeID, &d.GenreID,
		&d.Composer, &d.Milliseconds, &d.Bytes, &d.UnitPrice,
		&d.AlbumTitle, &d.ArtistName, &d.GenreName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get track detail: %w", err)
	}
	return &d, nil
}

// List pagina tracks con filtros opcionales por álbum/género y búsqueda por nombre.
func (r *TrackRepo) List(limit, offset int, albumID, genreID *int, search string) ([]*entity.TrackDetail, int, error) {
	countQuery := `
		SELECT COUNT(*) FROM tracks
		WHERE ($1::int IS NULL OR album_id = $1)
		  AND ($2::int IS NULL OR genre_id = $2)
		  AND ($3 = '' OR name ILIKE $4)`
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, albumID, genreID, search, likePattern(search)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tracks: %w", err)
	}

	query := `
		SELECT t.track_id, t.name, t.album_id, t.media_type_id, t.genre_id,
		       t.composer, t.milliseconds, t.bytes, t.unit_price,
		       al.title, ar.name, g.name
		FROM tracks t
		LEFT JOIN albums al ON al.album_id = t.album_id
		LEFT JOIN artists ar ON ar.artist_id = al.artist_id
		LEFT JOIN genres g ON g.genre_id = t.genre_id
		WHERE ($1::int IS NULL OR t.album_id = $1)
		  AND ($2::int IS NULL OR t.genre_id = $2)
		  AND ($3 = '' OR t.name ILIKE $4)
		ORDER BY t.name
		LIMIT $5 OFFSET $6`
	rows, err := r.q.Query(context.Background(), query, albumID, genreID, search, likePattern(search), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list tracks: %w", err)
	}
	defer rows.Close()

	var list []*entity.TrackDetail
	for rows.Next() {
		var d entity.TrackDetail
		if err := rows.Scan(
			&d.TrackID, &d.Name, &d.AlbumID, &d.MediaTypeID, &d.GenreID,
			&d.Composer, &d.Milliseconds, &d.Bytes, &d.UnitPrice,
			&d.AlbumTitle, &d.ArtistName, &d.GenreName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan track: %w", err)
		}
		list = append(list, &d)
	}
	return list, total, rows.Err()
}

// GetSummariesByIDs resuelve nombre de track, título de álbum y nombre de
// artista para todos los IDs en una sola consulta (JOIN por lote en lugar
// de una consulta por línea).
func (r *TrackRepo) GetSummariesByIDs(ids []int) (map[int]*entity.TrackSummary, error) {
	if len(ids) == 0 {
		return map[int]*entity.TrackSummary{}, nil
	}
	query := `
		SELECT t.track_id, t.name, al.title, ar.name
		FROM tracks t
		LEFT JOIN albums al ON al.album_id = t.album_id
		LEFT JOIN artists ar ON ar.artist_id = al.artist_id
		WHERE t.track_id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get track summaries: %w", err)
	}
	defer rows.Close()

	result := make(map[int]*entity.TrackSummary, len(ids))
	for rows.Next() {
		var s entity.TrackSummary
		if err := rows.Scan(&s.TrackID, &s.Name, &s.AlbumTitle, &s.ArtistName); err != nil {
			return nil, fmt.Errorf("scan track summary: %w", err)
		}
		result[s.TrackID] = &s
	}
	return result, rows.Err()
}
