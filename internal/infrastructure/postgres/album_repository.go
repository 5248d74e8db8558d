package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

var _ repository.AlbumRepository = (*AlbumRepo)(nil)

// AlbumRepo implementación de AlbumRepository (usable con pool o tx).
type AlbumRepo struct {
	q Querier
}

// NewAlbumRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlbumRepository(q Querier) *AlbumRepo {
	return &AlbumRepo{q: q}
}

// GetByID obtiene un álbum por ID.
func (r *AlbumRepo) GetByID(id int) (*entity.Album, error) {
	query := `SELECT album_id, title, artist_id FROM albums WHERE album_id = $1`
	var a entity.Album
	err := r.q.QueryRow(context.Background(), query, id).Scan(&a.AlbumID, &a.Title, &a.ArtistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get album: %w", err)
	}
	return &a, nil
}

// List pagina álbumes con filtro opcional por artista y búsqueda por título.
// artistID nil = todos los artistas; el cast $1::int permite pasar nil.
func (r *AlbumRepo) List(limit, offset int, artistID *int, search string) ([]*entity.Album, int, error) {
	countQuery := `
		SELECT COUNT(*) FROM albums
		WHERE ($1::int IS NULL OR artist_id = $1)
		  AND ($2 = '' OR title ILIKE $3)`
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, artistID, search, likePattern(search)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count albums: %w", err)
	}

	query := `
		SELECT album_id, title, artist_id
		FROM albums
		WHERE ($1::int IS NULL OR artist_id = $1)
		  AND ($2 = '' OR title ILIKE $3)
		ORDER BY title
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, artistID, search, likePattern(search), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list albums: %w", err)
	}
	defer rows.Close()

	var list []*entity.Album
	for rows.Next() {
		var a entity.Album
		if err := rows.Scan(&a.AlbumID, &a.Title, &a.ArtistID); err != nil {
			return nil, 0, fmt.Errorf("scan album: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}
