package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

var _ repository.ArtistRepository = (*ArtistRepo)(nil)

// ArtistRepo implementación de ArtistRepository (usable con pool o tx).
type ArtistRepo struct {
	q Querier
}

// NewArtistRepository construye el adaptador. Pasar pool o tx (Querier).
func NewArtistRepository(q Querier) *ArtistRepo {
	return &ArtistRepo{q: q}
}

// GetByID obtiene un artista por ID.
func (r *ArtistRepo) GetByID(id int) (*entity.Artist, error) {
	query := `SELECT artist_id, name FROM artists WHERE artist_id = $1`
	var a entity.Artist
	err := r.q.QueryRow(context.Background(), query, id).Scan(&a.ArtistID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get artist: %w", err)
	}
	return &a, nil
}

// List pagina artistas ordenados por nombre, con búsqueda opcional por substring.
func (r *ArtistRepo) List(limit, offset int, search string) ([]*entity.Artist, int, error) {
	countQuery := `SELECT COUNT(*) FROM artists WHERE ($1 = '' OR name ILIKE $2)`
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, search, likePattern(search)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count artists: %w", err)
	}

	query := `
		SELECT artist_id, name
		FROM artists
		WHERE ($1 = '' OR name ILIKE $2)
		ORDER BY name
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, search, likePattern(search), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	var list []*entity.Artist
	for rows.Next() {
		var a entity.Artist
		if err := rows.Scan(&a.ArtistID, &a.Name); err != nil {
			return nil, 0, fmt.Errorf("scan artist: %w", err)
		}
		list = append(list, &a)
	}
	return list, total, rows.Err()
}
