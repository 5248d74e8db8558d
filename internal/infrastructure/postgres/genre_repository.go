package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

var _ repository.GenreRepository = (*GenreRepo)(nil)

// GenreRepo implementación de GenreRepository (usable con pool o tx).
type GenreRepo struct {
	q Querier
}

// NewGenreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGenreRepository(q Querier) *GenreRepo {
	return &GenreRepo{q: q}
}

// GetByID obtiene un género por ID.
func (r *GenreRepo) GetByID(id int) (*entity.Genre, error) {
	query := `SELECT genre_id, name FROM genres WHERE genre_id = $1`
	var g entity.Genre
	err := r.q.QueryRow(context.Background(), query, id).Scan(&g.GenreID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get genre: %w", err)
	}
	return &g, nil
}

// ListAll devuelve todos los géneros ordenados por nombre (tabla pequeña, sin paginar).
func (r *GenreRepo) ListAll() ([]*entity.Genre, error) {
	rows, err := r.q.Query(context.Background(), `SELECT genre_id, name FROM genres ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	var list []*entity.Genre
	for rows.Next() {
		var g entity.Genre
		if err := rows.Scan(&g.GenreID, &g.Name); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
