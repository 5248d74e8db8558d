package dto

import "github.com/shopspring/decimal"

// ArtistResponse artista en respuestas.
type ArtistResponse struct {
	ArtistID int    `json:"artist_id"`
	Name     string `json:"name"`
}

// ArtistListResponse página de artistas.
type ArtistListResponse struct {
	Artists  []ArtistResponse `json:"artists"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// AlbumResponse álbum en respuestas.
type AlbumResponse struct {
	AlbumID  int    `json:"album_id"`
	Title    string `json:"title"`
	ArtistID int    `json:"artist_id"`
}

// AlbumDetailResponse álbum con su artista resuelto.
type AlbumDetailResponse struct {
	AlbumResponse
	Artist *ArtistResponse `json:"artist,omitempty"`
}

// AlbumListResponse página de álbumes.
type AlbumListResponse struct {
	Albums   []AlbumResponse `json:"albums"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// GenreResponse género en respuestas.
type GenreResponse struct {
	GenreID int    `json:"genre_id"`
	Name    string `json:"name"`
}

// GenreListResponse lista completa de géneros (sin paginar).
type GenreListResponse struct {
	Genres []GenreResponse `json:"genres"`
	Total  int             `json:"total"`
}

// TrackResponse track con nombres de sus relaciones (computados con JOIN).
type TrackResponse struct {
	TrackID      int             `json:"track_id"`
	Name         string          `json:"name"`
	AlbumID      *int            `json:"album_id,omitempty"`
	GenreID      *int            `json:"genre_id,omitempty"`
	MediaTypeID  int             `json:"media_type_id"`
	Composer     *string         `json:"composer,omitempty"`
	Milliseconds int             `json:"milliseconds"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	AlbumTitle   *string         `json:"album_title,omitempty"`
	ArtistName   *string         `json:"artist_name,omitempty"`
	GenreName    *string         `json:"genre_name,omitempty"`
}

// TrackListResponse página de tracks.
type TrackListResponse struct {
	Tracks   []TrackResponse `json:"tracks"`
	Total    int             `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}
