package entity

import "github.com/shopspring/decimal"

// Track representa una pista del catálogo. El precio (NUMERIC 10,2) es la
// fuente autoritativa al momento de facturar; nunca llega del cliente.
type Track struct {
	TrackID      int
	Name         string
	AlbumID      *int // nullable: singles sin álbum
	MediaTypeID  int
	GenreID      *int
	Composer     *string
	Milliseconds int
	Bytes        *int
	UnitPrice    decimal.Decimal
}

// TrackDetail pista enriquecida con los nombres de sus relaciones
// (resueltos con JOIN explícito en el repositorio, no lazy-loading).
type TrackDetail struct {
	Track
	AlbumTitle *string
	ArtistName *string
	GenreName  *string
}

// TrackSummary datos mínimos de una pista para el armado del detalle de
// factura: nombre + título de álbum + nombre de artista (ambos opcionales).
type TrackSummary struct {
	TrackID    int
	Name       string
	AlbumTitle *string
	ArtistName *string
}
