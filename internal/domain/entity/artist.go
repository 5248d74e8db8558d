package entity

// Artist representa un artista del catálogo.
type Artist struct {
	ArtistID int
	Name     string
}
