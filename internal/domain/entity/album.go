package entity

// Album representa un álbum del catálogo. Siempre pertenece a un artista.
type Album struct {
	AlbumID  int
	Title    string
	ArtistID int
}
