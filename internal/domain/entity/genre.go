package entity

// Genre representa un género musical.
type Genre struct {
	GenreID int
	Name    string
}
