package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSearchTerm prepara un término de búsqueda: recorta espacios y
// normaliza a NFC para que formas Unicode descompuestas ("e" + combinante)
// coincidan con los datos almacenados en forma precompuesta ("é").
func NormalizeSearchTerm(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
