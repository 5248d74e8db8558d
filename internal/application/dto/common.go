package dto

// ErrorResponse cuerpo estándar de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Parámetros de paginación de los listados.
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// NormalizePage acota page y pageSize a sus rangos válidos y devuelve
// (page, pageSize, offset).
func NormalizePage(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}
