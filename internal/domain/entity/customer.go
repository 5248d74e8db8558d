package entity

// Customer representa un cliente de la tienda.
type Customer struct {
	CustomerID   int
	FirstName    string
	LastName     string
	Company      *string
	Address      *string
	City         *string
	State        *string
	Country      *string
	PostalCode   *string
	Phone        *string
	Fax          *string
	Email        string
	SupportRepID *int // empleado de soporte asignado (opcional)
}

// DisplayName devuelve "FirstName LastName".
func (c *Customer) DisplayName() string {
	return c.FirstName + " " + c.LastName
}
