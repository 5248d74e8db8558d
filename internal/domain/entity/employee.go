package entity

// Employee representa un empleado. Opcional en una factura: las compras
// autoservicio no tienen empleado asociado.
type Employee struct {
	EmployeeID int
	FirstName  string
	LastName   string
	Title      *string
	Email      *string
}

// DisplayName devuelve "FirstName LastName".
func (e *Employee) DisplayName() string {
	return e.FirstName + " " + e.LastName
}
