package repository

import "github.com/tu-usuario/music-store-api/internal/domain/entity"

// EmployeeRepository define el puerto de lectura para Employee.
// Solo se consulta para validar referencias y resolver nombres.
type EmployeeRepository interface {
	GetByID(id int) (*entity.Employee, error)
}
