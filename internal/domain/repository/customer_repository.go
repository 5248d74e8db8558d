package repository

import "github.com/tu-usuario/music-store-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// Create persiste el cliente y asigna CustomerID.
	Create(customer *entity.Customer) error
	GetByID(id int) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	// List pagina clientes; search filtra por nombre, email o compañía.
	List(limit, offset int, search string) ([]*entity.Customer, int, error)
	// Update reescribe todos los campos editables del cliente.
	Update(customer *entity.Customer) error
	// Delete elimina el cliente; devuelve false si no existía.
	Delete(id int) (bool, error)
}
