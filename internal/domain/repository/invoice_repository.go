package repository

import "github.com/tu-usuario/music-store-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
// Create y CreateLine solo se invocan dentro de la transacción del TxRunner:
// o se escriben cabecera y todas las líneas, o ninguna fila queda visible.
type InvoiceRepository interface {
	// Create inserta la cabecera y asigna InvoiceID.
	Create(invoice *entity.Invoice) error
	// CreateLine inserta una línea y asigna InvoiceLineID.
	CreateLine(line *entity.InvoiceLine) error
	GetByID(id int) (*entity.Invoice, error)
	// GetLinesByInvoiceID devuelve las líneas en orden de inserción.
	GetLinesByInvoiceID(invoiceID int) ([]*entity.InvoiceLine, error)
	// List pagina facturas (más recientes primero) con filtros opcionales.
	List(limit, offset int, customerID, employeeID *int) ([]*entity.Invoice, int, error)
}
