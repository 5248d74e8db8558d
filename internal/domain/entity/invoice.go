package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa la cabecera de una factura.
// Total es derivado: suma exacta de unit_price * quantity de sus líneas,
// calculada al momento de la creación. Nunca viene del cliente.
type Invoice struct {
	InvoiceID         int
	CustomerID        int
	EmployeeID        *int // opcional: ventas asistidas
	InvoiceDate       time.Time
	BillingAddress    *string
	BillingCity       *string
	BillingState      *string
	BillingCountry    *string
	BillingPostalCode *string
	Total             decimal.Decimal
}
