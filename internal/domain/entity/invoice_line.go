package entity

import "github.com/shopspring/decimal"

// InvoiceLine representa una línea de factura. UnitPrice es un snapshot del
// precio del track al momento de la creación: cambios posteriores del precio
// no afectan líneas ya escritas.
type InvoiceLine struct {
	InvoiceLineID int
	InvoiceID     int
	TrackID       int
	UnitPrice     decimal.Decimal
	Quantity      int
}
