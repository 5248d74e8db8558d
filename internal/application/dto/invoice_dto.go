package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices.
// El total NO se acepta del cliente: siempre se deriva de los precios
// vigentes de los tracks.
type CreateInvoiceRequest struct {
	CustomerID        int                  `json:"customer_id"`
	EmployeeID        *int                 `json:"employee_id,omitempty"` // opcional: ventas asistidas
	BillingAddress    *string              `json:"billing_address,omitempty"`
	BillingCity       *string              `json:"billing_city,omitempty"`
	BillingState      *string              `json:"billing_state,omitempty"`
	BillingCountry    *string              `json:"billing_country,omitempty"`
	BillingPostalCode *string              `json:"billing_postal_code,omitempty"`
	Items             []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest línea solicitada: track + cantidad.
type InvoiceItemRequest struct {
	TrackID  int  `json:"track_id"`
	Quantity *int `json:"quantity,omitempty"` // omitido = 1
}

// QuantityOrDefault aplica el default del esquema: cantidad omitida = 1.
// Valores presentes se devuelven tal cual (la validación >= 1 es del motor
// de precios).
func (i InvoiceItemRequest) QuantityOrDefault() int {
	if i.Quantity == nil {
		return 1
	}
	return *i.Quantity
}

// InvoiceResponse cabecera de factura en respuestas de listado.
type InvoiceResponse struct {
	InvoiceID         int             `json:"invoice_id"`
	CustomerID        int             `json:"customer_id"`
	EmployeeID        *int            `json:"employee_id,omitempty"`
	InvoiceDate       time.Time       `json:"invoice_date"`
	BillingAddress    *string         `json:"billing_address,omitempty"`
	BillingCity       *string         `json:"billing_city,omitempty"`
	BillingState      *string         `json:"billing_state,omitempty"`
	BillingCountry    *string         `json:"billing_country,omitempty"`
	BillingPostalCode *string         `json:"billing_postal_code,omitempty"`
	Total             decimal.Decimal `json:"total"`
}

// InvoiceListResponse página de facturas.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// InvoiceDetailResponse vista denormalizada de una factura: cabecera +
// nombres de cliente/empleado + líneas con nombres de track/álbum/artista.
type InvoiceDetailResponse struct {
	InvoiceResponse
	CustomerName string                      `json:"customer_name"`
	EmployeeName *string                     `json:"employee_name,omitempty"`
	Items        []InvoiceLineDetailResponse `json:"items"`
}

// InvoiceLineDetailResponse línea del detalle. track_name/album_title/
// artist_name son independientemente opcionales: un track sin álbum produce
// campos nulos, no un error.
type InvoiceLineDetailResponse struct {
	InvoiceLineID int             `json:"invoice_line_id"`
	TrackID       int             `json:"track_id"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	TrackName     *string         `json:"track_name,omitempty"`
	AlbumTitle    *string         `json:"album_title,omitempty"`
	ArtistName    *string         `json:"artist_name,omitempty"`
}
