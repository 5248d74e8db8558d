package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// InvoiceDetailAssembler arma la vista denormalizada de una factura:
// cabecera + nombre del cliente + nombre del empleado (si hay) + líneas con
// nombres de track/álbum/artista. Los nombres de las líneas se resuelven con
// UNA consulta por lote en lugar de una consulta por línea.
// Solo lecturas: llamarlo dos veces produce resultados idénticos.
type InvoiceDetailAssembler struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	trackRepo    repository.TrackRepository
}

// NewInvoiceDetailAssembler construye el ensamblador.
func NewInvoiceDetailAssembler(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	trackRepo repository.TrackRepository,
) *InvoiceDetailAssembler {
	return &InvoiceDetailAssembler{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		trackRepo:    trackRepo,
	}
}

// Assemble construye la vista de detalle. Las líneas salen en su orden de
// inserción (el orden del pedido original). Un track borrado después de la
// venta produce campos de nombre nulos, no un error: la línea conserva su
// snapshot de precio.
func (a *InvoiceDetailAssembler) Assemble(ctx context.Context, invoiceID int) (*dto.InvoiceDetailResponse, error) {
	inv, err := a.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("factura %d: %w", invoiceID, domain.ErrNotFound)
	}

	lines, err := a.invoiceRepo.GetLinesByInvoiceID(invoiceID)
	if err != nil {
		return nil, err
	}

	detail := &dto.InvoiceDetailResponse{
		InvoiceResponse: toInvoiceResponse(inv),
		Items:           make([]dto.InvoiceLineDetailResponse, 0, len(lines)),
	}

	// Nombre del cliente ("FirstName LastName")
	customer, err := a.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		detail.CustomerName = customer.DisplayName()
	}

	// Nombre del empleado, solo si la venta fue asistida
	if inv.EmployeeID != nil {
		employee, err := a.employeeRepo.GetByID(*inv.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee != nil {
			name := employee.DisplayName()
			detail.EmployeeName = &name
		}
	}

	// Resolver nombres de track/álbum/artista de todas las líneas en un
	// solo JOIN por lote.
	trackIDs := make([]int, 0, len(lines))
	for _, l := range lines {
		trackIDs = append(trackIDs, l.TrackID)
	}
	summaries, err := a.trackRepo.GetSummariesByIDs(trackIDs)
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		item := dto.InvoiceLineDetailResponse{
			InvoiceLineID: l.InvoiceLineID,
			TrackID:       l.TrackID,
			UnitPrice:     l.UnitPrice,
			Quantity:      l.Quantity,
		}
		if s, ok := summaries[l.TrackID]; ok {
			name := s.Name
			item.TrackName = &name
			item.AlbumTitle = s.AlbumTitle
			item.ArtistName = s.ArtistName
		}
		detail.Items = append(detail.Items, item)
	}
	return detail, nil
}
