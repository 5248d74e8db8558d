package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// CreateInvoiceUseCase orquesta la transacción de creación de facturas:
// validación de referencias, valorización y escritura atómica de cabecera +
// líneas. Toda la validación ocurre ANTES de abrir la transacción, así la
// escritura se intenta una sola vez y el rollback queda a cargo de la
// transacción de la base.
type CreateInvoiceUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
	trackRepo    repository.TrackRepository
	invoiceRepo  repository.InvoiceRepository
	assembler    *InvoiceDetailAssembler
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	txRunner TxRunner,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
	trackRepo repository.TrackRepository,
	invoiceRepo repository.InvoiceRepository,
	assembler *InvoiceDetailAssembler,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		txRunner:     txRunner,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		trackRepo:    trackRepo,
		invoiceRepo:  invoiceRepo,
		assembler:    assembler,
	}
}

// CreateInvoice crea la factura con sus líneas en una sola transacción y
// devuelve la vista de detalle completa. Cualquier referencia inexistente
// aborta la operación entera: nunca queda una factura parcial.
func (uc *CreateInvoiceUseCase) CreateInvoice(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceDetailResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	// Validar cliente
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", in.CustomerID, domain.ErrCustomerNotFound)
	}

	// Validar empleado si viene (ventas asistidas)
	if in.EmployeeID != nil {
		employee, err := uc.employeeRepo.GetByID(*in.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, fmt.Errorf("empleado %d: %w", *in.EmployeeID, domain.ErrEmployeeNotFound)
		}
	}

	// Valorizar cada item en el orden recibido. El primer track inexistente
	// o cantidad inválida aborta toda la factura (fail-fast).
	lines := make([]PricedLine, 0, len(in.Items))
	for _, item := range in.Items {
		track, err := uc.trackRepo.GetByID(item.TrackID)
		if err != nil {
			return nil, err
		}
		if track == nil {
			return nil, fmt.Errorf("track %d: %w", item.TrackID, domain.ErrTrackNotFound)
		}
		priced, err := PriceLine(track, item.QuantityOrDefault())
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", item.TrackID, err)
		}
		lines = append(lines, priced)
	}

	inv := &entity.Invoice{
		CustomerID:        in.CustomerID,
		EmployeeID:        in.EmployeeID,
		InvoiceDate:       time.Now(),
		BillingAddress:    in.BillingAddress,
		BillingCity:       in.BillingCity,
		BillingState:      in.BillingState,
		BillingCountry:    in.BillingCountry,
		BillingPostalCode: in.BillingPostalCode,
		Total:             PriceOrder(lines),
	}

	// Escritura atómica: cabecera + todas las líneas, o nada.
	err = uc.txRunner.RunInvoice(ctx, func(invoiceRepo repository.InvoiceRepository) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, l := range lines {
			line := &entity.InvoiceLine{
				InvoiceID: inv.InvoiceID,
				TrackID:   l.Track.TrackID,
				UnitPrice: l.UnitPrice,
				Quantity:  l.Quantity,
			}
			if err := invoiceRepo.CreateLine(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPersistence, err)
	}

	// Leer de vuelta la vista de detalle recién confirmada.
	return uc.assembler.Assemble(ctx, inv.InvoiceID)
}

// GetInvoice obtiene el detalle completo de una factura por ID.
func (uc *CreateInvoiceUseCase) GetInvoice(ctx context.Context, id int) (*dto.InvoiceDetailResponse, error) {
	return uc.assembler.Assemble(ctx, id)
}

// ListInvoices pagina facturas con filtros opcionales por cliente y empleado.
func (uc *CreateInvoiceUseCase) ListInvoices(ctx context.Context, page, pageSize int, customerID, employeeID *int) (*dto.InvoiceListResponse, error) {
	page, pageSize, offset := dto.NormalizePage(page, pageSize)
	invoices, total, err := uc.invoiceRepo.List(pageSize, offset, customerID, employeeID)
	if err != nil {
		return nil, err
	}
	resp := &dto.InvoiceListResponse{
		Invoices: make([]dto.InvoiceResponse, 0, len(invoices)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, toInvoiceResponse(inv))
	}
	return resp, nil
}

// CustomerHistory devuelve el historial de compras de un cliente. Valida
// primero que el cliente exista.
func (uc *CreateInvoiceUseCase) CustomerHistory(ctx context.Context, customerID, page, pageSize int) (*dto.InvoiceListResponse, error) {
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", customerID, domain.ErrCustomerNotFound)
	}
	return uc.ListInvoices(ctx, page, pageSize, &customerID, nil)
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		InvoiceID:         inv.InvoiceID,
		CustomerID:        inv.CustomerID,
		EmployeeID:        inv.EmployeeID,
		InvoiceDate:       inv.InvoiceDate,
		BillingAddress:    inv.BillingAddress,
		BillingCity:       inv.BillingCity,
		BillingState:      inv.BillingState,
		BillingCountry:    inv.BillingCountry,
		BillingPostalCode: inv.BillingPostalCode,
		Total:             inv.Total,
	}
}
