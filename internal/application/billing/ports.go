package billing

import (
	"context"

	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con el repositorio
// de facturas atado a ella. Si fn retorna error se hace rollback: ni la
// cabecera ni las líneas quedan visibles.
type TxRunner interface {
	RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error
}

// InvoicePDFGenerator renderiza el detalle de una factura como PDF.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, detail *dto.InvoiceDetailResponse) ([]byte, error)
}
