package billing

import "context"

// PDFUseCase genera la representación en PDF de una factura a partir de su
// vista de detalle ya ensamblada.
type PDFUseCase struct {
	assembler *InvoiceDetailAssembler
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(assembler *InvoiceDetailAssembler, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{assembler: assembler, generator: generator}
}

// DownloadInvoicePDF arma el detalle de la factura y lo renderiza como PDF.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID int) ([]byte, error) {
	detail, err := uc.assembler.Assemble(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateInvoicePDF(ctx, detail)
}
