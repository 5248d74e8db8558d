package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `invoice_id, customer_id, employee_id, invoice_date, billing_address,
		billing_city, billing_state, billing_country, billing_postal_code, total`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
// Dentro del TxRunner las inserciones quedan atadas a la transacción.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura y asigna InvoiceID.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, employee_id, invoice_date, billing_address,
			billing_city, billing_state, billing_country, billing_postal_code, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING invoice_id`
	err := r.q.QueryRow(context.Background(), query,
		invoice.CustomerID, invoice.EmployeeID, invoice.InvoiceDate,
		invoice.BillingAddress, invoice.BillingCity, invoice.BillingState,
		invoice.BillingCountry, invoice.BillingPostalCode, invoice.Total,
	).Scan(&invoice.InvoiceID)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de factura y asigna InvoiceLineID.
func (r *InvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	query := `
		INSERT INTO invoice_lines (invoice_id, track_id, unit_price, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING invoice_line_id`
	err := r.q.QueryRow(context.Background(), query,
		line.InvoiceID, line.TrackID, line.UnitPrice, line.Quantity,
	).Scan(&line.InvoiceLineID)
	if err != nil {
		return fmt.Errorf("insert invoice line: %w", err)
	}
	return nil
}

// GetByID obtiene una cabecera de factura por ID.
func (r *InvoiceRepo) GetByID(id int) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1`
	var inv entity.Invoice
	err := scanInvoice(r.q.QueryRow(context.Background(), query, id), &inv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetLinesByInvoiceID obtiene las líneas de una factura en orden de inserción
// (invoice_line_id es serial: orden de inserción == orden del pedido).
func (r *InvoiceRepo) GetLinesByInvoiceID(invoiceID int) ([]*entity.InvoiceLine, error) {
	query := `
		SELECT invoice_line_id, invoice_id, track_id, unit_price, quantity
		FROM invoice_lines WHERE invoice_id = $1 ORDER BY invoice_line_id`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.InvoiceLine
	for rows.Next() {
		var l entity.InvoiceLine
		if err := rows.Scan(&l.InvoiceLineID, &l.InvoiceID, &l.TrackID, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan invoice line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List pagina facturas (más recientes primero) con filtros opcionales por
// cliente y empleado.
func (r *InvoiceRepo) List(limit, offset int, customerID, employeeID *int) ([]*entity.Invoice, int, error) {
	countQuery := `
		SELECT COUNT(*) FROM invoices
		WHERE ($1::int IS NULL OR customer_id = $1)
		  AND ($2::int IS NULL OR employee_id = $2)`
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, customerID, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count invoices: %w", err)
	}

	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE ($1::int IS NULL OR customer_id = $1)
		  AND ($2::int IS NULL OR employee_id = $2)
		ORDER BY invoice_date DESC, invoice_id DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, customerID, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := scanInvoice(rows, &inv); err != nil {
			return nil, 0, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, total, rows.Err()
}

func scanInvoice(row pgx.Row, inv *entity.Invoice) error {
	return row.Scan(
		&inv.InvoiceID, &inv.CustomerID, &inv.EmployeeID, &inv.InvoiceDate,
		&inv.BillingAddress, &inv.BillingCity, &inv.BillingState,
		&inv.BillingCountry, &inv.BillingPostalCode, &inv.Total,
	)
}
