package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `customer_id, first_name, last_name, company, address, city, state,
		country, postal_code, phone, fax, email, support_rep_id`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente y asigna CustomerID.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, company, address, city, state,
			country, postal_code, phone, fax, email, support_rep_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING customer_id`
	err := r.q.QueryRow(context.Background(), query,
		customer.FirstName, customer.LastName, customer.Company, customer.Address,
		customer.City, customer.State, customer.Country, customer.PostalCode,
		customer.Phone, customer.Fax, customer.Email, customer.SupportRepID,
	).Scan(&customer.CustomerID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id int) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get customer")
}

// GetByEmail obtiene un cliente por email (para validar unicidad).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email), "get customer by email")
}

// List pagina clientes con búsqueda opcional por nombre, email o compañía.
func (r *CustomerRepo) List(limit, offset int, search string) ([]*entity.Customer, int, error) {
	countQuery := `
		SELECT COUNT(*) FROM customers
		WHERE ($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2
			OR email ILIKE $2 OR company ILIKE $2)`
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, search, likePattern(search)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE ($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2
			OR email ILIKE $2 OR company ILIKE $2)
		ORDER BY last_name, first_name
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, search, likePattern(search), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, 0, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, total, rows.Err()
}

// Update reescribe todos los campos editables del cliente.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, company = $4, address = $5,
		    city = $6, state = $7, country = $8, postal_code = $9,
		    phone = $10, fax = $11, email = $12, support_rep_id = $13
		WHERE customer_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.CustomerID, customer.FirstName, customer.LastName, customer.Company,
		customer.Address, customer.City, customer.State, customer.Country,
		customer.PostalCode, customer.Phone, customer.Fax, customer.Email,
		customer.SupportRepID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente. Devuelve false si no existía ninguna fila.
func (r *CustomerRepo) Delete(id int) (bool, error) {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE customer_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CustomerRepo) scanOne(row pgx.Row, op string) (*entity.Customer, error) {
	var c entity.Customer
	if err := scanCustomer(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func scanCustomer(row pgx.Row, c *entity.Customer) error {
	return row.Scan(
		&c.CustomerID, &c.FirstName, &c.LastName, &c.Company, &c.Address,
		&c.City, &c.State, &c.Country, &c.PostalCode, &c.Phone, &c.Fax,
		&c.Email, &c.SupportRepID,
	)
}
