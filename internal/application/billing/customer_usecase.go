package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/music-store-api/internal/application/catalog"
	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// CustomerUseCase gestiona los clientes de la tienda.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository, employeeRepo repository.EmployeeRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, employeeRepo: employeeRepo}
}

// List pagina clientes con búsqueda opcional.
func (uc *CustomerUseCase) List(ctx context.Context, page, pageSize int, search string) (*dto.CustomerListResponse, error) {
	page, pageSize, offset := dto.NormalizePage(page, pageSize)
	customers, total, err := uc.customerRepo.List(pageSize, offset, catalog.NormalizeSearchTerm(search))
	if err != nil {
		return nil, err
	}
	resp := &dto.CustomerListResponse{
		Customers: make([]dto.CustomerResponse, 0, len(customers)),
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
	for _, c := range customers {
		resp.Customers = append(resp.Customers, toCustomerResponse(c))
	}
	return resp, nil
}

// Get obtiene un cliente por ID.
func (uc *CustomerUseCase) Get(ctx context.Context, id int) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", id, domain.ErrCustomerNotFound)
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Create registra un cliente nuevo. Valida email único y que el empleado de
// soporte exista si viene.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.customerRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.SupportRepID != nil {
		rep, err := uc.employeeRepo.GetByID(*in.SupportRepID)
		if err != nil {
			return nil, err
		}
		if rep == nil {
			return nil, fmt.Errorf("empleado %d: %w", *in.SupportRepID, domain.ErrEmployeeNotFound)
		}
	}

	customer := &entity.Customer{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Company:      in.Company,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Country:      in.Country,
		PostalCode:   in.PostalCode,
		Phone:        in.Phone,
		Fax:          in.Fax,
		Email:        in.Email,
		SupportRepID: in.SupportRepID,
	}
	if err := uc.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(ctx context.Context, id int) error {
	deleted, err := uc.customerRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("cliente %d: %w", id, domain.ErrCustomerNotFound)
	}
	return nil
}

// Update aplica un patch al cliente: solo los campos presentes en el request
// se sobreescriben, campo por campo.
func (uc *CustomerUseCase) Update(ctx context.Context, id int, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("cliente %d: %w", id, domain.ErrCustomerNotFound)
	}

	if in.Email != nil && *in.Email != customer.Email {
		existing, err := uc.customerRepo.GetByEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		customer.Email = *in.Email
	}
	if in.SupportRepID != nil {
		rep, err := uc.employeeRepo.GetByID(*in.SupportRepID)
		if err != nil {
			return nil, err
		}
		if rep == nil {
			return nil, fmt.Errorf("empleado %d: %w", *in.SupportRepID, domain.ErrEmployeeNotFound)
		}
		customer.SupportRepID = in.SupportRepID
	}
	if in.FirstName != nil {
		customer.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		customer.LastName = *in.LastName
	}
	if in.Company != nil {
		customer.Company = in.Company
	}
	if in.Address != nil {
		customer.Address = in.Address
	}
	if in.City != nil {
		customer.City = in.City
	}
	if in.State != nil {
		customer.State = in.State
	}
	if in.Country != nil {
		customer.Country = in.Country
	}
	if in.PostalCode != nil {
		customer.PostalCode = in.PostalCode
	}
	if in.Phone != nil {
		customer.Phone = in.Phone
	}
	if in.Fax != nil {
		customer.Fax = in.Fax
	}

	if err := uc.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CustomerID:   c.CustomerID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Company:      c.Company,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		Country:      c.Country,
		PostalCode:   c.PostalCode,
		Phone:        c.Phone,
		Fax:          c.Fax,
		Email:        c.Email,
		SupportRepID: c.SupportRepID,
	}
}
