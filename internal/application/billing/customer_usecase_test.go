package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/music-store-api/internal/application/billing"
	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain"
)

func newCustomerUC(s *memStore) *billing.CustomerUseCase {
	return billing.NewCustomerUseCase(&fakeCustomerRepo{s: s}, &fakeEmployeeRepo{s: s})
}

// Caso 1: alta exitosa con empleado de soporte válido.
func TestCustomerCreate_Exitosa(t *testing.T) {
	s := newMemStore()
	s.addEmployee(3, "Jane", "Peacock")
	uc := newCustomerUC(s)

	resp, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		FirstName:    "Ana",
		LastName:     "Silva",
		Email:        "ana@example.com",
		Country:      strPtr("Brazil"),
		SupportRepID: intPtr(3),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.CustomerID)
	assert.Equal(t, "ana@example.com", resp.Email)
	require.NotNil(t, resp.SupportRepID)
	assert.Equal(t, 3, *resp.SupportRepID)
}

// Caso 2: campos obligatorios ausentes → ErrInvalidInput.
func TestCustomerCreate_CamposObligatorios(t *testing.T) {
	uc := newCustomerUC(newMemStore())

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		FirstName: "Ana",
		LastName:  "Silva",
		// sin email
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

// Caso 3: email duplicado → ErrDuplicate.
func TestCustomerCreate_EmailDuplicado(t *testing.T) {
	s := newMemStore()
	s.addCustomer(1, "Ana", "Silva", "ana@example.com")
	uc := newCustomerUC(s)

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		FirstName: "Otra",
		LastName:  "Persona",
		Email:     "ana@example.com",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

// Caso 4: empleado de soporte inexistente → ErrEmployeeNotFound.
func TestCustomerCreate_SoporteInexistente(t *testing.T) {
	uc := newCustomerUC(newMemStore())

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		FirstName:    "Ana",
		LastName:     "Silva",
		Email:        "ana@example.com",
		SupportRepID: intPtr(42),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmployeeNotFound))
}

// Caso 5: el patch solo toca los campos presentes.
func TestCustomerUpdate_PatchParcial(t *testing.T) {
	s := newMemStore()
	s.addCustomer(1, "Ana", "Silva", "ana@example.com")
	uc := newCustomerUC(s)

	resp, err := uc.Update(context.Background(), 1, dto.UpdateCustomerRequest{
		City:  strPtr("São Paulo"),
		Phone: strPtr("+55 11 5555-5555"),
	})
	require.NoError(t, err)

	// Campos parchados
	require.NotNil(t, resp.City)
	assert.Equal(t, "São Paulo", *resp.City)
	require.NotNil(t, resp.Phone)

	// Campos no mencionados quedan intactos
	assert.Equal(t, "Ana", resp.FirstName)
	assert.Equal(t, "Silva", resp.LastName)
	assert.Equal(t, "ana@example.com", resp.Email)
}

// Caso 6: cambiar el email a uno ya usado por otro cliente → ErrDuplicate.
func TestCustomerUpdate_EmailDuplicado(t *testing.T) {
	s := newMemStore()
	s.addCustomer(1, "Ana", "Silva", "ana@example.com")
	s.addCustomer(2, "Bruno", "Costa", "bruno@example.com")
	uc := newCustomerUC(s)

	_, err := uc.Update(context.Background(), 1, dto.UpdateCustomerRequest{
		Email: strPtr("bruno@example.com"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

// Caso 7: reenviar el propio email no cuenta como duplicado.
func TestCustomerUpdate_MismoEmailNoEsDuplicado(t *testing.T) {
	s := newMemStore()
	s.addCustomer(1, "Ana", "Silva", "ana@example.com")
	uc := newCustomerUC(s)

	resp, err := uc.Update(context.Background(), 1, dto.UpdateCustomerRequest{
		Email: strPtr("ana@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", resp.Email)
}

// Caso 8: cliente inexistente → ErrCustomerNotFound.
func TestCustomerUpdate_Inexistente(t *testing.T) {
	uc := newCustomerUC(newMemStore())

	_, err := uc.Update(context.Background(), 77, dto.UpdateCustomerRequest{
		City: strPtr("Lima"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCustomerNotFound))
}

// Caso 9: baja exitosa. El cliente deja de resolverse después del borrado.
func TestCustomerDelete_Exitosa(t *testing.T) {
	s := newMemStore()
	s.addCustomer(1, "Ana", "Silva", "ana@example.com")
	uc := newCustomerUC(s)

	require.NoError(t, uc.Delete(context.Background(), 1))

	_, err := uc.Get(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCustomerNotFound))
}

// Caso 10: borrar un cliente inexistente → ErrCustomerNotFound con el ID.
func TestCustomerDelete_Inexistente(t *testing.T) {
	uc := newCustomerUC(newMemStore())

	err := uc.Delete(context.Background(), 88)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCustomerNotFound))
	assert.Contains(t, err.Error(), "88")
}

// Caso 11: el término de búsqueda llega al repositorio recortado y en NFC,
// igual que en los listados del catálogo.
func TestCustomerList_NormalizaBusqueda(t *testing.T) {
	s := newMemStore()
	repo := &fakeCustomerRepo{s: s}
	uc := billing.NewCustomerUseCase(repo, &fakeEmployeeRepo{s: s})

	_, err := uc.List(context.Background(), 1, 50, "  Gonc\u0327alves  ")
	require.NoError(t, err)
	assert.Equal(t, "Gon\u00e7alves", repo.lastSearch)
}
