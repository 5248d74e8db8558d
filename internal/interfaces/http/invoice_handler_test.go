package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/music-store-api/internal/application/billing"
	"github.com/tu-usuario/music-store-api/internal/application/catalog"
	"github.com/tu-usuario/music-store-api/internal/application/dto"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/music-store-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para montar la app completa
// ──────────────────────────────────────────────────────────────────────────────

type stubRepos struct {
	customers map[int]*entity.Customer
	employees map[int]*entity.Employee
	tracks    map[int]*entity.Track
	invoices  map[int]*entity.Invoice
	lines     []*entity.InvoiceLine
	nextID    int
}

func newStubRepos() *stubRepos {
	return &stubRepos{
		customers: map[int]*entity.Customer{
			1: {CustomerID: 1, FirstName: "Ana", LastName: "Silva", Email: "ana@example.com"},
		},
		employees: map[int]*entity.Employee{},
		tracks: map[int]*entity.Track{
			10: {TrackID: 10, Name: "Black Dog", UnitPrice: decimal.RequireFromString("0.99")},
		},
		invoices: map[int]*entity.Invoice{},
	}
}

func (s *stubRepos) Create(c *entity.Customer) error { return nil }
func (s *stubRepos) GetByID(id int) (*entity.Customer, error) {
	return s.customers[id], nil
}
func (s *stubRepos) GetByEmail(email string) (*entity.Customer, error) { return nil, nil }
func (s *stubRepos) List(limit, offset int, search string) ([]*entity.Customer, int, error) {
	return nil, 0, nil
}
func (s *stubRepos) Update(c *entity.Customer) error { return nil }
func (s *stubRepos) Delete(id int) (bool, error) {
	if _, ok := s.customers[id]; !ok {
		return false, nil
	}
	delete(s.customers, id)
	return true, nil
}

type stubEmployeeRepo struct{ s *stubRepos }

func (r *stubEmployeeRepo) GetByID(id int) (*entity.Employee, error) {
	return r.s.employees[id], nil
}

type stubTrackRepo struct{ s *stubRepos }

func (r *stubTrackRepo) GetByID(id int) (*entity.Track, error) {
	return r.s.tracks[id], nil
}
func (r *stubTrackRepo) GetDetailByID(id int) (*entity.TrackDetail, error) {
	t := r.s.tracks[id]
	if t == nil {
		return nil, nil
	}
	return &entity.TrackDetail{Track: *t}, nil
}
func (r *stubTrackRepo) List(limit, offset int, albumID, genreID *int, search string) ([]*entity.TrackDetail, int, error) {
	return nil, 0, nil
}
func (r *stubTrackRepo) GetSummariesByIDs(ids []int) (map[int]*entity.TrackSummary, error) {
	out := make(map[int]*entity.TrackSummary)
	for _, id := range ids {
		if t, ok := r.s.tracks[id]; ok {
			out[id] = &entity.TrackSummary{TrackID: id, Name: t.Name}
		}
	}
	return out, nil
}

type stubInvoiceRepo struct{ s *stubRepos }

func (r *stubInvoiceRepo) Create(inv *entity.Invoice) error {
	r.s.nextID++
	inv.InvoiceID = r.s.nextID
	cp := *inv
	r.s.invoices[inv.InvoiceID] = &cp
	return nil
}
func (r *stubInvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	r.s.nextID++
	line.InvoiceLineID = r.s.nextID
	cp := *line
	r.s.lines = append(r.s.lines, &cp)
	return nil
}
func (r *stubInvoiceRepo) GetByID(id int) (*entity.Invoice, error) {
	return r.s.invoices[id], nil
}
func (r *stubInvoiceRepo) GetLinesByInvoiceID(invoiceID int) ([]*entity.InvoiceLine, error) {
	out := make([]*entity.InvoiceLine, 0)
	for _, l := range r.s.lines {
		if l.InvoiceID == invoiceID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *stubInvoiceRepo) List(limit, offset int, customerID, employeeID *int) ([]*entity.Invoice, int, error) {
	out := make([]*entity.Invoice, 0, len(r.s.invoices))
	for _, inv := range r.s.invoices {
		out = append(out, inv)
	}
	return out, len(out), nil
}

// stubTxRunner ejecuta el callback directamente contra el repo; los tests de
// rollback viven en el paquete billing, acá solo importa el contrato HTTP.
type stubTxRunner struct{ repo repository.InvoiceRepository }

func (t *stubTxRunner) RunInvoice(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	return fn(t.repo)
}

// buildTestApp monta la app Fiber completa con el router real y repos stub.
func buildTestApp() *fiber.App {
	s := newStubRepos()
	employeeRepo := &stubEmployeeRepo{s: s}
	trackRepo := &stubTrackRepo{s: s}
	invoiceRepo := &stubInvoiceRepo{s: s}

	assembler := billing.NewInvoiceDetailAssembler(invoiceRepo, s, employeeRepo, trackRepo)
	createUC := billing.NewCreateInvoiceUseCase(
		&stubTxRunner{repo: invoiceRepo}, s, employeeRepo, trackRepo, invoiceRepo, assembler,
	)
	customerUC := billing.NewCustomerUseCase(s, employeeRepo)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ArtistUC:      catalog.NewArtistUseCase(nil),
		AlbumUC:       catalog.NewAlbumUseCase(nil, nil),
		GenreUC:       catalog.NewGenreUseCase(nil),
		TrackUC:       catalog.NewTrackUseCase(trackRepo),
		CustomerUC:    customerUC,
		CreateInvoice: createUC,
		InvoicePDF:    nil,
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e))
	return e
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/invoices
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: creación exitosa → 201 con el detalle completo.
func TestInvoiceHandler_Create201(t *testing.T) {
	app := buildTestApp()

	resp := postJSON(t, app, "/api/invoices", fiber.Map{
		"customer_id": 1,
		"items":       []fiber.Map{{"track_id": 10, "quantity": 2}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var detail dto.InvoiceDetailResponse
	require.NoError(t, json.Unmarshal(raw, &detail))

	assert.Equal(t, "1.98", detail.Total.String())
	assert.Equal(t, "Ana Silva", detail.CustomerName)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, 2, detail.Items[0].Quantity)
}

// Caso 2: orden vacía → 400 EMPTY_ORDER.
func TestInvoiceHandler_OrdenVacia400(t *testing.T) {
	app := buildTestApp()

	resp := postJSON(t, app, "/api/invoices", fiber.Map{
		"customer_id": 1,
		"items":       []fiber.Map{},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMPTY_ORDER", decodeError(t, resp).Code)
}

// Caso 3: track inexistente → 404 TRACK_NOT_FOUND identificando al ofensor.
func TestInvoiceHandler_TrackInexistente404(t *testing.T) {
	app := buildTestApp()

	resp := postJSON(t, app, "/api/invoices", fiber.Map{
		"customer_id": 1,
		"items":       []fiber.Map{{"track_id": 999}},
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	e := decodeError(t, resp)
	assert.Equal(t, "TRACK_NOT_FOUND", e.Code)
	assert.Contains(t, e.Message, "999")
}

// Caso 4: cliente inexistente → 404 CUSTOMER_NOT_FOUND.
func TestInvoiceHandler_ClienteInexistente404(t *testing.T) {
	app := buildTestApp()

	resp := postJSON(t, app, "/api/invoices", fiber.Map{
		"customer_id": 42,
		"items":       []fiber.Map{{"track_id": 10}},
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", decodeError(t, resp).Code)
}

// Caso 5: cantidad 0 → 400 INVALID_QUANTITY.
func TestInvoiceHandler_CantidadInvalida400(t *testing.T) {
	app := buildTestApp()

	resp := postJSON(t, app, "/api/invoices", fiber.Map{
		"customer_id": 1,
		"items":       []fiber.Map{{"track_id": 10, "quantity": 0}},
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", decodeError(t, resp).Code)
}

// Caso 6: cuerpo no parseable → 400 INVALID_BODY.
func TestInvoiceHandler_CuerpoInvalido400(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/invoices", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

// Caso 7: DELETE de un cliente existente → 204 sin cuerpo; repetirlo → 404.
func TestCustomerHandler_Delete(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodDelete, "/api/customers/1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/api/customers/1", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", decodeError(t, resp).Code)
}

// Caso 8: GET de una factura inexistente → 404 NOT_FOUND.
func TestInvoiceHandler_DetalleInexistente404(t *testing.T) {
	app := buildTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/invoices/404", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}
