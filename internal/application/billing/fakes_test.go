package billing_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/music-store-api/internal/application/billing"
	"github.com/tu-usuario/music-store-api/internal/domain/entity"
	"github.com/tu-usuario/music-store-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repositorios en memoria + TxRunner con staging
// ──────────────────────────────────────────────────────────────────────────────

// memStore es la "base de datos" en memoria compartida por todos los fakes.
// El mutex permite los tests de creación concurrente.
type memStore struct {
	mu        sync.Mutex
	customers map[int]*entity.Customer
	employees map[int]*entity.Employee
	tracks    map[int]*entity.Track
	summaries map[int]*entity.TrackSummary
	invoices  map[int]*entity.Invoice
	lines     []*entity.InvoiceLine

	nextInvoiceID int
	nextLineID    int

	// failLineAt > 0 hace fallar la inserción de la N-ésima línea de una
	// transacción, para simular un fallo de escritura a mitad de camino.
	failLineAt int
}

func newMemStore() *memStore {
	return &memStore{
		customers: make(map[int]*entity.Customer),
		employees: make(map[int]*entity.Employee),
		tracks:    make(map[int]*entity.Track),
		summaries: make(map[int]*entity.TrackSummary),
		invoices:  make(map[int]*entity.Invoice),
	}
}

func (s *memStore) addCustomer(id int, first, last, email string) {
	s.customers[id] = &entity.Customer{CustomerID: id, FirstName: first, LastName: last, Email: email}
}

func (s *memStore) addEmployee(id int, first, last string) {
	s.employees[id] = &entity.Employee{EmployeeID: id, FirstName: first, LastName: last}
}

func (s *memStore) addTrack(id int, name, price string, albumTitle, artistName *string) {
	s.tracks[id] = &entity.Track{TrackID: id, Name: name, UnitPrice: dec(price)}
	s.summaries[id] = &entity.TrackSummary{TrackID: id, Name: name, AlbumTitle: albumTitle, ArtistName: artistName}
}

func (s *memStore) invoiceCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.invoices)
}

func (s *memStore) lineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// ── CustomerRepository ───────────────────────────────────────────────────────

// fakeCustomerRepo guarda el último término de búsqueda recibido para
// verificar la normalización aplicada por el caso de uso.
type fakeCustomerRepo struct {
	s          *memStore
	lastSearch string
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.CustomerID = len(r.s.customers) + 1
	cp := *c
	r.s.customers[c.CustomerID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id int) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int, search string) ([]*entity.Customer, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.lastSearch = search
	out := make([]*entity.Customer, 0, len(r.s.customers))
	for _, c := range r.s.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *c
	r.s.customers[c.CustomerID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(id int) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[id]; !ok {
		return false, nil
	}
	delete(r.s.customers, id)
	return true, nil
}

// ── EmployeeRepository ───────────────────────────────────────────────────────

type fakeEmployeeRepo struct{ s *memStore }

func (r *fakeEmployeeRepo) GetByID(id int) (*entity.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

// ── TrackRepository ──────────────────────────────────────────────────────────

// fakeTrackRepo cuenta las llamadas a GetByID para verificar el orden de
// validación (cliente antes que tracks).
type fakeTrackRepo struct {
	s            *memStore
	getByIDCalls int
}

func (r *fakeTrackRepo) GetByID(id int) (*entity.Track, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.getByIDCalls++
	t, ok := r.s.tracks[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTrackRepo) GetDetailByID(id int) (*entity.TrackDetail, error) {
	t, err := r.GetByID(id)
	if err != nil || t == nil {
		return nil, err
	}
	return &entity.TrackDetail{Track: *t}, nil
}

func (r *fakeTrackRepo) List(limit, offset int, albumID, genreID *int, search string) ([]*entity.TrackDetail, int, error) {
	return nil, 0, nil
}

func (r *fakeTrackRepo) GetSummariesByIDs(ids []int) (map[int]*entity.TrackSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make(map[int]*entity.TrackSummary, len(ids))
	for _, id := range ids {
		if s, ok := r.s.summaries[id]; ok {
			cp := *s
			out[id] = &cp
		}
	}
	return out, nil
}

// ── InvoiceRepository (lecturas fuera de transacción) ────────────────────────

type fakeInvoiceRepo struct{ s *memStore }

func (r *fakeInvoiceRepo) Create(*entity.Invoice) error {
	return errors.New("escritura fuera de transacción")
}

func (r *fakeInvoiceRepo) CreateLine(*entity.InvoiceLine) error {
	return errors.New("escritura fuera de transacción")
}

func (r *fakeInvoiceRepo) GetByID(id int) (*entity.Invoice, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetLinesByInvoiceID(invoiceID int) ([]*entity.InvoiceLine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.InvoiceLine, 0)
	for _, l := range r.s.lines {
		if l.InvoiceID == invoiceID {
			cp := *l
			out = append(out, &cp)
		}
	}
	// Mismo contrato que el repositorio real: orden de inserción (id de línea).
	sort.Slice(out, func(i, j int) bool { return out[i].InvoiceLineID < out[j].InvoiceLineID })
	return out, nil
}

func (r *fakeInvoiceRepo) List(limit, offset int, customerID, employeeID *int) ([]*entity.Invoice, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Invoice, 0)
	for _, inv := range r.s.invoices {
		if customerID != nil && inv.CustomerID != *customerID {
			continue
		}
		if employeeID != nil && (inv.EmployeeID == nil || *inv.EmployeeID != *employeeID) {
			continue
		}
		cp := *inv
		out = append(out, &cp)
	}
	return out, len(out), nil
}

// ── TxRunner con staging ─────────────────────────────────────────────────────

// stagedInvoiceRepo acumula las escrituras de una transacción en buffers
// locales. Nada llega al memStore hasta el commit del fakeTxRunner: un error
// del callback descarta el buffer entero, igual que un ROLLBACK real.
type stagedInvoiceRepo struct {
	s       *memStore
	invoice *entity.Invoice
	lines   []*entity.InvoiceLine
}

func (r *stagedInvoiceRepo) Create(inv *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextInvoiceID++
	inv.InvoiceID = r.s.nextInvoiceID
	cp := *inv
	r.invoice = &cp
	return nil
}

func (r *stagedInvoiceRepo) CreateLine(line *entity.InvoiceLine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failLineAt > 0 && len(r.lines)+1 == r.s.failLineAt {
		return errors.New("fallo simulado de escritura")
	}
	r.s.nextLineID++
	line.InvoiceLineID = r.s.nextLineID
	cp := *line
	r.lines = append(r.lines, &cp)
	return nil
}

func (r *stagedInvoiceRepo) GetByID(id int) (*entity.Invoice, error) {
	return (&fakeInvoiceRepo{s: r.s}).GetByID(id)
}

func (r *stagedInvoiceRepo) GetLinesByInvoiceID(invoiceID int) ([]*entity.InvoiceLine, error) {
	return (&fakeInvoiceRepo{s: r.s}).GetLinesByInvoiceID(invoiceID)
}

func (r *stagedInvoiceRepo) List(limit, offset int, customerID, employeeID *int) ([]*entity.Invoice, int, error) {
	return (&fakeInvoiceRepo{s: r.s}).List(limit, offset, customerID, employeeID)
}

type fakeTxRunner struct{ s *memStore }

func (t *fakeTxRunner) RunInvoice(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	staged := &stagedInvoiceRepo{s: t.s}
	if err := fn(staged); err != nil {
		return err
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if staged.invoice != nil {
		t.s.invoices[staged.invoice.InvoiceID] = staged.invoice
	}
	t.s.lines = append(t.s.lines, staged.lines...)
	return nil
}

// ── Armado del caso de uso bajo test ─────────────────────────────────────────

type fixture struct {
	store     *memStore
	trackRepo *fakeTrackRepo
	uc        *billing.CreateInvoiceUseCase
}

func newFixture() *fixture {
	s := newMemStore()
	customerRepo := &fakeCustomerRepo{s: s}
	employeeRepo := &fakeEmployeeRepo{s: s}
	trackRepo := &fakeTrackRepo{s: s}
	invoiceRepo := &fakeInvoiceRepo{s: s}
	assembler := billing.NewInvoiceDetailAssembler(invoiceRepo, customerRepo, employeeRepo, trackRepo)
	uc := billing.NewCreateInvoiceUseCase(
		&fakeTxRunner{s: s}, customerRepo, employeeRepo, trackRepo, invoiceRepo, assembler,
	)
	return &fixture{store: s, trackRepo: trackRepo, uc: uc}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }
