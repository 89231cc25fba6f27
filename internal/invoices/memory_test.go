package invoices

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/biztime/biztime/internal/companies"
	"github.com/biztime/biztime/internal/shared"
)

type memoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]Invoice
	nextID int64

	// knownCompanies emulates the foreign key; nil disables the check.
	knownCompanies map[string]bool
}

func newMemoryRepo(seed ...Invoice) *memoryRepo {
	r := &memoryRepo{rows: make(map[int64]Invoice)}
	for _, inv := range seed {
		if inv.ID > r.nextID {
			r.nextID = inv.ID
		}
		r.rows[inv.ID] = inv
	}
	return r
}

func (r *memoryRepo) sorted(keep func(Invoice) bool) []Invoice {
	var out []Invoice
	for _, inv := range r.rows {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *memoryRepo) List(ctx context.Context) ([]Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(Invoice) bool { return true }), nil
}

func (r *memoryRepo) ListByCompany(ctx context.Context, code string) ([]Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(inv Invoice) bool { return inv.CompCode == code }), nil
}

func (r *memoryRepo) Get(ctx context.Context, id int64) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.rows[id]
	if !ok {
		return Invoice{}, notFound(id)
	}
	return inv, nil
}

func (r *memoryRepo) Create(ctx context.Context, input CreateInput) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.knownCompanies != nil && !r.knownCompanies[input.CompCode] {
		return Invoice{}, shared.Invalid("company %q does not exist", input.CompCode)
	}
	r.nextID++
	inv := Invoice{
		ID:       r.nextID,
		CompCode: input.CompCode,
		Amt:      input.Amt,
		AddDate:  input.AddDate,
	}
	r.rows[inv.ID] = inv
	return inv, nil
}

func (r *memoryRepo) Mutate(ctx context.Context, id int64, fn func(*Invoice) error) (Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.rows[id]
	if !ok {
		return Invoice{}, notFound(id)
	}
	if err := fn(&inv); err != nil {
		return Invoice{}, err
	}
	r.rows[id] = inv
	return inv, nil
}

func (r *memoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return notFound(id)
	}
	delete(r.rows, id)
	return nil
}

type stubCompanies map[string]companies.Company

func (s stubCompanies) Get(ctx context.Context, code string) (companies.Company, error) {
	c, ok := s[code]
	if !ok {
		return companies.Company{}, shared.NotFound("company not found: %s", code)
	}
	return c, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	paid []Invoice
	err  error
}

func (n *recordingNotifier) InvoicePaid(ctx context.Context, invoice Invoice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paid = append(n.paid, invoice)
	return n.err
}

func (n *recordingNotifier) calls() []Invoice {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Invoice(nil), n.paid...)
}

var (
	addedOn  = time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	paidOn   = time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)
	fixedNow = time.Date(2026, time.October, 19, 15, 4, 5, 0, time.UTC)
	today    = time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
)

var testCompanies = stubCompanies{
	"apple": {Code: "apple", Name: "Apple Computer", Description: "Maker of OSX."},
	"ibm":   {Code: "ibm", Name: "IBM", Description: "Big blue."},
	"acme":  {Code: "acme", Name: "Acme", Description: "No invoices yet."},
}

func seedInvoices() []Invoice {
	return []Invoice{
		{ID: 1, CompCode: "apple", Amt: 100, AddDate: addedOn},
		{ID: 2, CompCode: "apple", Amt: 200, AddDate: addedOn},
		{ID: 3, CompCode: "apple", Amt: 300, Paid: true, AddDate: addedOn, PaidDate: &paidOn},
		{ID: 4, CompCode: "ibm", Amt: 400, AddDate: addedOn},
	}
}
