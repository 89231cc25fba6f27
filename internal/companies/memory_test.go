package companies

import (
	"context"
	"sync"

	"github.com/biztime/biztime/internal/shared"
)

type memoryRepo struct {
	mu    sync.Mutex
	order []string
	rows  map[string]Company

	listErr error
}

func newMemoryRepo(seed ...Company) *memoryRepo {
	r := &memoryRepo{rows: make(map[string]Company)}
	for _, c := range seed {
		r.order = append(r.order, c.Code)
		r.rows[c.Code] = c
	}
	return r
}

func (r *memoryRepo) List(ctx context.Context) ([]Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []Company
	for _, code := range r.order {
		out = append(out, r.rows[code])
	}
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, code string) (Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.rows[code]
	if !ok {
		return Company{}, notFound(code)
	}
	return c, nil
}

func (r *memoryRepo) Create(ctx context.Context, company Company) (Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[company.Code]; ok {
		return Company{}, shared.Duplicate("company %q already exists", company.Code)
	}
	r.order = append(r.order, company.Code)
	r.rows[company.Code] = company
	return company, nil
}

func (r *memoryRepo) Update(ctx context.Context, code string, company Company) (Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.rows[code]
	if !ok {
		return Company{}, notFound(code)
	}
	current.Name = company.Name
	current.Description = company.Description
	r.rows[code] = current
	return current, nil
}

func (r *memoryRepo) Delete(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[code]; !ok {
		return notFound(code)
	}
	delete(r.rows, code)
	for i, c := range r.order {
		if c == code {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
