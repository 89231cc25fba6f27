package companies

import (
	"context"

	"github.com/biztime/biztime/internal/shared"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	companies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []Company{}
	}
	return companies, nil
}

func (s *Service) Get(ctx context.Context, code string) (Company, error) {
	return s.repo.Get(ctx, code)
}

// Create derives the company code from its name. Duplicate codes are left
// for the database to reject.
func (s *Service) Create(ctx context.Context, form CompanyForm) (Company, error) {
	if err := s.validate(form); err != nil {
		return Company{}, err
	}
	code := Slugify(form.Name)
	if code == "" {
		return Company{}, shared.Invalid("name %q does not produce a usable code", form.Name)
	}
	return s.repo.Create(ctx, Company{
		Code:        code,
		Name:        form.Name,
		Description: form.Description,
	})
}

func (s *Service) Update(ctx context.Context, code string, form CompanyForm) (Company, error) {
	if err := s.validate(form); err != nil {
		return Company{}, err
	}
	return s.repo.Update(ctx, code, Company{
		Name:        form.Name,
		Description: form.Description,
	})
}

func (s *Service) Delete(ctx context.Context, code string) error {
	return s.repo.Delete(ctx, code)
}
