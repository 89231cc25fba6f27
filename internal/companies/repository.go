package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/platform/db"
	"github.com/biztime/biztime/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, code string) (Company, error)
	Create(ctx context.Context, company Company) (Company, error)
	Update(ctx context.Context, code string, company Company) (Company, error)
	Delete(ctx context.Context, code string) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const companyColumns = `code, name, description`

func (r *repository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("companies: list: %w", err)
	}
	companies, err := pgx.CollectRows(rows, pgx.RowToStructByName[Company])
	if err != nil {
		return nil, fmt.Errorf("companies: list: %w", err)
	}
	return companies, nil
}

func (r *repository) Get(ctx context.Context, code string) (Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE code=$1`, code)
	if err != nil {
		return Company{}, fmt.Errorf("companies: get: %w", err)
	}
	return collectOne(rows, code)
}

func (r *repository) Create(ctx context.Context, company Company) (Company, error) {
	rows, err := r.pool.Query(ctx,
		`INSERT INTO companies (code, name, description) VALUES ($1, $2, $3) RETURNING `+companyColumns,
		company.Code, company.Name, company.Description)
	if err != nil {
		return Company{}, translate(err, company.Code)
	}
	return collectOne(rows, company.Code)
}

func (r *repository) Update(ctx context.Context, code string, company Company) (Company, error) {
	rows, err := r.pool.Query(ctx,
		`UPDATE companies SET name=$1, description=$2 WHERE code=$3 RETURNING `+companyColumns,
		company.Name, company.Description, code)
	if err != nil {
		return Company{}, translate(err, code)
	}
	return collectOne(rows, code)
}

func (r *repository) Delete(ctx context.Context, code string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE code=$1`, code)
	if err != nil {
		return fmt.Errorf("companies: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(code)
	}
	return nil
}

// collectOne reads the single row of a lookup or RETURNING query. Constraint
// violations on INSERT/UPDATE surface here, when the row is read.
func collectOne(rows pgx.Rows, code string) (Company, error) {
	company, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Company])
	if errors.Is(err, pgx.ErrNoRows) {
		return Company{}, notFound(code)
	}
	if err != nil {
		return Company{}, translate(err, code)
	}
	return company, nil
}

func translate(err error, code string) error {
	if db.PgErrorCode(err) == db.CodeUniqueViolation {
		return shared.Duplicate("company %q already exists", code)
	}
	return fmt.Errorf("companies: %w", err)
}

func notFound(code string) error {
	return shared.NotFound("company not found: %s", code)
}
