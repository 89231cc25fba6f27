package invoices

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
	List(ctx context.Context) ([]Invoice, error)
	ListByCompany(ctx context.Context, code string) ([]Invoice, error)
	Get(ctx context.Context, id int64) (Invoice, error)
	Create(ctx context.Context, input CreateInput) (Invoice, error)
	// Mutate loads the invoice, lets fn change it and stores the result.
	// The row stays locked until the write commits.
	Mutate(ctx context.Context, id int64, fn func(*Invoice) error) (Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("invoices: list: %w", err)
	}
	invoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[Invoice])
	if err != nil {
		return nil, fmt.Errorf("invoices: list: %w", err)
	}
	return invoices, nil
}

func (r *repository) ListByCompany(ctx context.Context, code string) ([]Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE comp_code=$1 ORDER BY id`, code)
	if err != nil {
		return nil, fmt.Errorf("invoices: list by company: %w", err)
	}
	invoices, err := pgx.CollectRows(rows, pgx.RowToStructByName[Invoice])
	if err != nil {
		return nil, fmt.Errorf("invoices: list by company: %w", err)
	}
	return invoices, nil
}

func (r *repository) Get(ctx context.Context, id int64) (Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1`, id)
	if err != nil {
		return Invoice{}, fmt.Errorf("invoices: get: %w", err)
	}
	return collectOne(rows, id)
}

func (r *repository) Create(ctx context.Context, input CreateInput) (Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`INSERT INTO invoices (comp_code, amt, add_date) VALUES ($1, $2, $3) RETURNING `+invoiceColumns,
		input.CompCode, input.Amt, input.AddDate)
	if err != nil {
		return Invoice{}, translate(err, input.CompCode)
	}
	invoice, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Invoice])
	if err != nil {
		return Invoice{}, translate(err, input.CompCode)
	}
	return invoice, nil
}

func (r *repository) Mutate(ctx context.Context, id int64, fn func(*Invoice) error) (Invoice, error) {
	var updated Invoice
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id=$1 FOR UPDATE`, id)
		if err != nil {
			return fmt.Errorf("invoices: lock: %w", err)
		}
		current, err := collectOne(rows, id)
		if err != nil {
			return err
		}
		if err := fn(&current); err != nil {
			return err
		}

		rows, err = tx.Query(ctx,
			`UPDATE invoices SET amt=$1, paid=$2, paid_date=$3 WHERE id=$4 RETURNING `+invoiceColumns,
			current.Amt, current.Paid, current.PaidDate, id)
		if err != nil {
			return translate(err, current.CompCode)
		}
		updated, err = collectOne(rows, id)
		return err
	})
	if err != nil {
		return Invoice{}, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("invoices: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(id)
	}
	return nil
}

func collectOne(rows pgx.Rows, id int64) (Invoice, error) {
	invoice, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Invoice])
	if errors.Is(err, pgx.ErrNoRows) {
		return Invoice{}, notFound(id)
	}
	if err != nil {
		return Invoice{}, translate(err, "")
	}
	return invoice, nil
}

func translate(err error, compCode string) error {
	switch db.PgErrorCode(err) {
	case db.CodeForeignKeyViolation:
		return shared.Invalid("company %q does not exist", compCode)
	case db.CodeCheckViolation:
		return shared.Invalid("amt must be greater than zero")
	}
	return fmt.Errorf("invoices: %w", err)
}

func notFound(id int64) error {
	return shared.NotFound("invoice not found: %d", id)
}
