package invoices

import (
	"context"
	"log/slog"
	"time"

	"github.com/biztime/biztime/internal/companies"
)

// CompanyLookup resolves a company by code. *companies.Service satisfies it.
type CompanyLookup interface {
	Get(ctx context.Context, code string) (companies.Company, error)
}

// PaymentNotifier is told about invoices that have just been marked paid.
type PaymentNotifier interface {
	InvoicePaid(ctx context.Context, invoice Invoice) error
}

type Service struct {
	repo      Repository
	companies CompanyLookup
	notifier  PaymentNotifier
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires the invoice service. notifier may be nil.
func NewService(repo Repository, companies CompanyLookup, notifier PaymentNotifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:      repo,
		companies: companies,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []Invoice{}
	}
	return invoices, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Invoice, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new unpaid invoice dated today.
func (s *Service) Create(ctx context.Context, form CreateForm) (Invoice, error) {
	return s.repo.Create(ctx, CreateInput{
		CompCode: form.CompCode,
		Amt:      form.Amt,
		AddDate:  dateOf(s.now()),
	})
}

// Update replaces the amount and applies any payment transition requested by
// form. Marking an invoice paid notifies the PaymentNotifier; a failed
// notification is logged and does not fail the update.
func (s *Service) Update(ctx context.Context, id int64, form UpdateForm) (Invoice, error) {
	today := s.now()
	transition := TransitionNone
	updated, err := s.repo.Mutate(ctx, id, func(inv *Invoice) error {
		transition = ApplyUpdate(inv, form, today)
		return nil
	})
	if err != nil {
		return Invoice{}, err
	}

	if transition != TransitionNone {
		s.logger.Info("invoice payment state changed",
			slog.Int64("invoice_id", updated.ID),
			slog.String("transition", transition.String()))
	}
	if transition == TransitionPaid && s.notifier != nil {
		if err := s.notifier.InvoicePaid(ctx, updated); err != nil {
			s.logger.Warn("notify invoice paid", slog.Int64("invoice_id", updated.ID), slog.Any("error", err))
		}
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// ListByCompany returns the company with its invoices. A company without
// invoices comes back with an empty list; only a missing company is an error.
func (s *Service) ListByCompany(ctx context.Context, code string) (CompanyInvoices, error) {
	company, err := s.companies.Get(ctx, code)
	if err != nil {
		return CompanyInvoices{}, err
	}
	invoices, err := s.repo.ListByCompany(ctx, company.Code)
	if err != nil {
		return CompanyInvoices{}, err
	}
	if invoices == nil {
		invoices = []Invoice{}
	}
	return CompanyInvoices{Company: company, Invoices: invoices}, nil
}
