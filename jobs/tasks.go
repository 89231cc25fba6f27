package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/biztime/biztime/internal/invoices"
	jobmetrics "github.com/biztime/biztime/internal/jobs"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskInvoicePaid is emitted when an invoice flips from unpaid to paid.
	TaskInvoicePaid = "invoice:paid"
)

const paidDateLayout = "2006-01-02"

// InvoicePaidPayload describes a settled invoice.
type InvoicePaidPayload struct {
	EventID   string  `json:"event_id"`
	InvoiceID int64   `json:"invoice_id"`
	CompCode  string  `json:"comp_code"`
	Amt       float64 `json:"amt"`
	PaidDate  string  `json:"paid_date"`
}

// NewInvoicePaidTask constructs an Asynq task for a paid invoice.
func NewInvoicePaidTask(invoice invoices.Invoice) (*asynq.Task, error) {
	payload := InvoicePaidPayload{
		EventID:   uuid.NewString(),
		InvoiceID: invoice.ID,
		CompCode:  invoice.CompCode,
		Amt:       invoice.Amt,
	}
	if invoice.PaidDate != nil {
		payload.PaidDate = invoice.PaidDate.Format(paidDateLayout)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskInvoicePaid, data), nil
}

// ReceiptJob processes TaskInvoicePaid tasks.
type ReceiptJob struct {
	logger  *slog.Logger
	metrics *jobmetrics.Metrics
}

// NewReceiptJob constructs the job. metrics may be nil.
func NewReceiptJob(logger *slog.Logger, metrics *jobmetrics.Metrics) *ReceiptJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReceiptJob{logger: logger, metrics: metrics}
}

// Handle records the receipt of a paid invoice.
func (j *ReceiptJob) Handle(ctx context.Context, t *asynq.Task) error {
	tracker := j.metrics.Track(TaskInvoicePaid)
	var payload InvoicePaidPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return tracker.End(fmt.Errorf("decode %s payload: %v: %w", TaskInvoicePaid, err, asynq.SkipRetry))
	}
	if payload.InvoiceID <= 0 {
		return tracker.End(fmt.Errorf("%s payload without invoice id: %w", TaskInvoicePaid, asynq.SkipRetry))
	}
	j.logger.InfoContext(ctx, "invoice paid receipt",
		slog.String("event_id", payload.EventID),
		slog.Int64("invoice_id", payload.InvoiceID),
		slog.String("comp_code", payload.CompCode),
		slog.Float64("amt", payload.Amt),
		slog.String("paid_date", payload.PaidDate))
	return tracker.End(nil)
}
