package invoices

import (
	"time"

	"github.com/biztime/biztime/internal/companies"
)

// Invoice represents a row of the invoices table. PaidDate is set exactly
// when Paid is true.
type Invoice struct {
	ID       int64      `json:"id" db:"id"`
	CompCode string     `json:"comp_code" db:"comp_code"`
	Amt      float64    `json:"amt" db:"amt"`
	Paid     bool       `json:"paid" db:"paid"`
	AddDate  time.Time  `json:"add_date" db:"add_date"`
	PaidDate *time.Time `json:"paid_date" db:"paid_date"`
}

// CompanyInvoices is a company with every invoice billed to it.
type CompanyInvoices struct {
	companies.Company
	Invoices []Invoice `json:"invoices"`
}
