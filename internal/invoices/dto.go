package invoices

import "time"

// CreateForm is the request body accepted by POST /invoices.
type CreateForm struct {
	CompCode string  `json:"comp_code" validate:"required"`
	Amt      float64 `json:"amt" validate:"required"`
}

// UpdateForm is the request body accepted by PUT /invoices/{id}. A nil Paid
// leaves the payment state alone.
type UpdateForm struct {
	Amt  float64 `json:"amt" validate:"required"`
	Paid *bool   `json:"paid"`
}

// CreateInput is what the repository inserts.
type CreateInput struct {
	CompCode string
	Amt      float64
	AddDate  time.Time
}
