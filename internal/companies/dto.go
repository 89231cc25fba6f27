package companies

// CompanyForm is the request body accepted by POST and PUT /companies.
type CompanyForm struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}
