package companies

// Company represents a row of the companies table. Code is the primary key
// and never changes after creation.
type Company struct {
	Code        string `json:"code" db:"code"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
