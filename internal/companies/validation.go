package companies

import (
	"strings"

	"github.com/biztime/biztime/internal/shared"
)

func (s *Service) validate(form CompanyForm) error {
	if strings.TrimSpace(form.Name) == "" {
		return shared.Invalid("name is required")
	}
	return nil
}
