package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Service is a catalog work item. Budgets and orders reference it by ID only,
// so catalog edits never touch totals already stored on them.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    string
	Category    string
}

const ServiceCodeSequence = "service_code"

// FormatServiceCode renders the shop code for the n-th catalog service (S0001, S0002, ...).
func FormatServiceCode(n int64) string {
	return fmt.Sprintf("S%04d", n)
}

// IndexServices maps the catalog by ID.
func IndexServices(services []Service) map[string]Service {
	idx := make(map[string]Service, len(services))
	for _, s := range services {
		idx[s.ID] = s
	}
	return idx
}
