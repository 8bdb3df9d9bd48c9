package testutil

import (
	"time"

	"github.com/dmontes/ipogen/internal/domain"
)

// NewOrderRequest returns a complete, valid order request with two
// selected tasks (total fee $1,500.00) and one unselected task.
func NewOrderRequest() *domain.OrderRequest {
	return &domain.OrderRequest{
		Title:          "Bridge Inspection",
		IPONumber:      "IPO-042",
		ClientName:     "Acme County",
		AgreementDate:  time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		ProjectName:    "Bridge Inspection",
		ProjectManager: "J. Rivera",
		ProjectNumber:  "PN-100",
		ProjectUnderstanding: "The project consists of a structural inspection of the " +
			"county bridge inventory with prioritized repair recommendations.",
		Tasks: []domain.TaskLine{
			{Description: "Survey", FeeCents: 120000, FeeBasis: "Lump Sum", Selected: true},
			{Description: "Drafting", FeeCents: 80000, FeeBasis: "Lump Sum", Selected: false},
			{Description: "Review", FeeCents: 30000, FeeBasis: "Lump Sum", Selected: true},
		},
	}
}
