package domain

import (
	"strings"
	"time"
)

// DefaultConsultant is used in the opening paragraph when the request
// does not name a consultant.
const DefaultConsultant = "the Consultant"

// OrderRequest carries every form field for one document generation.
// A request is built fresh per generation and discarded once the
// document bytes are produced; nothing in it is shared or retained.
type OrderRequest struct {
	Title     string
	IPONumber string

	ClientName    string
	AgreementDate time.Time

	ProjectName      string
	ProjectNameLine2 string
	ProjectManager   string
	ProjectNumber    string

	ProjectUnderstanding string
	LotUnderstanding     string

	// ConsultantName overrides DefaultConsultant in the opening
	// paragraph when set.
	ConsultantName string

	// Tasks in insertion order; order determines print order.
	Tasks []TaskLine
}

// Consultant returns the consultant name to print.
func (r *OrderRequest) Consultant() string {
	if r.ConsultantName != "" {
		return r.ConsultantName
	}
	return DefaultConsultant
}

// DisplayProjectName returns ProjectName, falling back to Title when
// the identification section name was left blank.
func (r *OrderRequest) DisplayProjectName() string {
	if r.ProjectName != "" {
		return r.ProjectName
	}
	return r.Title
}

// SelectedTasks returns the selected tasks in insertion order.
func (r *OrderRequest) SelectedTasks() []TaskLine {
	var out []TaskLine
	for _, t := range r.Tasks {
		if t.Selected {
			out = append(out, t)
		}
	}
	return out
}

// TotalFee returns the sum of the fees of the selected tasks, in
// cents. It is always computed from the task list, never stored, so it
// cannot drift from the lines that produced it.
func (r *OrderRequest) TotalFee() int64 {
	var total int64
	for _, t := range r.Tasks {
		if t.Selected {
			total += t.FeeCents
		}
	}
	return total
}

// Validate checks every required field and every selected task.
// It returns a *ValidationError listing all problems found, or nil
// when the request is ready to render.
func (r *OrderRequest) Validate() error {
	var verr ValidationError

	required := []struct {
		field, value string
	}{
		{"title", r.Title},
		{"ipo_number", r.IPONumber},
		{"client_name", r.ClientName},
		{"project_manager", r.ProjectManager},
		{"project_number", r.ProjectNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			verr.Add(f.field, "is required")
		}
	}

	if r.AgreementDate.IsZero() {
		verr.Add("agreement_date", "is required")
	}

	selected := 0
	for i, t := range r.Tasks {
		if !t.Selected {
			continue
		}
		selected++
		if strings.TrimSpace(t.Description) == "" {
			verr.Addf("tasks[%d].description", i, "is required")
		}
		if t.FeeCents < 0 {
			verr.Addf("tasks[%d].fee", i, "must not be negative")
		}
	}
	if selected == 0 {
		verr.Add("tasks", "select at least one task")
	}

	if len(verr.Fields) > 0 {
		return &verr
	}
	return nil
}
