package domain

import "time"

// TaskLine is one selectable work item on an order. Only selected
// lines are rendered and summed.
type TaskLine struct {
	// Code is the catalog task code (e.g. "110"); empty for ad-hoc
	// tasks entered directly on the form.
	Code        string
	Description string
	// Paragraphs hold the scope-of-services text printed under the
	// task heading. Short lines that name a plan sheet are rendered
	// as italic sub-section headings.
	Paragraphs []string
	FeeCents   int64
	FeeBasis   string
	Selected   bool
}

// CatalogTask is a predefined task with a default fee and scope text,
// used to pre-fill task lines on the form.
type CatalogTask struct {
	Code            string
	Name            string
	DefaultFeeCents int64
	FeeBasis        string
	Paragraphs      []string
}

// TaskLine converts a catalog task into an unselected task line
// carrying the catalog defaults.
func (c *CatalogTask) TaskLine() TaskLine {
	return TaskLine{
		Code:        c.Code,
		Description: c.Name,
		Paragraphs:  append([]string(nil), c.Paragraphs...),
		FeeCents:    c.DefaultFeeCents,
		FeeBasis:    c.FeeBasis,
	}
}

// OrderRecord is the history row written after a successful
// generation: metadata only, never the document itself.
type OrderRecord struct {
	ID         string
	IPONumber  string
	Title      string
	ClientName string
	TotalCents int64
	Filename   string
	CreatedAt  time.Time
}
