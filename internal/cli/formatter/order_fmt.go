package formatter

import (
	"fmt"
	"strings"

	"github.com/dmontes/ipogen/internal/domain"
)

// FormatOrderSummary renders the pre-generation summary: header
// fields, selected tasks with fees, and the computed total.
func FormatOrderSummary(req *domain.OrderRequest) string {
	var b strings.Builder

	b.WriteString(Header("Individual Project Order"))
	b.WriteString("\n\n")

	writeField(&b, "Title", req.Title)
	writeField(&b, "IPO Number", req.IPONumber)
	writeField(&b, "Client", req.ClientName)
	writeField(&b, "Agreement Date", req.AgreementDate.Format("January 2, 2006"))
	writeField(&b, "Project Name", req.DisplayProjectName())
	if req.ProjectNameLine2 != "" {
		writeField(&b, "", req.ProjectNameLine2)
	}
	writeField(&b, "Project Manager", req.ProjectManager)
	writeField(&b, "Project Number", req.ProjectNumber)
	b.WriteString("\n")

	selected := req.SelectedTasks()
	if len(selected) == 0 {
		b.WriteString(Dim("No tasks selected.") + "\n")
		return b.String()
	}

	b.WriteString(Bold("Selected Tasks") + "\n")
	for _, task := range selected {
		label := task.Description
		if task.Code != "" {
			label = fmt.Sprintf("Task %s: %s", task.Code, task.Description)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleGreen.Render("✓"),
			StyleFg.Render(label),
			Money(domain.FormatUSD(task.FeeCents))))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n",
		Bold("Total Fee:"),
		Money(domain.FormatUSD(req.TotalFee()))))

	return b.String()
}

// FormatCatalog renders the task catalog as an aligned table.
func FormatCatalog(tasks []*domain.CatalogTask) string {
	var b strings.Builder

	b.WriteString(Header("Task Catalog"))
	b.WriteString("\n\n")

	nameWidth := 0
	for _, t := range tasks {
		if len(t.Name) > nameWidth {
			nameWidth = len(t.Name)
		}
	}

	for _, t := range tasks {
		b.WriteString(fmt.Sprintf("  %s  %-*s  %12s  %s\n",
			StyleYellow.Render(t.Code),
			nameWidth, t.Name,
			domain.FormatUSD(t.DefaultFeeCents),
			Dim(t.FeeBasis)))
	}

	return b.String()
}

// FormatHistory renders previously generated orders, newest first.
func FormatHistory(records []*domain.OrderRecord) string {
	var b strings.Builder

	b.WriteString(Header("Generated Orders"))
	b.WriteString("\n\n")

	for _, rec := range records {
		b.WriteString(fmt.Sprintf("  %s  IPO %s  %s — %s  %s\n",
			Dim(rec.CreatedAt.Local().Format("2006-01-02 15:04")),
			StyleYellow.Render(rec.IPONumber),
			rec.Title,
			rec.ClientName,
			Money(domain.FormatUSD(rec.TotalCents))))
		b.WriteString(fmt.Sprintf("      %s\n", Dim(rec.Filename)))
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if label != "" {
		label += ":"
	}
	// Pad before styling so ANSI escapes do not skew the column width.
	b.WriteString(fmt.Sprintf("  %s  %s\n", Dim(fmt.Sprintf("%-16s", label)), value))
}
