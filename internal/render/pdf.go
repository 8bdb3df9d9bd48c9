// Package render turns a validated order request into the finished
// Individual Project Order document. Rendering is a pure
// transformation: one request in, one PDF byte buffer out, no disk or
// network access.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/dmontes/ipogen/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

// Fixed typography: a single font family at the sizes the agreement
// template prescribes.
const (
	fontFamily   = "Helvetica"
	titleSize    = 12
	subtitleSize = 10
	bodySize     = 11
	footerSize   = 9

	lineHeight = 14 // points, body leading

	marginPt = 72  // 1 inch
	labelCol = 180 // 2.5 inch tab stop for identification labels
	feeCol   = 110 // right-aligned fee column in the summary
)

// Renderer produces IPO documents. The zero value is not usable; call
// NewRenderer.
type Renderer struct {
	now      func() time.Time
	compress bool
}

// NewRenderer returns a Renderer using the system clock.
func NewRenderer() *Renderer {
	return &Renderer{now: time.Now, compress: true}
}

// Render produces the finished document for a validated request.
// Output depends only on the request and the render day: the embedded
// creation date is pinned to midnight UTC, so re-rendering the same
// request on the same day is byte-identical.
func (r *Renderer) Render(req *domain.OrderRequest) ([]byte, error) {
	day := r.renderDay()

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(marginPt, marginPt, marginPt)
	doc.SetAutoPageBreak(true, marginPt)
	doc.SetCreationDate(day)
	doc.SetCompression(r.compress)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetFooterFunc(func() {
		doc.SetY(-marginPt + 18)
		doc.SetFont(fontFamily, "", footerSize)
		doc.CellFormat(0, 12, fmt.Sprintf("rev %s", day.Format("01/2006")), "", 0, "L", false, 0, "")
	})

	doc.AddPage()

	writeTitle(doc, tr, req)
	writeOpening(doc, tr, req)
	writeIdentification(doc, tr, req)
	if req.ProjectUnderstanding != "" {
		writeSection(doc, tr, "Overall Project Understanding:", req.ProjectUnderstanding)
	}
	if req.LotUnderstanding != "" {
		writeSection(doc, tr, "Lot Specific Project Understanding:", req.LotUnderstanding)
	}
	writeScope(doc, tr, req)
	writeFeeSummary(doc, tr, req)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &domain.RenderError{Err: err}
	}
	return buf.Bytes(), nil
}

// renderDay returns the current day truncated to midnight UTC.
func (r *Renderer) renderDay() time.Time {
	now := r.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func writeTitle(doc *gofpdf.Fpdf, tr func(string) string, req *domain.OrderRequest) {
	doc.SetFont(fontFamily, "B", titleSize)
	doc.CellFormat(0, lineHeight, tr(strings.ToUpper(req.Title)), "", 1, "C", false, 0, "")

	doc.SetFont(fontFamily, "B", subtitleSize)
	subtitle := fmt.Sprintf("INDIVIDUAL PROJECT ORDER NUMBER %s", strings.ToUpper(req.IPONumber))
	doc.CellFormat(0, lineHeight, tr(subtitle), "", 1, "C", false, 0, "")

	doc.Ln(2 * lineHeight)
}

func writeOpening(doc *gofpdf.Fpdf, tr func(string) string, req *domain.OrderRequest) {
	text := fmt.Sprintf(
		"Describing a specific agreement between %s (the Consultant), and %s (the Client) "+
			"in accordance with the terms of the Master Agreement for Continuing Professional "+
			"Services dated %s, which is incorporated herein by reference.",
		req.Consultant(), req.ClientName, req.AgreementDate.Format("January 2, 2006"))

	doc.SetFont(fontFamily, "", bodySize)
	doc.MultiCell(0, lineHeight, tr(text), "", "J", false)
	doc.Ln(lineHeight)
}

func writeIdentification(doc *gofpdf.Fpdf, tr func(string) string, req *domain.OrderRequest) {
	writeHeading(doc, tr, "Identification of Project:")

	writeIDLine(doc, tr, "Project Name:", req.DisplayProjectName())
	if req.ProjectNameLine2 != "" {
		writeIDLine(doc, tr, "", req.ProjectNameLine2)
	}
	writeIDLine(doc, tr, "IPO Number:", req.IPONumber)
	writeIDLine(doc, tr, "Agreement Date:", req.AgreementDate.Format("January 2, 2006"))
	writeIDLine(doc, tr, "Project Manager:", req.ProjectManager)
	writeIDLine(doc, tr, "Project Number:", req.ProjectNumber)

	doc.Ln(lineHeight)
}

// writeIDLine writes one identification row with the value aligned to
// the 2.5" label column.
func writeIDLine(doc *gofpdf.Fpdf, tr func(string) string, label, value string) {
	doc.SetFont(fontFamily, "B", bodySize)
	doc.CellFormat(labelCol, lineHeight, tr(label), "", 0, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, tr(value), "", 1, "L", false, 0, "")
}

func writeSection(doc *gofpdf.Fpdf, tr func(string) string, heading, body string) {
	writeHeading(doc, tr, heading)
	doc.SetFont(fontFamily, "", bodySize)
	doc.MultiCell(0, lineHeight, tr(body), "", "J", false)
	doc.Ln(lineHeight)
}

func writeScope(doc *gofpdf.Fpdf, tr func(string) string, req *domain.OrderRequest) {
	writeHeading(doc, tr, "Specific scope of basic Services:")

	for _, task := range req.SelectedTasks() {
		doc.SetFont(fontFamily, "BU", bodySize)
		doc.CellFormat(0, lineHeight, tr(taskHeading(task)), "", 1, "L", false, 0, "")
		doc.Ln(lineHeight)

		for _, para := range task.Paragraphs {
			if subsectionHeading(para) {
				doc.SetFont(fontFamily, "I", bodySize)
				doc.CellFormat(0, lineHeight, tr(para), "", 1, "L", false, 0, "")
				continue
			}
			doc.SetFont(fontFamily, "", bodySize)
			doc.MultiCell(0, lineHeight, tr(para), "", "J", false)
			doc.Ln(lineHeight)
		}
		if len(task.Paragraphs) == 0 {
			doc.Ln(lineHeight)
		}
	}
}

// writeFeeSummary lists each selected task with its fee and the
// computed total. The total is derived from the task lines at render
// time, never carried separately.
func writeFeeSummary(doc *gofpdf.Fpdf, tr func(string) string, req *domain.OrderRequest) {
	writeHeading(doc, tr, "Summary of Fees:")

	width, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	nameCol := width - left - right - feeCol

	for _, task := range req.SelectedTasks() {
		label := taskHeading(task)
		if task.FeeBasis != "" {
			label = fmt.Sprintf("%s (%s)", label, task.FeeBasis)
		}
		doc.SetFont(fontFamily, "", bodySize)
		doc.CellFormat(nameCol, lineHeight, tr(label), "", 0, "L", false, 0, "")
		doc.CellFormat(feeCol, lineHeight, tr(domain.FormatUSD(task.FeeCents)), "", 1, "R", false, 0, "")
	}

	doc.Ln(lineHeight / 2)
	doc.SetFont(fontFamily, "B", bodySize)
	doc.CellFormat(nameCol, lineHeight, "Total Fee", "", 0, "L", false, 0, "")
	doc.CellFormat(feeCol, lineHeight, tr(domain.FormatUSD(req.TotalFee())), "", 1, "R", false, 0, "")
}

func writeHeading(doc *gofpdf.Fpdf, tr func(string) string, text string) {
	doc.SetFont(fontFamily, "BU", bodySize)
	doc.CellFormat(0, lineHeight, tr(text), "", 1, "L", false, 0, "")
	doc.Ln(lineHeight)
}

// taskHeading formats the printed heading for a task line. Catalog
// codes print as "Task 110 - Engineering Design" with the discipline
// prefix dropped, matching the agreement template.
func taskHeading(task domain.TaskLine) string {
	name := strings.Replace(task.Description, "Civil ", "", 1)
	if task.Code == "" {
		return name
	}
	return fmt.Sprintf("Task %s – %s", task.Code, name)
}

// Sheet names and similar short labels inside construction-document
// scope text print as italic sub-section headings.
var subsectionKeywords = []string{
	"cover sheet", "utility plan", "site layout", "site plan",
	"grading plan", "drainage plan", "paving", "erosion control",
	"erosion and sediment", "detail", "existing conditions", "demolition",
}

// subsectionHeading reports whether a scope paragraph is a sheet-name
// style sub-section heading: short, keyword-bearing, and not a full
// sentence.
func subsectionHeading(s string) bool {
	if len(s) >= 100 || strings.HasSuffix(s, ".") {
		return false
	}
	lower := strings.ToLower(s)
	for _, kw := range subsectionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Filename derives the download filename from the IPO number and
// project name, e.g. "IPO_01_Fletcher_District_Phase_1.pdf".
func Filename(req *domain.OrderRequest) string {
	name := sanitize(req.DisplayProjectName())
	if len(name) > 30 {
		name = name[:30]
	}
	name = strings.Trim(name, "_")
	return fmt.Sprintf("IPO_%s_%s.pdf", sanitize(req.IPONumber), name)
}

// sanitize keeps letters, digits, dashes and underscores, mapping
// whitespace to underscores and dropping everything else.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ' || r == '\t':
			b.WriteRune('_')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}
