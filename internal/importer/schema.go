// Package importer loads order requests from JSON files for
// non-interactive generation.
package importer

// OrderImport is the JSON file schema. Dates use YYYY-MM-DD and fees
// are decimal dollar strings such as "1200.00".
type OrderImport struct {
	Title     string `json:"title"`
	IPONumber string `json:"ipo_number"`

	ClientName    string `json:"client_name"`
	AgreementDate string `json:"agreement_date"`

	ProjectName      string `json:"project_name,omitempty"`
	ProjectNameLine2 string `json:"project_name_line2,omitempty"`
	ProjectManager   string `json:"project_manager"`
	ProjectNumber    string `json:"project_number"`

	ProjectUnderstanding string `json:"project_understanding,omitempty"`
	LotUnderstanding     string `json:"lot_understanding,omitempty"`

	ConsultantName string `json:"consultant_name,omitempty"`

	Tasks []TaskImport `json:"tasks"`
}

// TaskImport is one task line in the file. When Code names a catalog
// task, empty fields are filled from the catalog before validation.
type TaskImport struct {
	Code        string   `json:"code,omitempty"`
	Description string   `json:"description,omitempty"`
	Paragraphs  []string `json:"paragraphs,omitempty"`
	Fee         string   `json:"fee,omitempty"`
	FeeBasis    string   `json:"fee_basis,omitempty"`
	Selected    bool     `json:"selected"`
}
