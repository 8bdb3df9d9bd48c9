package db

import (
	"database/sql"
	"fmt"
)

type seedTask struct {
	code       string
	name       string
	feeCents   int64
	feeBasis   string
	paragraphs []string
}

// Default task catalog. Codes, names and default fees follow the
// standard civil services fee schedule; scope text uses "the
// Consultant" so the rendered document stays client-neutral.
var seedTasks = []seedTask{
	{
		code: "110", name: "Civil Engineering Design", feeCents: 4000000,
		feeBasis: "Hourly, Not-to-Exceed",
		paragraphs: []string{
			"The Consultant will prepare an onsite drainage report with supporting calculations showing the proposed development plan is consistent with the governing water management district basis of review. The drainage report will include limited stormwater modeling to demonstrate that the site development will maintain the existing discharge rate and provide the required stormwater attenuation.",
			"The onsite drainage report will include calculations for 25-year 24-hour and 100-year 24-hour design storm conditions. A base stormwater design will be provided for the project site showing reasonable locations for stormwater conveyance features and stormwater management pond sizing.",
		},
	},
	{
		code: "120", name: "Civil Schematic Design", feeCents: 3500000,
		feeBasis: "Hourly, Not-to-Exceed",
		paragraphs: []string{
			"The Consultant will prepare Civil Schematic Design deliverables in accordance with the Client's design project deliverables checklist, consisting of a civil site plan, established finish floor elevations, utility will-serve letters and points of service, and utility routing and easement requirements.",
		},
	},
	{
		code: "130", name: "Civil Design Development", feeCents: 4500000,
		feeBasis: "Hourly, Not-to-Exceed",
		paragraphs: []string{
			"Upon Client approval of the Schematic Design task, the Consultant will prepare Design Development plans of the civil design. These documents will be approximately 50% complete and will include detail for code review and preliminary pricing but will not include enough detail for construction bidding.",
		},
	},
	{
		code: "140", name: "Civil Construction Documents", feeCents: 5000000,
		feeBasis: "Hourly, Not-to-Exceed",
		paragraphs: []string{
			"Based on the approved development plan, the Consultant will provide engineering and design services for the preparation of site construction plans for on-site improvements.",
			"Cover Sheet",
			"The cover sheet includes plan contents, vicinity map, legal description and team identification.",
			"Existing Conditions Plan/Demolition Plan",
			"This sheet will include and identify the required demolition of the existing items on the project site.",
			"Site Layout Plan",
			"This sheet will include building setback lines, property lines, outline of building footprint, parking areas, access ramps, sidewalks, crosswalks, driveways, and traffic lanes.",
			"Grading and Drainage Plan",
			"This sheet will include existing and proposed spot elevations and contours, building finish floor elevations, parking area drainage patterns, and stormwater inlet and pipe locations and sizes.",
			"Utility Plan",
			"This sheet will show the location and size of all water, sanitary sewer and reclaimed water facilities required to serve the development.",
			"Erosion and Sediment Control Plan",
			"This sheet will include erosion and sediment control measures designed to be implemented during construction.",
			"Details",
			"Standard and modified typical construction details will be provided.",
		},
	},
	{
		code: "150", name: "Civil Permitting", feeCents: 4000000,
		feeBasis: "Hourly, Not-to-Exceed",
		paragraphs: []string{
			"The Consultant will prepare and submit on the Client's behalf the permitting packages required for review and approval of the construction documents, and will attend meetings required to obtain the associated agency approvals.",
			"The Consultant will coordinate with the reviewing jurisdictions and utility providers as needed to obtain the necessary regulatory and utility approval of the site plans and associated drainage facilities, and will assist the Client with meetings necessary to gain site plan approval.",
			"This scope does not anticipate a geotechnical or environmental assessment report, survey, topographic survey, or arborist report being required for the permit applications. Permit applications will be submitted using the electronic permitting systems of the respective jurisdictions where applicable.",
		},
	},
	{
		code: "210", name: "Meetings and Coordination", feeCents: 2000000,
		feeBasis: "Hourly, Not-to-Exceed",
		paragraphs: []string{
			"The Consultant will be available to provide miscellaneous project support at the direction of the Client. This task may include design meetings, additional permit support, permit research, design coordination meetings, scheduling, coordination with other client consultants, and responses to additional rounds of agency comments.",
		},
	},
}

// seedCatalog inserts the default tasks when the catalog is empty.
// An existing catalog, including one the user has edited, is left
// untouched.
func seedCatalog(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM catalog_tasks`).Scan(&count); err != nil {
		return fmt.Errorf("counting catalog tasks: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i, t := range seedTasks {
		if _, err := tx.Exec(
			`INSERT INTO catalog_tasks (code, name, default_fee_cents, fee_basis, position) VALUES (?, ?, ?, ?, ?)`,
			t.code, t.name, t.feeCents, t.feeBasis, i,
		); err != nil {
			return fmt.Errorf("inserting catalog task %s: %w", t.code, err)
		}
		for j, body := range t.paragraphs {
			if _, err := tx.Exec(
				`INSERT INTO catalog_paragraphs (task_code, position, body) VALUES (?, ?, ?)`,
				t.code, j, body,
			); err != nil {
				return fmt.Errorf("inserting paragraph %d for task %s: %w", j, t.code, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	committed = true
	return nil
}
