package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/dmontes/ipogen/internal/cli/formatter"
	"github.com/dmontes/ipogen/internal/domain"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Fill in an order interactively and generate the document",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the order form requires an interactive terminal; use `ipogen generate FILE` instead")
			}

			ctx := context.Background()
			req, err := runOrderWizard(ctx, app)
			if err != nil {
				return err
			}
			if req == nil {
				fmt.Println(formatter.Dim("Cancelled."))
				return nil
			}

			out, err := app.Orders.Generate(ctx, req)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = out.Filename
			}
			if err := os.WriteFile(path, out.Document, 0644); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}

			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("✓"), formatter.Bold("Document generated"))
			fmt.Printf("  %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (default: derived from the IPO number and project name)")

	return cmd
}

// runOrderWizard walks the user through the order form. It returns a
// populated request, or nil if the user declined generation.
func runOrderWizard(ctx context.Context, app *App) (*domain.OrderRequest, error) {
	lines, err := app.Catalog.TaskLines(ctx)
	if err != nil {
		return nil, err
	}

	var (
		title, ipoNumber                string
		clientName, agreementDate       string
		projectName, projectNameLine2   string
		projectManager, projectNumber   string
		understanding, lotUnderstanding string
		selectedCodes                   []string
	)

	options := make([]huh.Option[string], 0, len(lines))
	for _, line := range lines {
		label := fmt.Sprintf("%s — %s (%s)", line.Code, line.Description, domain.FormatUSD(line.FeeCents))
		options = append(options, huh.NewOption(label, line.Code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			requiredInput("Project Title", "USF Fletcher District – Phase 1", &title),
			requiredInput("IPO Number", "01", &ipoNumber),
			requiredInput("Client Name", "ACE Fletcher LLC", &clientName),
			dateInput("Master Agreement Date", "", &agreementDate),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Project Name (identification section, blank to reuse the title)").
				Value(&projectName),
			huh.NewInput().
				Title("Project Name Line 2 (optional)").
				Value(&projectNameLine2),
			requiredInput("Project Manager", "D. Ballard, PE", &projectManager),
			requiredInput("Project Number", "145683001", &projectNumber),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Overall Project Understanding").
				Value(&understanding),
			huh.NewText().
				Title("Lot Specific Project Understanding (optional)").
				Value(&lotUnderstanding),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Tasks to Include").
				Options(options...).
				Value(&selectedCodes),
		),
	).WithTheme(ipogenHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running order form: %w", err)
	}

	date, err := time.Parse("2006-01-02", agreementDate)
	if err != nil {
		return nil, fmt.Errorf("invalid agreement date %q: %w", agreementDate, err)
	}

	req := &domain.OrderRequest{
		Title:                title,
		IPONumber:            ipoNumber,
		ClientName:           clientName,
		AgreementDate:        date,
		ProjectName:          projectName,
		ProjectNameLine2:     projectNameLine2,
		ProjectManager:       projectManager,
		ProjectNumber:        projectNumber,
		ProjectUnderstanding: understanding,
		LotUnderstanding:     lotUnderstanding,
	}
	req.Tasks = selectTasks(lines, selectedCodes)

	// Per-task fee overrides for the selected catalog tasks.
	for i := range req.Tasks {
		if !req.Tasks[i].Selected {
			continue
		}
		if err := overrideFee(&req.Tasks[i]); err != nil {
			return nil, err
		}
	}

	if err := addCustomTasks(req); err != nil {
		return nil, err
	}

	fmt.Println(formatter.FormatOrderSummary(req))

	confirmed := true
	if err := confirmForm("Generate the document?", &confirmed).Run(); err != nil {
		return nil, fmt.Errorf("running confirmation: %w", err)
	}
	if !confirmed {
		return nil, nil
	}
	return req, nil
}

// selectTasks marks the chosen catalog lines selected, preserving
// catalog order.
func selectTasks(lines []domain.TaskLine, codes []string) []domain.TaskLine {
	chosen := make(map[string]bool, len(codes))
	for _, c := range codes {
		chosen[c] = true
	}
	tasks := make([]domain.TaskLine, len(lines))
	copy(tasks, lines)
	for i := range tasks {
		tasks[i].Selected = chosen[tasks[i].Code]
	}
	return tasks
}

// overrideFee asks for a fee for one selected task; blank keeps the
// catalog default.
func overrideFee(task *domain.TaskLine) error {
	var feeStr string
	form := huh.NewForm(
		huh.NewGroup(
			feeInput(
				fmt.Sprintf("Fee for Task %s — %s (blank for %s)",
					task.Code, task.Description, domain.FormatUSD(task.FeeCents)),
				"", &feeStr),
		),
	).WithTheme(ipogenHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running fee form: %w", err)
	}
	if feeStr == "" {
		return nil
	}
	cents, err := domain.ParseCents(feeStr)
	if err != nil {
		return fmt.Errorf("invalid fee %q: %w", feeStr, err)
	}
	task.FeeCents = cents
	return nil
}

// addCustomTasks loops a small form for ad-hoc task lines outside the
// catalog.
func addCustomTasks(req *domain.OrderRequest) error {
	for {
		addMore := false
		if err := confirmForm("Add a custom task?", &addMore).Run(); err != nil {
			return fmt.Errorf("running confirmation: %w", err)
		}
		if !addMore {
			return nil
		}

		var description, feeStr string
		form := huh.NewForm(
			huh.NewGroup(
				requiredInput("Task Description", "Geotechnical Report", &description),
				huh.NewInput().
					Title("Fee").
					Placeholder("1200.00").
					Value(&feeStr).
					Validate(func(s string) error {
						if s == "" {
							return fmt.Errorf("a fee is required")
						}
						return validateOptionalFee(s)
					}),
			),
		).WithTheme(ipogenHuhTheme()).WithShowHelp(false)

		if err := form.Run(); err != nil {
			return fmt.Errorf("running custom task form: %w", err)
		}

		cents, err := domain.ParseCents(feeStr)
		if err != nil {
			return fmt.Errorf("invalid fee %q: %w", feeStr, err)
		}
		req.Tasks = append(req.Tasks, domain.TaskLine{
			Description: description,
			FeeCents:    cents,
			Selected:    true,
		})
	}
}
