package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmontes/ipogen/internal/domain"
	"github.com/dmontes/ipogen/internal/service"
)

const dateLayout = "2006-01-02"

// LoadFile reads an order file and converts it into a domain request.
// Catalog lookups fill defaults for tasks referenced by code. The
// returned request has not been validated yet.
func LoadFile(ctx context.Context, path string, catalog service.CatalogService) (*domain.OrderRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading order file: %w", err)
	}

	var imp OrderImport
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&imp); err != nil {
		return nil, fmt.Errorf("parsing order file: %w", err)
	}

	if errs := validate(&imp); len(errs) > 0 {
		return nil, fmt.Errorf("invalid order file: %w", errors.Join(errs...))
	}

	return convert(ctx, &imp, catalog)
}

// validate checks file-level concerns (formats and references) before
// conversion; domain validation still runs at generation time.
func validate(imp *OrderImport) []error {
	var errs []error

	if imp.AgreementDate == "" {
		errs = append(errs, fmt.Errorf("agreement_date is required"))
	} else if _, err := time.Parse(dateLayout, imp.AgreementDate); err != nil {
		errs = append(errs, fmt.Errorf("agreement_date: invalid date %q (expected YYYY-MM-DD)", imp.AgreementDate))
	}

	for i, t := range imp.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Code == "" && t.Description == "" {
			errs = append(errs, fmt.Errorf("%s: either code or description is required", prefix))
		}
		if t.Fee != "" {
			if _, err := domain.ParseCents(t.Fee); err != nil {
				errs = append(errs, fmt.Errorf("%s.fee: %v", prefix, err))
			}
		}
	}

	return errs
}

func convert(ctx context.Context, imp *OrderImport, catalog service.CatalogService) (*domain.OrderRequest, error) {
	req := &domain.OrderRequest{
		Title:                imp.Title,
		IPONumber:            imp.IPONumber,
		ClientName:           imp.ClientName,
		ProjectName:          imp.ProjectName,
		ProjectNameLine2:     imp.ProjectNameLine2,
		ProjectManager:       imp.ProjectManager,
		ProjectNumber:        imp.ProjectNumber,
		ProjectUnderstanding: imp.ProjectUnderstanding,
		LotUnderstanding:     imp.LotUnderstanding,
		ConsultantName:       imp.ConsultantName,
	}

	if imp.AgreementDate != "" {
		date, err := time.Parse(dateLayout, imp.AgreementDate)
		if err != nil {
			return nil, fmt.Errorf("parsing agreement_date: %w", err)
		}
		req.AgreementDate = date
	}

	for i, t := range imp.Tasks {
		line := domain.TaskLine{
			Code:        t.Code,
			Description: t.Description,
			Paragraphs:  t.Paragraphs,
			FeeBasis:    t.FeeBasis,
			Selected:    t.Selected,
		}

		if t.Code != "" {
			ct, err := catalog.GetByCode(ctx, t.Code)
			if err != nil {
				return nil, fmt.Errorf("tasks[%d]: %w", i, err)
			}
			def := ct.TaskLine()
			if line.Description == "" {
				line.Description = def.Description
			}
			if len(line.Paragraphs) == 0 {
				line.Paragraphs = def.Paragraphs
			}
			if line.FeeBasis == "" {
				line.FeeBasis = def.FeeBasis
			}
			if t.Fee == "" {
				line.FeeCents = def.FeeCents
			}
		}

		if t.Fee != "" {
			cents, err := domain.ParseCents(t.Fee)
			if err != nil {
				return nil, fmt.Errorf("tasks[%d].fee: %w", i, err)
			}
			line.FeeCents = cents
		}

		req.Tasks = append(req.Tasks, line)
	}

	return req, nil
}
