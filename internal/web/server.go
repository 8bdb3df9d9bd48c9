// Package web serves the order form over HTTP and offers the
// generated document as a download.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dmontes/ipogen/internal/domain"
	"github.com/dmontes/ipogen/internal/service"
	"github.com/gorilla/mux"
)

//go:embed templates/index.html
var templateFS embed.FS

// Server handles the order form and document generation endpoints.
type Server struct {
	orders  service.OrderService
	catalog service.CatalogService
	tmpl    *template.Template
	router  *mux.Router
}

// NewServer wires the form routes against the given services.
func NewServer(orders service.OrderService, catalog service.CatalogService) (*Server, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"usd": domain.FormatUSD,
	}).ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parsing form template: %w", err)
	}

	s := &Server{
		orders:  orders,
		catalog: catalog,
		tmpl:    tmpl,
		router:  mux.NewRouter(),
	}
	s.router.HandleFunc("/", s.handleForm).Methods(http.MethodGet)
	s.router.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// formPage carries everything the template needs to render the form,
// including prior values and inline messages after a failed submit.
type formPage struct {
	Tasks  []domain.TaskLine
	Values map[string]string
	Errors map[string]string
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.catalog.TaskLines(r.Context())
	if err != nil {
		s.internalError(w, err)
		return
	}
	s.renderForm(w, http.StatusOK, formPage{Tasks: tasks, Values: map[string]string{}})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.catalog.TaskLines(r.Context())
	if err != nil {
		s.internalError(w, err)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form submission", http.StatusBadRequest)
		return
	}

	req, page := s.parseOrderForm(r, tasks)
	if len(page.Errors) > 0 {
		s.renderForm(w, http.StatusUnprocessableEntity, page)
		return
	}

	out, err := s.orders.Generate(r.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				page.Errors[f.Field] = f.Message
			}
			s.renderForm(w, http.StatusUnprocessableEntity, page)
			return
		}
		s.internalError(w, err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(out.Document)))
	if _, err := w.Write(out.Document); err != nil {
		log.Printf("writing document response: %v", err)
	}
}

// parseOrderForm binds the submitted values to an order request. Parse
// problems (bad date, bad fee) land in page.Errors keyed by field name
// so the template can show them inline.
func (s *Server) parseOrderForm(r *http.Request, tasks []domain.TaskLine) (*domain.OrderRequest, formPage) {
	page := formPage{
		Tasks:  tasks,
		Values: map[string]string{},
		Errors: map[string]string{},
	}
	for key := range r.PostForm {
		page.Values[key] = r.PostFormValue(key)
	}

	req := &domain.OrderRequest{
		Title:                r.PostFormValue("title"),
		IPONumber:            r.PostFormValue("ipo_number"),
		ClientName:           r.PostFormValue("client_name"),
		ProjectName:          r.PostFormValue("project_name"),
		ProjectNameLine2:     r.PostFormValue("project_name_line2"),
		ProjectManager:       r.PostFormValue("project_manager"),
		ProjectNumber:        r.PostFormValue("project_number"),
		ProjectUnderstanding: r.PostFormValue("project_understanding"),
		LotUnderstanding:     r.PostFormValue("lot_understanding"),
	}

	if dateStr := r.PostFormValue("agreement_date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			page.Errors["agreement_date"] = "use YYYY-MM-DD format"
		} else {
			req.AgreementDate = date
		}
	}

	req.Tasks = make([]domain.TaskLine, len(tasks))
	copy(req.Tasks, tasks)
	for i := range req.Tasks {
		code := req.Tasks[i].Code
		req.Tasks[i].Selected = r.PostFormValue("task_"+code) != ""

		feeStr := r.PostFormValue("fee_" + code)
		if feeStr == "" {
			continue
		}
		cents, err := domain.ParseCents(feeStr)
		if err != nil {
			if req.Tasks[i].Selected {
				page.Errors["fee_"+code] = "enter a dollar amount such as 1200.00"
			}
			continue
		}
		req.Tasks[i].FeeCents = cents
	}

	return req, page
}

func (s *Server) renderForm(w http.ResponseWriter, status int, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.Execute(w, page); err != nil {
		log.Printf("rendering form template: %v", err)
	}
}

// internalError hides render and storage failures behind a generic
// message; the user may retry.
func (s *Server) internalError(w http.ResponseWriter, err error) {
	log.Printf("generating order: %v", err)
	http.Error(w, "document generation failed, please try again", http.StatusInternalServerError)
}
