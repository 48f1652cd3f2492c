package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/highshiftmedia/crmhub/internal/crm"
	"github.com/highshiftmedia/crmhub/internal/insights"
	"github.com/highshiftmedia/crmhub/internal/report"
	"github.com/highshiftmedia/crmhub/internal/types"
)

// Handler implements the API handlers.
type Handler struct {
	svc     *crm.Service
	gen     *insights.Generator
	apiKey  string
	version string
}

// NewHandler creates a new Handler.
func NewHandler(svc *crm.Service, gen *insights.Generator, apiKey, version string) *Handler {
	return &Handler{
		svc:     svc,
		gen:     gen,
		apiKey:  apiKey,
		version: version,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string       `json:"status"`
	Version string       `json:"version"`
	Counts  types.Counts `json:"counts"`
}

// Health returns the health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: h.version,
		Counts:  h.svc.Counts(),
	})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decode reads the request body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// --- Collection list handlers ---

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Clients)
}

func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Projects)
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Tasks)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Employees)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Expenses)
}

func (h *Handler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Campaigns)
}

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Budgets)
}

func (h *Handler) ListOpportunities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Opportunities)
}

func (h *Handler) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Workflows)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Messages)
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Snapshot().Reviews)
}

// --- Creation handlers ---

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req types.NewClient
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	client, err := h.svc.AddClient(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req types.NewProject
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	project, err := h.svc.AddProject(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req types.NewTask
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	task, err := h.svc.AddTask(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req types.NewEmployee
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	emp, err := h.svc.AddEmployee(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, emp)
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req types.NewExpense
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	expense, err := h.svc.AddExpense(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *Handler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req types.NewMarketingCampaign
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	campaign, err := h.svc.AddCampaign(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req types.NewBudget
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	budget, err := h.svc.AddBudget(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, budget)
}

func (h *Handler) CreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var req types.NewOpportunity
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	opp, err := h.svc.AddOpportunity(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, opp)
}

func (h *Handler) CreateWorkflow(w http.ResponseWriter, r *http.Request) {
	var req types.NewWorkflow
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	wf, err := h.svc.AddWorkflow(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, wf)
}

// WorkflowTemplateRequest represents a workflow-from-template request.
type WorkflowTemplateRequest struct {
	Name  string `json:"name"`
	Steps int    `json:"steps"`
}

func (h *Handler) CreateWorkflowFromTemplate(w http.ResponseWriter, r *http.Request) {
	var req WorkflowTemplateRequest
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	wf, err := h.svc.AddWorkflowFromTemplate(r.Context(), req.Name, req.Steps)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, wf)
}

func (h *Handler) CreateReviewRequest(w http.ResponseWriter, r *http.Request) {
	var req types.NewReviewRequest
	if err := decode(r, &req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, err.Error())
		return
	}
	review, err := h.svc.SendReviewRequest(r.Context(), req)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// --- Mutation handlers ---

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		MapServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.MarkMessageRead(r.Context(), id); err != nil {
		MapServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ConnectChannels kicks off the demo channel connect; the canned message
// lands after the configured delay.
func (h *Handler) ConnectChannels(w http.ResponseWriter, r *http.Request) {
	h.svc.ConnectDemoChannels()
	w.WriteHeader(http.StatusAccepted)
}

// --- Report handlers ---

func (h *Handler) DashboardReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.BuildDashboard(h.svc.Snapshot()))
}

func (h *Handler) PipelineReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.BuildPipeline(h.svc.Snapshot().Opportunities))
}

func (h *Handler) FinanceReport(w http.ResponseWriter, r *http.Request) {
	d := h.svc.Snapshot()
	writeJSON(w, http.StatusOK, report.BuildFinance(d.Expenses, d.Budgets))
}

func (h *Handler) CampaignReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.CampaignPerformance(h.svc.Snapshot().Campaigns))
}

func (h *Handler) ReputationReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.BuildReputation(h.svc.Snapshot().Reviews))
}

// InsightsResponse carries the generated business insights prose.
type InsightsResponse struct {
	Insights string `json:"insights"`
}

// GenerateInsights builds the CRM digest and asks the collaborator for
// insights. A collaborator failure is a 200 with the fallback message;
// only missing data is a client error.
func (h *Handler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	text, err := h.gen.Generate(r.Context(), h.svc.Snapshot())
	if err != nil {
		WriteProblem(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, InsightsResponse{Insights: text})
}
