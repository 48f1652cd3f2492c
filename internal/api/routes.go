package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (no auth required)
		r.Get("/health", h.Health)

		// Protected routes (auth required when a key is configured)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(h.apiKey))

			r.Get("/clients", h.ListClients)
			r.Post("/clients", h.CreateClient)
			r.Get("/projects", h.ListProjects)
			r.Post("/projects", h.CreateProject)
			r.Get("/tasks", h.ListTasks)
			r.Post("/tasks", h.CreateTask)
			r.Get("/employees", h.ListEmployees)
			r.Post("/employees", h.CreateEmployee)
			r.Get("/expenses", h.ListExpenses)
			r.Post("/expenses", h.CreateExpense)
			r.Delete("/expenses/{id}", h.DeleteExpense)
			r.Get("/campaigns", h.ListCampaigns)
			r.Post("/campaigns", h.CreateCampaign)
			r.Get("/budgets", h.ListBudgets)
			r.Post("/budgets", h.CreateBudget)
			r.Get("/opportunities", h.ListOpportunities)
			r.Post("/opportunities", h.CreateOpportunity)
			r.Get("/workflows", h.ListWorkflows)
			r.Post("/workflows", h.CreateWorkflow)
			r.Post("/workflows/template", h.CreateWorkflowFromTemplate)
			r.Get("/messages", h.ListMessages)
			r.Post("/messages/{id}/read", h.MarkMessageRead)
			r.Post("/messages/connect", h.ConnectChannels)
			r.Get("/reviews", h.ListReviews)
			r.Post("/reviews/request", h.CreateReviewRequest)

			r.Get("/reports/dashboard", h.DashboardReport)
			r.Get("/reports/pipeline", h.PipelineReport)
			r.Get("/reports/finance", h.FinanceReport)
			r.Get("/reports/campaigns", h.CampaignReport)
			r.Get("/reports/reputation", h.ReputationReport)

			r.Post("/insights", h.GenerateInsights)
		})
	})

	return r
}
