package crm

import (
	"context"

	"github.com/highshiftmedia/crmhub/internal/types"
	"github.com/highshiftmedia/crmhub/internal/validation"
)

// Every creation workflow follows the same contract: validate required
// fields (refusing without mutating on failure), fill defaults, compute
// derived fields, assign an id, append or prepend, persist. Tasks,
// expenses, reviews, and messages are kept newest-first; every other
// collection is newest-last.

// AddClient creates a client account. New clients start in Onboarding.
func (s *Service) AddClient(ctx context.Context, in types.NewClient) (*types.Client, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateNonNegative("contractValue", in.ContractValue))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	industry := in.Industry
	if industry == "" {
		industry = "Unknown"
	}
	contact := in.Contact
	if contact == "" {
		contact = "No contact info"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	client := types.Client{
		ID:            s.newID(),
		Name:          in.Name,
		Contact:       contact,
		Industry:      industry,
		ContractValue: in.ContractValue,
		StartDate:     s.today(),
		Status:        types.ClientOnboarding,
	}
	s.data.Clients = append(s.data.Clients, client)
	s.persist(ctx)
	return &client, nil
}

// AddProject creates a project in Planning with zero progress. ClientID is
// required but not checked against the client collection; a dangling
// reference renders as a placeholder, never an error.
func (s *Service) AddProject(ctx context.Context, in types.NewProject) (*types.Project, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateRequired("clientId", in.ClientID))
	c.Add(validation.ValidateNonNegative("budget", in.Budget))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := in.Deadline
	if deadline == "" {
		deadline = s.today()
	}

	project := types.Project{
		ID:       s.newID(),
		ClientID: in.ClientID,
		Name:     in.Name,
		Status:   types.ProjectPlanning,
		Deadline: deadline,
		Progress: 0,
		Budget:   in.Budget,
	}
	s.data.Projects = append(s.data.Projects, project)
	s.persist(ctx)
	return &project, nil
}

// AddTask creates a To-Do task, newest first.
func (s *Service) AddTask(ctx context.Context, in types.NewTask) (*types.Task, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("title", in.Title))
	c.Add(validation.ValidateEnum("priority", in.Priority, types.TaskPriorities))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	priority := in.Priority
	if priority == "" {
		priority = string(types.PriorityMedium)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dueDate := in.DueDate
	if dueDate == "" {
		dueDate = s.today()
	}

	task := types.Task{
		ID:         s.newID(),
		ProjectID:  in.ProjectID,
		AssigneeID: in.AssigneeID,
		Title:      in.Title,
		Priority:   types.TaskPriority(priority),
		Status:     types.TaskToDo,
		DueDate:    dueDate,
	}
	s.data.Tasks = append([]types.Task{task}, s.data.Tasks...)
	s.persist(ctx)
	return &task, nil
}

// AddEmployee creates a team member with a fresh performance score.
func (s *Service) AddEmployee(ctx context.Context, in types.NewEmployee) (*types.Employee, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateEnum("type", in.Type, types.EmploymentTypes))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	role := in.Role
	if role == "" {
		role = "Team Member"
	}
	empType := in.Type
	if empType == "" {
		empType = string(types.EmploymentW2)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emp := types.Employee{
		ID:               s.newID(),
		Name:             in.Name,
		Role:             role,
		Department:       in.Department,
		Rate:             0,
		Type:             types.EmploymentType(empType),
		TasksCompleted:   0,
		PerformanceScore: 100,
	}
	s.data.Employees = append(s.data.Employees, emp)
	s.persist(ctx)
	return &emp, nil
}

// AddExpense logs an expense, newest first.
func (s *Service) AddExpense(ctx context.Context, in types.NewExpense) (*types.Expense, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("description", in.Description))
	c.Add(validation.ValidatePositive("amount", in.Amount))
	c.Add(validation.ValidateEnum("category", in.Category, types.ExpenseCategories))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	category := in.Category
	if category == "" {
		category = string(types.ExpenseSoftware)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := in.Date
	if date == "" {
		date = s.today()
	}

	expense := types.Expense{
		ID:          s.newID(),
		Category:    types.ExpenseCategory(category),
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
	}
	s.data.Expenses = append([]types.Expense{expense}, s.data.Expenses...)
	s.persist(ctx)
	return &expense, nil
}

// AddCampaign creates a marketing campaign. CostPerLead and ROI are
// derived: budget/leads (0 when leads is 0) and leads*150/budget (0 when
// budget is 0). The per-lead value is a placeholder assumption, not a
// financial model.
func (s *Service) AddCampaign(ctx context.Context, in types.NewMarketingCampaign) (*types.MarketingCampaign, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateEnum("channel", in.Channel, types.CampaignChannels))
	c.Add(validation.ValidateNonNegative("budget", in.Budget))
	c.Add(validation.ValidateNonNegative("leads", float64(in.Leads)))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	channel := in.Channel
	if channel == "" {
		channel = string(types.ChannelFacebookAds)
	}

	var costPerLead float64
	if in.Leads > 0 {
		costPerLead = in.Budget / float64(in.Leads)
	}
	var roi float64
	if in.Budget > 0 {
		roi = float64(in.Leads) * 150 / in.Budget
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	campaign := types.MarketingCampaign{
		ID:          s.newID(),
		Name:        in.Name,
		Channel:     types.CampaignChannel(channel),
		Budget:      in.Budget,
		Leads:       in.Leads,
		CostPerLead: costPerLead,
		ROI:         roi,
	}
	s.data.Campaigns = append(s.data.Campaigns, campaign)
	s.persist(ctx)
	return &campaign, nil
}

// AddBudget creates a monthly departmental budget line. Actual exceeding
// Allocated is allowed; it is the over-budget signal.
func (s *Service) AddBudget(ctx context.Context, in types.NewBudget) (*types.Budget, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("department", in.Department))
	c.Add(validation.ValidateNonNegative("allocated", in.Allocated))
	c.Add(validation.ValidateNonNegative("actual", in.Actual))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	month := in.Month
	if month == "" {
		month = s.now().UTC().Format("2006-01")
	}

	budget := types.Budget{
		ID:         s.newID(),
		Department: in.Department,
		Allocated:  in.Allocated,
		Actual:     in.Actual,
		Month:      month,
	}
	s.data.Budgets = append(s.data.Budgets, budget)
	s.persist(ctx)
	return &budget, nil
}

// AddOpportunity creates a pipeline opportunity, defaulting to the Lead
// stage with a Direct Entry source.
func (s *Service) AddOpportunity(ctx context.Context, in types.NewOpportunity) (*types.Opportunity, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateEnum("stage", in.Stage, types.OpportunityStages))
	c.Add(validation.ValidateNonNegative("value", in.Value))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	stage := in.Stage
	if stage == "" {
		stage = string(types.StageLead)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	opp := types.Opportunity{
		ID:           s.newID(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        "",
		Value:        in.Value,
		Stage:        types.OpportunityStage(stage),
		Source:       "Direct Entry",
		LastActivity: s.today(),
	}
	s.data.Opportunities = append(s.data.Opportunities, opp)
	s.persist(ctx)
	return &opp, nil
}

// AddWorkflow creates a draft automation workflow with a single step.
func (s *Service) AddWorkflow(ctx context.Context, in types.NewWorkflow) (*types.Workflow, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	trigger := in.Trigger
	if trigger == "" {
		trigger = "Form Submitted"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wf := types.Workflow{
		ID:         s.newID(),
		Name:       in.Name,
		Status:     types.WorkflowDraft,
		Trigger:    trigger,
		StepsCount: 1,
		Enrolled:   0,
	}
	s.data.Workflows = append(s.data.Workflows, wf)
	s.persist(ctx)
	return &wf, nil
}

// AddWorkflowFromTemplate creates a published workflow from a template
// with a preset step count and a Lead Created trigger.
func (s *Service) AddWorkflowFromTemplate(ctx context.Context, name string, steps int) (*types.Workflow, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", name))
	c.Add(validation.ValidatePositive("steps", float64(steps)))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	wf := types.Workflow{
		ID:         s.newID(),
		Name:       name,
		Status:     types.WorkflowPublished,
		Trigger:    "Lead Created",
		StepsCount: steps,
		Enrolled:   0,
	}
	s.data.Workflows = append(s.data.Workflows, wf)
	s.persist(ctx)
	return &wf, nil
}

// SendReviewRequest records an outstanding review request: rating 0 marks
// it as awaiting the customer, which excludes it from the average rating.
func (s *Service) SendReviewRequest(ctx context.Context, in types.NewReviewRequest) (*types.Review, error) {
	var c validation.Collector
	c.Add(validation.ValidateRequired("name", in.Name))
	c.Add(validation.ValidateEnum("platform", in.Platform, types.ReviewPlatforms))
	if c.HasErrors() {
		return nil, invalid(&c)
	}

	platform := in.Platform
	if platform == "" {
		platform = string(types.PlatformGoogle)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review := types.Review{
		ID:       s.newID(),
		Platform: types.ReviewPlatform(platform),
		Author:   in.Name,
		Rating:   0,
		Content:  "Request sent to customer. Awaiting response...",
		Date:     s.today(),
		Status:   types.ReviewPending,
	}
	s.data.Reviews = append([]types.Review{review}, s.data.Reviews...)
	s.persist(ctx)
	return &review, nil
}
