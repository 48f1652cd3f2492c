package types

// Storage keys for the eleven collections. These are fixed identifiers:
// changing one orphans previously persisted data.
const (
	KeyClients       = "crm_clients"
	KeyProjects      = "crm_projects"
	KeyTasks         = "crm_tasks"
	KeyEmployees     = "crm_employees"
	KeyExpenses      = "crm_expenses"
	KeyCampaigns     = "crm_campaigns"
	KeyBudgets       = "crm_budgets"
	KeyOpportunities = "crm_opps"
	KeyWorkflows     = "crm_workflows"
	KeyMessages      = "crm_messages"
	KeyReviews       = "crm_reviews"
)

// CollectionKeys lists all storage keys in a stable order.
var CollectionKeys = []string{
	KeyClients,
	KeyProjects,
	KeyTasks,
	KeyEmployees,
	KeyExpenses,
	KeyCampaigns,
	KeyBudgets,
	KeyOpportunities,
	KeyWorkflows,
	KeyMessages,
	KeyReviews,
}

// Dataset holds all eleven record collections. Each slice preserves
// insertion order; the slice is the display order.
type Dataset struct {
	Clients       []Client            `json:"clients"`
	Projects      []Project           `json:"projects"`
	Tasks         []Task              `json:"tasks"`
	Employees     []Employee          `json:"employees"`
	Expenses      []Expense           `json:"expenses"`
	Campaigns     []MarketingCampaign `json:"campaigns"`
	Budgets       []Budget            `json:"budgets"`
	Opportunities []Opportunity       `json:"opportunities"`
	Workflows     []Workflow          `json:"workflows"`
	Messages      []Message           `json:"messages"`
	Reviews       []Review            `json:"reviews"`
}

// Clone returns a copy of the dataset with freshly allocated, non-nil
// slices. Records are value types, so a top-level copy is a full snapshot.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		Clients:       make([]Client, len(d.Clients)),
		Projects:      make([]Project, len(d.Projects)),
		Tasks:         make([]Task, len(d.Tasks)),
		Employees:     make([]Employee, len(d.Employees)),
		Expenses:      make([]Expense, len(d.Expenses)),
		Campaigns:     make([]MarketingCampaign, len(d.Campaigns)),
		Budgets:       make([]Budget, len(d.Budgets)),
		Opportunities: make([]Opportunity, len(d.Opportunities)),
		Workflows:     make([]Workflow, len(d.Workflows)),
		Messages:      make([]Message, len(d.Messages)),
		Reviews:       make([]Review, len(d.Reviews)),
	}
	copy(c.Clients, d.Clients)
	copy(c.Projects, d.Projects)
	copy(c.Tasks, d.Tasks)
	copy(c.Employees, d.Employees)
	copy(c.Expenses, d.Expenses)
	copy(c.Campaigns, d.Campaigns)
	copy(c.Budgets, d.Budgets)
	copy(c.Opportunities, d.Opportunities)
	copy(c.Workflows, d.Workflows)
	copy(c.Messages, d.Messages)
	copy(c.Reviews, d.Reviews)
	return c
}

// Counts summarizes collection sizes for health reporting.
type Counts struct {
	Clients       int `json:"clients"`
	Projects      int `json:"projects"`
	Tasks         int `json:"tasks"`
	Employees     int `json:"employees"`
	Expenses      int `json:"expenses"`
	Campaigns     int `json:"campaigns"`
	Budgets       int `json:"budgets"`
	Opportunities int `json:"opportunities"`
	Workflows     int `json:"workflows"`
	Messages      int `json:"messages"`
	Reviews       int `json:"reviews"`
}

// Counts returns the number of records in each collection.
func (d *Dataset) Counts() Counts {
	return Counts{
		Clients:       len(d.Clients),
		Projects:      len(d.Projects),
		Tasks:         len(d.Tasks),
		Employees:     len(d.Employees),
		Expenses:      len(d.Expenses),
		Campaigns:     len(d.Campaigns),
		Budgets:       len(d.Budgets),
		Opportunities: len(d.Opportunities),
		Workflows:     len(d.Workflows),
		Messages:      len(d.Messages),
		Reviews:       len(d.Reviews),
	}
}
