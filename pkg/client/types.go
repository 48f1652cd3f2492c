package client

// ClientRecord is an agency client account.
type ClientRecord struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Contact       string  `json:"contact"`
	Industry      string  `json:"industry"`
	ContractValue float64 `json:"contractValue"`
	StartDate     string  `json:"startDate"`
	Status        string  `json:"status"`
}

// NewClient is the input for creating a client record.
type NewClient struct {
	Name          string  `json:"name"`
	Contact       string  `json:"contact"`
	Industry      string  `json:"industry"`
	ContractValue float64 `json:"contractValue"`
}

// Project is client work tracked against a budget and deadline.
type Project struct {
	ID       string  `json:"id"`
	ClientID string  `json:"clientId"`
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Deadline string  `json:"deadline"`
	Progress float64 `json:"progress"`
	Budget   float64 `json:"budget"`
}

// NewProject is the input for creating a project.
type NewProject struct {
	Name     string  `json:"name"`
	ClientID string  `json:"clientId"`
	Budget   float64 `json:"budget"`
	Deadline string  `json:"deadline"`
}

// Task is a unit of work, optionally tied to a project and assignee.
type Task struct {
	ID         string `json:"id"`
	ProjectID  string `json:"projectId"`
	AssigneeID string `json:"assigneeId"`
	Title      string `json:"title"`
	Priority   string `json:"priority"`
	Status     string `json:"status"`
	DueDate    string `json:"dueDate"`
}

// NewTask is the input for creating a task.
type NewTask struct {
	Title      string `json:"title"`
	ProjectID  string `json:"projectId"`
	AssigneeID string `json:"assigneeId"`
	Priority   string `json:"priority"`
	DueDate    string `json:"dueDate"`
}

// Employee is a team member.
type Employee struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Role             string  `json:"role"`
	Department       string  `json:"department"`
	Rate             float64 `json:"rate"`
	Type             string  `json:"type"`
	TasksCompleted   int     `json:"tasksCompleted"`
	PerformanceScore float64 `json:"performanceScore"`
}

// NewEmployee is the input for creating an employee record.
type NewEmployee struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Type       string `json:"type"`
}

// Expense is a logged cost.
type Expense struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// NewExpense is the input for logging an expense.
type NewExpense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// Campaign is a paid or organic marketing campaign.
type Campaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Channel     string  `json:"channel"`
	Budget      float64 `json:"budget"`
	Leads       int     `json:"leads"`
	CostPerLead float64 `json:"costPerLead"`
	ROI         float64 `json:"roi"`
}

// NewCampaign is the input for creating a campaign.
type NewCampaign struct {
	Name    string  `json:"name"`
	Channel string  `json:"channel"`
	Budget  float64 `json:"budget"`
	Leads   int     `json:"leads"`
}

// Budget is a monthly departmental budget line.
type Budget struct {
	ID         string  `json:"id"`
	Department string  `json:"department"`
	Allocated  float64 `json:"allocated"`
	Actual     float64 `json:"actual"`
	Month      string  `json:"month"`
}

// NewBudget is the input for creating a budget line.
type NewBudget struct {
	Department string  `json:"department"`
	Allocated  float64 `json:"allocated"`
	Actual     float64 `json:"actual"`
	Month      string  `json:"month"`
}

// Opportunity is a sales lead moving through the pipeline.
type Opportunity struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Value        float64 `json:"value"`
	Stage        string  `json:"stage"`
	Source       string  `json:"source"`
	LastActivity string  `json:"lastActivity"`
}

// NewOpportunity is the input for creating an opportunity.
type NewOpportunity struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Value float64 `json:"value"`
	Stage string  `json:"stage"`
}

// Workflow is an automation workflow definition.
type Workflow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Trigger    string `json:"trigger"`
	StepsCount int    `json:"stepsCount"`
	Enrolled   int    `json:"enrolled"`
}

// NewWorkflow is the input for creating a workflow.
type NewWorkflow struct {
	Name    string `json:"name"`
	Trigger string `json:"trigger"`
}

// Message is a conversation thread in the unified inbox.
type Message struct {
	ID          string `json:"id"`
	ContactName string `json:"contactName"`
	LastMessage string `json:"lastMessage"`
	Time        string `json:"time"`
	Type        string `json:"type"`
	Unread      bool   `json:"unread"`
}

// Review is a customer review or an outstanding review request.
type Review struct {
	ID       string  `json:"id"`
	Platform string  `json:"platform"`
	Author   string  `json:"author"`
	Rating   float64 `json:"rating"`
	Content  string  `json:"content"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
}

// NewReviewRequest is the input for sending a review request.
type NewReviewRequest struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
}
