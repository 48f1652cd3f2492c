package types

// ClientStatus represents the lifecycle stage of a client engagement.
type ClientStatus string

const (
	ClientActive     ClientStatus = "Active"
	ClientOnboarding ClientStatus = "Onboarding"
	ClientCompleted  ClientStatus = "Completed"
	ClientInactive   ClientStatus = "Inactive"
)

// ClientStatuses lists all valid client statuses.
var ClientStatuses = []string{
	string(ClientActive),
	string(ClientOnboarding),
	string(ClientCompleted),
	string(ClientInactive),
}

// Client represents an agency client account.
type Client struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Contact       string       `json:"contact"`
	Industry      string       `json:"industry"`
	ContractValue float64      `json:"contractValue"`
	StartDate     string       `json:"startDate"`
	Status        ClientStatus `json:"status"`
}

// NewClient is the input type for creating a client.
type NewClient struct {
	Name          string  `json:"name"`
	Contact       string  `json:"contact"`
	Industry      string  `json:"industry"`
	ContractValue float64 `json:"contractValue"`
}

// ProjectStatus represents the delivery stage of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "In Progress"
	ProjectReview     ProjectStatus = "Review"
	ProjectCompleted  ProjectStatus = "Completed"
)

// ProjectStatuses lists all valid project statuses.
var ProjectStatuses = []string{
	string(ProjectPlanning),
	string(ProjectInProgress),
	string(ProjectReview),
	string(ProjectCompleted),
}

// Project represents client work tracked against a budget and deadline.
// ClientID is a soft reference: a dangling id resolves to a placeholder
// label rather than an error.
type Project struct {
	ID       string        `json:"id"`
	ClientID string        `json:"clientId"`
	Name     string        `json:"name"`
	Status   ProjectStatus `json:"status"`
	Deadline string        `json:"deadline"`
	Progress float64       `json:"progress"`
	Budget   float64       `json:"budget"`
}

// NewProject is the input type for creating a project.
type NewProject struct {
	Name     string  `json:"name"`
	ClientID string  `json:"clientId"`
	Budget   float64 `json:"budget"`
	Deadline string  `json:"deadline"`
}

// TaskPriority represents task urgency.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

// TaskPriorities lists all valid task priorities.
var TaskPriorities = []string{
	string(PriorityLow),
	string(PriorityMedium),
	string(PriorityHigh),
}

// TaskStatus represents task completion state.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "To-Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskDone       TaskStatus = "Done"
)

// Task represents a unit of work, optionally tied to a project and assignee.
// ProjectID and AssigneeID are soft references.
type Task struct {
	ID         string       `json:"id"`
	ProjectID  string       `json:"projectId"`
	AssigneeID string       `json:"assigneeId"`
	Title      string       `json:"title"`
	Priority   TaskPriority `json:"priority"`
	Status     TaskStatus   `json:"status"`
	DueDate    string       `json:"dueDate"`
}

// NewTask is the input type for creating a task.
type NewTask struct {
	Title      string `json:"title"`
	ProjectID  string `json:"projectId"`
	AssigneeID string `json:"assigneeId"`
	Priority   string `json:"priority"`
	DueDate    string `json:"dueDate"`
}

// EmploymentType distinguishes payroll staff from contractors.
type EmploymentType string

const (
	EmploymentW2         EmploymentType = "W-2"
	EmploymentContractor EmploymentType = "Contractor"
)

// EmploymentTypes lists all valid employment types.
var EmploymentTypes = []string{
	string(EmploymentW2),
	string(EmploymentContractor),
}

// Employee represents a team member.
type Employee struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Role             string         `json:"role"`
	Department       string         `json:"department"`
	Rate             float64        `json:"rate"`
	Type             EmploymentType `json:"type"`
	TasksCompleted   int            `json:"tasksCompleted"`
	PerformanceScore float64        `json:"performanceScore"`
}

// NewEmployee is the input type for creating an employee.
type NewEmployee struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Type       string `json:"type"`
}

// ExpenseCategory classifies an expense line.
type ExpenseCategory string

const (
	ExpenseMarketing  ExpenseCategory = "Marketing"
	ExpenseSoftware   ExpenseCategory = "Software"
	ExpensePayroll    ExpenseCategory = "Payroll"
	ExpenseOperations ExpenseCategory = "Operations"
	ExpenseOther      ExpenseCategory = "Other"
)

// ExpenseCategories lists all valid expense categories.
var ExpenseCategories = []string{
	string(ExpenseMarketing),
	string(ExpenseSoftware),
	string(ExpensePayroll),
	string(ExpenseOperations),
	string(ExpenseOther),
}

// Expense represents a logged cost.
type Expense struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// NewExpense is the input type for logging an expense.
type NewExpense struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// CampaignChannel identifies the advertising channel of a campaign.
type CampaignChannel string

const (
	ChannelFacebookAds CampaignChannel = "Facebook Ads"
	ChannelGoogleAds   CampaignChannel = "Google Ads"
	ChannelSEO         CampaignChannel = "SEO"
	ChannelEmail       CampaignChannel = "Email"
	ChannelFunnel      CampaignChannel = "Funnel"
)

// CampaignChannels lists all valid campaign channels.
var CampaignChannels = []string{
	string(ChannelFacebookAds),
	string(ChannelGoogleAds),
	string(ChannelSEO),
	string(ChannelEmail),
	string(ChannelFunnel),
}

// MarketingCampaign represents a paid or organic campaign.
// CostPerLead and ROI are stored at creation time and also recomputed on
// read by the report package, so stored copies never go stale for report
// consumers.
type MarketingCampaign struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Channel     CampaignChannel `json:"channel"`
	Budget      float64         `json:"budget"`
	Leads       int             `json:"leads"`
	CostPerLead float64         `json:"costPerLead"`
	ROI         float64         `json:"roi"`
}

// NewMarketingCampaign is the input type for creating a campaign.
type NewMarketingCampaign struct {
	Name    string  `json:"name"`
	Channel string  `json:"channel"`
	Budget  float64 `json:"budget"`
	Leads   int     `json:"leads"`
}

// Budget represents a monthly departmental budget. Actual may exceed
// Allocated; the overage is an over-budget signal, not an error.
type Budget struct {
	ID         string  `json:"id"`
	Department string  `json:"department"`
	Allocated  float64 `json:"allocated"`
	Actual     float64 `json:"actual"`
	Month      string  `json:"month"`
}

// NewBudget is the input type for creating a budget line.
type NewBudget struct {
	Department string  `json:"department"`
	Allocated  float64 `json:"allocated"`
	Actual     float64 `json:"actual"`
	Month      string  `json:"month"`
}

// OpportunityStage represents a pipeline column.
type OpportunityStage string

const (
	StageLead      OpportunityStage = "Lead"
	StageContacted OpportunityStage = "Contacted"
	StageMeeting   OpportunityStage = "Meeting"
	StageProposal  OpportunityStage = "Proposal"
	StageClosed    OpportunityStage = "Closed"
)

// OpportunityStages lists pipeline stages in display order.
var OpportunityStages = []string{
	string(StageLead),
	string(StageContacted),
	string(StageMeeting),
	string(StageProposal),
	string(StageClosed),
}

// Opportunity represents a sales lead moving through the pipeline.
type Opportunity struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Value        float64          `json:"value"`
	Stage        OpportunityStage `json:"stage"`
	Source       string           `json:"source"`
	LastActivity string           `json:"lastActivity"`
}

// NewOpportunity is the input type for creating an opportunity.
type NewOpportunity struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Value float64 `json:"value"`
	Stage string  `json:"stage"`
}

// WorkflowStatus represents automation workflow publication state.
type WorkflowStatus string

const (
	WorkflowPublished WorkflowStatus = "Published"
	WorkflowDraft     WorkflowStatus = "Draft"
)

// Workflow represents an automation workflow definition.
type Workflow struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Status     WorkflowStatus `json:"status"`
	Trigger    string         `json:"trigger"`
	StepsCount int            `json:"stepsCount"`
	Enrolled   int            `json:"enrolled"`
}

// NewWorkflow is the input type for creating a workflow.
type NewWorkflow struct {
	Name    string `json:"name"`
	Trigger string `json:"trigger"`
}

// MessageType identifies the channel a conversation arrived on.
type MessageType string

const (
	MessageSMS       MessageType = "SMS"
	MessageEmail     MessageType = "Email"
	MessageFacebook  MessageType = "Facebook"
	MessageInstagram MessageType = "Instagram"
)

// Message represents a conversation thread in the unified inbox.
type Message struct {
	ID          string      `json:"id"`
	ContactName string      `json:"contactName"`
	LastMessage string      `json:"lastMessage"`
	Time        string      `json:"time"`
	Type        MessageType `json:"type"`
	Unread      bool        `json:"unread"`
}

// ReviewPlatform identifies where a review lives.
type ReviewPlatform string

const (
	PlatformGoogle   ReviewPlatform = "Google"
	PlatformFacebook ReviewPlatform = "Facebook"
)

// ReviewPlatforms lists all valid review platforms.
var ReviewPlatforms = []string{
	string(PlatformGoogle),
	string(PlatformFacebook),
}

// ReviewStatus represents whether a review has been answered.
type ReviewStatus string

const (
	ReviewReplied ReviewStatus = "Replied"
	ReviewPending ReviewStatus = "Pending"
)

// Review represents a customer review or an outstanding review request.
// Rating 0 means a request was sent but the customer has not rated yet;
// such entries are excluded from the average rating.
type Review struct {
	ID       string         `json:"id"`
	Platform ReviewPlatform `json:"platform"`
	Author   string         `json:"author"`
	Rating   float64        `json:"rating"`
	Content  string         `json:"content"`
	Date     string         `json:"date"`
	Status   ReviewStatus   `json:"status"`
}

// NewReviewRequest is the input type for sending a review request.
type NewReviewRequest struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
}
