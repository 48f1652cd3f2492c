package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/highshiftmedia/crmhub/internal/crm"
	"github.com/highshiftmedia/crmhub/internal/insights"
	"github.com/highshiftmedia/crmhub/internal/store"
	"github.com/highshiftmedia/crmhub/internal/types"
)

// stubSummarizer implements insights.Summarizer for handler tests.
type stubSummarizer struct {
	text string
	err  error
}

func (s *stubSummarizer) Summarize(ctx context.Context, digest string) (string, error) {
	return s.text, s.err
}

func (s *stubSummarizer) ModelName() string { return "stub-model" }

// newTestServer spins up the full router over an in-memory store.
func newTestServer(t *testing.T, apiKey string, sum insights.Summarizer) (*httptest.Server, *crm.Service) {
	t.Helper()

	db, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	svc := crm.NewService(context.Background(), db,
		crm.WithDemoConnectDelay(time.Millisecond))

	if sum == nil {
		sum = &stubSummarizer{text: "Test insight."}
	}

	h := NewHandler(svc, insights.NewGenerator(sum), apiKey, "test")
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv, svc
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatal(err)
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	resp, err := http.Get(srv.URL + "/api/v1/health")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var health HealthResponse
	decodeBody(t, resp, &health)
	if health.Status != "healthy" {
		t.Errorf("status = %q", health.Status)
	}
	if health.Version != "test" {
		t.Errorf("version = %q", health.Version)
	}
}

func TestCreateAndListClients(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	resp := postJSON(t, srv.URL+"/api/v1/clients", types.NewClient{
		Name:          "Acme Corp",
		ContractValue: 5000,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var created types.Client
	decodeBody(t, resp, &created)
	if created.ID == "" || created.Status != types.ClientOnboarding {
		t.Errorf("unexpected created client %+v", created)
	}

	listResp, err := http.Get(srv.URL + "/api/v1/clients")
	if err != nil {
		t.Fatal(err)
	}
	var clients []types.Client
	decodeBody(t, listResp, &clients)
	if len(clients) != 1 || clients[0].ID != created.ID {
		t.Errorf("unexpected list %+v", clients)
	}
}

func TestCreateClient_ValidationProblem(t *testing.T) {
	srv, svc := newTestServer(t, "", nil)

	resp := postJSON(t, srv.URL+"/api/v1/clients", types.NewClient{
		Name:          "",
		ContractValue: -5,
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("content type = %q", ct)
	}

	var problem ProblemWithErrors
	decodeBody(t, resp, &problem)
	if len(problem.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %+v", problem.Errors)
	}
	if problem.Instance != "/api/v1/clients" {
		t.Errorf("instance = %q", problem.Instance)
	}

	if svc.Counts().Clients != 0 {
		t.Error("invalid request must not create anything")
	}
}

func TestCreateClient_MalformedJSON(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	resp, err := http.Post(srv.URL+"/api/v1/clients", "application/json",
		bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCreateTask_ListNewestFirst(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	for _, title := range []string{"First", "Second"} {
		resp := postJSON(t, srv.URL+"/api/v1/tasks", types.NewTask{Title: title})
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("status = %d, want 201", resp.StatusCode)
		}
		resp.Body.Close()
	}

	listResp, err := http.Get(srv.URL + "/api/v1/tasks")
	if err != nil {
		t.Fatal(err)
	}
	var tasks []types.Task
	decodeBody(t, listResp, &tasks)
	if len(tasks) != 2 || tasks[0].Title != "Second" {
		t.Errorf("expected newest first, got %+v", tasks)
	}
}

func TestDeleteExpense(t *testing.T) {
	srv, svc := newTestServer(t, "", nil)
	ctx := context.Background()

	e, err := svc.AddExpense(ctx, types.NewExpense{Description: "Ads", Amount: 10})
	if err != nil {
		t.Fatal(err)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/expenses/"+e.ID, nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	req, _ = http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/expenses/missing", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestConnectChannelsAndMarkRead(t *testing.T) {
	srv, svc := newTestServer(t, "", nil)

	resp, err := http.Post(srv.URL+"/api/v1/messages/connect", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}

	// The canned conversation lands after the (shortened) delay.
	var msgs []types.Message
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		msgs = svc.Snapshot().Messages
		if len(msgs) > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if len(msgs) == 0 {
		t.Fatal("demo message never arrived")
	}
	if msgs[0].ContactName != "Sarah from TechFlow" || !msgs[0].Unread {
		t.Errorf("unexpected demo message %+v", msgs[0])
	}

	readResp, err := http.Post(srv.URL+"/api/v1/messages/"+msgs[0].ID+"/read", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	readResp.Body.Close()
	if readResp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", readResp.StatusCode)
	}
	if svc.Snapshot().Messages[0].Unread {
		t.Error("message should be read")
	}
}

func TestWorkflowFromTemplate(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	resp := postJSON(t, srv.URL+"/api/v1/workflows/template", WorkflowTemplateRequest{
		Name:  "Lead Nurture",
		Steps: 5,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var wf types.Workflow
	decodeBody(t, resp, &wf)
	if wf.Status != types.WorkflowPublished || wf.StepsCount != 5 {
		t.Errorf("unexpected workflow %+v", wf)
	}
}

func TestReports(t *testing.T) {
	srv, svc := newTestServer(t, "", nil)
	ctx := context.Background()

	if _, err := svc.AddOpportunity(ctx, types.NewOpportunity{Name: "Lead A", Value: 100}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddOpportunity(ctx, types.NewOpportunity{Name: "Won B", Value: 200, Stage: "Closed"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddExpense(ctx, types.NewExpense{Description: "Ads", Amount: 40, Category: "Marketing"}); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(srv.URL + "/api/v1/reports/dashboard")
	if err != nil {
		t.Fatal(err)
	}
	var dashboard struct {
		PipelineValue  float64 `json:"pipelineValue"`
		ClosedRevenue  float64 `json:"closedRevenue"`
		ConversionRate float64 `json:"conversionRate"`
		AdSpend        float64 `json:"adSpend"`
	}
	decodeBody(t, resp, &dashboard)
	if dashboard.PipelineValue != 100 || dashboard.ClosedRevenue != 200 {
		t.Errorf("unexpected dashboard %+v", dashboard)
	}
	if dashboard.ConversionRate != 50 || dashboard.AdSpend != 40 {
		t.Errorf("unexpected dashboard %+v", dashboard)
	}

	for _, path := range []string{"pipeline", "finance", "campaigns", "reputation"} {
		resp, err := http.Get(srv.URL + "/api/v1/reports/" + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("reports/%s status = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestGenerateInsights(t *testing.T) {
	srv, svc := newTestServer(t, "", &stubSummarizer{text: "Close the proposal deals."})

	// Without clients the endpoint refuses.
	resp, err := http.Post(srv.URL+"/api/v1/insights", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}

	if _, err := svc.AddClient(context.Background(), types.NewClient{Name: "Acme"}); err != nil {
		t.Fatal(err)
	}

	resp, err = http.Post(srv.URL+"/api/v1/insights", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out InsightsResponse
	decodeBody(t, resp, &out)
	if out.Insights != "Close the proposal deals." {
		t.Errorf("insights = %q", out.Insights)
	}
}

func TestGenerateInsights_CollaboratorFailureIs200(t *testing.T) {
	srv, svc := newTestServer(t, "", &stubSummarizer{err: errors.New("api down")})

	if _, err := svc.AddClient(context.Background(), types.NewClient{Name: "Acme"}); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Post(srv.URL+"/api/v1/insights", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out InsightsResponse
	decodeBody(t, resp, &out)
	if out.Insights != insights.FallbackMessage {
		t.Errorf("insights = %q, want fallback", out.Insights)
	}
}

func TestAllCollectionsListEmpty(t *testing.T) {
	srv, _ := newTestServer(t, "", nil)

	paths := []string{
		"clients", "projects", "tasks", "employees", "expenses",
		"campaigns", "budgets", "opportunities", "workflows",
		"messages", "reviews",
	}
	for _, p := range paths {
		resp, err := http.Get(fmt.Sprintf("%s/api/v1/%s", srv.URL, p))
		if err != nil {
			t.Fatal(err)
		}
		var items []json.RawMessage
		decodeBody(t, resp, &items)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d, want 200", p, resp.StatusCode)
		}
		if len(items) != 0 {
			t.Errorf("%s should start empty, got %d items", p, len(items))
		}
	}
}
