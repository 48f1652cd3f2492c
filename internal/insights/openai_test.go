package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// mockChatService implements ChatService for testing
type mockChatService struct {
	response *openai.ChatCompletion
	err      error
	// Track calls for verification
	callCount  int
	lastParams openai.ChatCompletionNewParams
}

func (m *mockChatService) New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	m.callCount++
	m.lastParams = params
	return m.response, m.err
}

func chatResponse(content string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestOpenAI_Summarize(t *testing.T) {
	mock := &mockChatService{response: chatResponse("Raise retainer prices.")}
	o := &OpenAI{chat: mock, model: "gpt-4o-mini"}

	text, err := o.Summarize(context.Background(), "- Total Active Clients: 3")
	if err != nil {
		t.Fatal(err)
	}
	if text != "Raise retainer prices." {
		t.Errorf("unexpected text %q", text)
	}
	if mock.callCount != 1 {
		t.Errorf("expected 1 call, got %d", mock.callCount)
	}
	if got := mock.lastParams.Model.Value; got != openai.ChatModel("gpt-4o-mini") {
		t.Errorf("unexpected model %q", got)
	}
}

func TestOpenAI_Summarize_APIError(t *testing.T) {
	mock := &mockChatService{err: errors.New("rate limited")}
	o := &OpenAI{chat: mock, model: "gpt-4o-mini"}

	_, err := o.Summarize(context.Background(), "digest")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "insight generation failed") {
		t.Errorf("error should be wrapped, got %v", err)
	}
}

func TestOpenAI_Summarize_NoChoices(t *testing.T) {
	mock := &mockChatService{response: &openai.ChatCompletion{}}
	o := &OpenAI{chat: mock, model: "gpt-4o-mini"}

	_, err := o.Summarize(context.Background(), "digest")
	if err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestOpenAI_Summarize_ContextCancelled(t *testing.T) {
	mock := &mockChatService{response: chatResponse("ok")}
	o := &OpenAI{chat: mock, model: "gpt-4o-mini"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Summarize(ctx, "digest")
	if err == nil {
		t.Fatal("expected error on cancelled context")
	}
	if mock.callCount != 0 {
		t.Errorf("expected 0 completed calls, got %d", mock.callCount)
	}
}

func TestOpenAI_ModelName(t *testing.T) {
	o := &OpenAI{model: "gpt-4o-mini"}
	if o.ModelName() != "gpt-4o-mini" {
		t.Errorf("unexpected model name %q", o.ModelName())
	}
}
