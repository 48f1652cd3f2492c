package insights

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Compile-time interface check
var _ Summarizer = (*OpenAI)(nil)

// advisorPrompt frames the collaborator as a business advisor; the digest
// is appended as the data context.
const advisorPrompt = "You are a strategic business advisor for Highshift Media. " +
	"Analyze the following CRM data summary and provide 3-4 concise, actionable " +
	"insights to improve operations, profitability, or marketing efficiency."

// ChatService defines the interface for making chat completion API calls.
// This abstraction enables testing without calling the real OpenAI API.
type ChatService interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

// OpenAI implements the insights collaborator using OpenAI's API.
type OpenAI struct {
	chat  ChatService
	model openai.ChatModel
}

// NewOpenAI creates a new OpenAI-backed summarizer.
func NewOpenAI(apiKey, model string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		chat:  client.Chat.Completions,
		model: openai.ChatModel(model),
	}
}

// Summarize sends the digest to the chat completion API and returns the
// generated prose.
func (o *OpenAI) Summarize(ctx context.Context, digest string) (string, error) {
	resp, err := o.chat.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(advisorPrompt),
			openai.UserMessage("Data Context:\n" + digest),
		}),
		Model: openai.F(o.model),
	})
	if err != nil {
		return "", fmt.Errorf("insight generation failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("insight generation failed: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// ModelName returns the chat model name.
func (o *OpenAI) ModelName() string {
	return string(o.model)
}
