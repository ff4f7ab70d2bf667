package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Both Llama backends speak the OpenAI chat-completions dialect; they only
// differ in base URL and model name.
const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"

	metaBaseURL = "https://www.llama-api.com"
	metaModel   = "llama3.3-70b"
)

type llamaProvider struct {
	name   string
	model  string
	client openai.Client
}

// NewGroqProvider targets Llama via the Groq gateway.
func NewGroqProvider(apiKey string) Provider {
	return &llamaProvider{
		name:   ProviderMeta,
		model:  groqModel,
		client: openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(groqBaseURL)),
	}
}

// NewMetaDirectProvider targets the Llama API directly.
func NewMetaDirectProvider(apiKey string) Provider {
	return &llamaProvider{
		name:   ProviderMetaDirect,
		model:  metaModel,
		client: openai.NewClient(option.WithAPIKey(apiKey), option.WithBaseURL(metaBaseURL)),
	}
}

func (p *llamaProvider) Name() string { return p.name }

func (p *llamaProvider) Generate(ctx context.Context, query, conversation string) (string, error) {
	user := query
	if conversation != "" {
		user = conversation + "\n\nClient: " + query
	}

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(SystemPrompt),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(0.7),
		MaxTokens:   openai.Int(150),
	})
	if err != nil {
		return "", fmt.Errorf("%s generate: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s returned no choices", p.name)
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%s returned empty text", p.name)
	}
	return text, nil
}
