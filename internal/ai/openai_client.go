package ai

import (
	"context"
	"fmt"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// ChatProvider — провайдер семейства chat-completions.
// За счёт baseURL одним клиентом закрываются и OpenAI, и DeepSeek.
type ChatProvider struct {
	client *openai.Client
	model  string
}

func NewChatProvider(baseURL, apiKey, model string, httpClient *http.Client) *ChatProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &ChatProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (p *ChatProvider) Generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: float32(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrMalformedResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
