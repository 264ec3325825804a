package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/ayush6624/go-chatgpt"
)

// LlmCompletion carries the model output plus the usage accounting the
// caller needs for the model call log.
type LlmCompletion struct {
	Content          string
	Model            string
	PromptTokens     int32
	CompletionTokens int32
	TotalTokens      int32
	Duration         time.Duration
}

type LlmRepository interface {
	ChatCompletion(ctx context.Context, model chatgpt.ChatGPTModel, systemPrompt string, userPrompt string) (*LlmCompletion, error)
}

type llmRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewLlmRepository(apiKey string) (LlmRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return llmRepositoryHandler{
		GptClient: client,
	}, nil
}

func (h llmRepositoryHandler) ChatCompletion(ctx context.Context, model chatgpt.ChatGPTModel, systemPrompt string, userPrompt string) (*LlmCompletion, error) {
	messages := []chatgpt.ChatMessage{}
	if systemPrompt != "" {
		messages = append(messages, chatgpt.ChatMessage{
			Role:    chatgpt.ChatGPTModelRoleSystem,
			Content: systemPrompt,
		})
	}
	messages = append(messages, chatgpt.ChatMessage{
		Role:    chatgpt.ChatGPTModelRoleUser,
		Content: userPrompt,
	})

	start := time.Now()
	resp, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return &LlmCompletion{
		Content:          resp.Choices[0].Message.Content,
		Model:            string(model),
		PromptTokens:     int32(resp.Usage.Prompt_Tokens),
		CompletionTokens: int32(resp.Usage.Completion_Tokens),
		TotalTokens:      int32(resp.Usage.Total_Tokens),
		Duration:         time.Since(start),
	}, nil
}
