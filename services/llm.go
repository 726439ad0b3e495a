package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"triptactix/config"
)

const itinerarySystemPrompt = `You are a helpful travel assistant.
Answer the traveller's question with a practical itinerary or concrete advice.
Requirements:
- Organise multi-day plans day by day with headings.
- Do not invent specific prices or schedules unless they are commonly known and generic.
- Keep the tone concise and actionable.`

var errEmptyAnswer = errors.New("empty answer from model")

// ─── OpenAI ───────────────────────────────────────────────────────────────────

// OpenAIAssistant answers itinerary questions with a chat completion.
type OpenAIAssistant struct {
	client *openai.Client
	model  string
}

// NewOpenAIAssistant builds the tier. baseURL may point at any
// OpenAI-compatible endpoint; empty keeps the public API.
func NewOpenAIAssistant(apiKey, model, baseURL string) *OpenAIAssistant {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIAssistant{client: openai.NewClientWithConfig(cfg), model: model}
}

func (a *OpenAIAssistant) Itinerary(ctx context.Context, query string) (*RAGResponse, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: itinerarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		Temperature: 0.6,
		MaxTokens:   800,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, fmt.Errorf("openai: %w", errEmptyAnswer)
	}
	return &RAGResponse{Itinerary: strings.TrimSpace(resp.Choices[0].Message.Content)}, nil
}

// ─── Gemini ───────────────────────────────────────────────────────────────────

type GeminiAssistant struct {
	client *genai.Client
	model  string
}

func NewGeminiAssistant(ctx context.Context, apiKey, model string) (*GeminiAssistant, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiAssistant{client: client, model: model}, nil
}

func (a *GeminiAssistant) Itinerary(ctx context.Context, query string) (*RAGResponse, error) {
	m := a.client.GenerativeModel(a.model)
	m.SystemInstruction = genai.NewUserContent(genai.Text(itinerarySystemPrompt))
	m.SetTemperature(0.6)
	m.SetMaxOutputTokens(800)

	resp, err := m.GenerateContent(ctx, genai.Text(query))
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	text := geminiText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini: %w", errEmptyAnswer)
	}
	return &RAGResponse{Itinerary: text}, nil
}

func (a *GeminiAssistant) Close() error {
	return a.client.Close()
}

// geminiText joins the text parts of the first candidate.
func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return strings.TrimSpace(b.String())
}

// NewLLMAssistant returns the tier selected by cfg.Provider, or nil when no
// provider is configured. The returned close func is never nil.
func NewLLMAssistant(ctx context.Context, cfg config.AssistantConfig) (Assistant, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Provider {
	case "":
		return nil, noop, nil
	case "openai":
		return NewOpenAIAssistant(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL), noop, nil
	case "gemini":
		g, err := NewGeminiAssistant(ctx, cfg.GeminiKey, cfg.GeminiModel)
		if err != nil {
			return nil, noop, err
		}
		return g, g.Close, nil
	default:
		return nil, noop, fmt.Errorf("unsupported assistant provider: %s", cfg.Provider)
	}
}
