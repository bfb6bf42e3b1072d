package provider

import (
	"context"
	"fmt"
	"strings"

	texttranslator "github.com/YourCarma/text-translator"
	"github.com/YourCarma/text-translator/logging"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const (
	systemPrompt = `You are a machine translation model specialized in military and legal texts.
Translate with maximum accuracy, without interpretation or alteration of meaning.
Preserve terminology, structure, numbering, formatting, and the formal tone of documents.
Translate military terminology according to established professional usage.
Don't decipher the abbreviations.
Do not add comments, explanations, or summaries.
If a term is ambiguous, keep the original or use the most neutral equivalent.
By default, perform translation only.`

	userPromptTemplate = "Translate the following segment into %s, without additional explanation.\n" +
		"The %s segment:\n" +
		"```\n%s\n```"

	// maxTokens caps the generated output of a single translation.
	maxTokens = 32000

	defaultModel = "gpt-4o-mini"
)

// OpenAIProvider implements AIProvider using an OpenAI-compatible chat-completion API.
// The client is immutable after construction and shared by concurrent requests.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// NewOpenAIProvider creates a new OpenAI provider. It fails only on
// invalid local setup (e.g. a bad proxy address); no request is sent.
func NewOpenAIProvider(cfg OpenAIConfig, logger *zap.Logger) (*OpenAIProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.Address != "" {
		config.BaseURL = strings.TrimRight(cfg.Address, "/")
	}

	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}
	config.HTTPClient = httpClient

	model := cfg.ModelName
	if model == "" {
		model = defaultModel
	}

	if cfg.UseProxy {
		logger.Info("Using proxy", zap.String("proxy_address", redactURL(cfg.ProxyAddress)))
	}
	logger.Info("Connection to base url", zap.String("address", config.BaseURL))
	logger.Info("API key", zap.String("api_key", logging.MaskSecret(cfg.APIKey)))
	logger.Info("Model name", zap.String("model_name", model))

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: cfg.Temperature,
		logger:      logger,
	}, nil
}

// Translate translates one task with a single chat-completion request.
func (p *OpenAIProvider) Translate(ctx context.Context, task TranslateTask) (string, error) {
	sourceName, targetName, err := texttranslator.ResolveLanguages(task)
	if err != nil {
		return "", err
	}

	req := p.buildRequest(sourceName, targetName, task.Text)
	p.logger.Debug("Sending translation request",
		zap.String("model", p.model),
		zap.String("source_language", sourceName),
		zap.String("target_language", targetName),
		zap.Int("text_length", len(task.Text)),
	)

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(err)
	}

	return extractTranslation(resp)
}

// Model returns the configured model name.
func (p *OpenAIProvider) Model() string {
	return p.model
}

func (p *OpenAIProvider) buildRequest(sourceName, targetName, text string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(sourceName, targetName, text)},
		},
		MaxTokens:   maxTokens,
		Temperature: p.temperature, // zero is omitted from the payload
	}
}

func buildUserMessage(sourceName, targetName, text string) string {
	return fmt.Sprintf(userPromptTemplate, targetName, sourceName, text)
}

func extractTranslation(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", texttranslator.NewProviderError(texttranslator.KindInvalidResponse,
			"no choices in model response", nil)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter || choice.Message.Refusal != "" {
		return "", texttranslator.NewProviderError(texttranslator.KindModelModerationError,
			"model refused the content", nil)
	}
	if choice.Message.Content == "" {
		return "", texttranslator.NewProviderError(texttranslator.KindInvalidResponse,
			"empty content in first choice", nil)
	}

	return choice.Message.Content, nil
}

// Verify OpenAIProvider implements AIProvider
var _ AIProvider = (*OpenAIProvider)(nil)
