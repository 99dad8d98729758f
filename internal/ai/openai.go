package ai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"craftapi/internal/config"
)

// OpenAIClient implements Transcriber and Translator using the OpenAI
// API: Whisper for speech-to-text and a chat model for translation.
type OpenAIClient struct {
	client           *openai.Client
	whisperModel     string
	translationModel string
	call             *caller
}

var (
	_ Transcriber = (*OpenAIClient)(nil)
	_ Translator  = (*OpenAIClient)(nil)
)

// NewOpenAIClient creates the OpenAI adapter. Outbound requests are
// traced via otelhttp.
func NewOpenAIClient(cfg config.OpenAIConfig, aiCfg config.AIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return newOpenAIClient(openai.NewClientWithConfig(clientCfg), cfg, aiCfg), nil
}

func newOpenAIClient(client *openai.Client, cfg config.OpenAIConfig, aiCfg config.AIConfig) *OpenAIClient {
	return &OpenAIClient{
		client:           client,
		whisperModel:     cfg.WhisperModel,
		translationModel: cfg.TranslationModel,
		call:             newCaller("openai", aiCfg),
	}
}

// Transcribe sends the audio to Whisper and returns the recognized text.
// The filename only matters for its extension; Whisper uses it to pick
// the decoder.
func (c *OpenAIClient) Transcribe(ctx context.Context, r io.Reader, filename, language string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("audio reader is nil")
	}

	// The SDK drains the reader on every attempt, so buffer the audio
	// once and hand each attempt a fresh reader.
	audio, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}

	var text string
	err = c.call.do(ctx, "transcribe", func() error {
		resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
			Model:    c.whisperModel,
			Reader:   bytes.NewReader(audio),
			FilePath: filename,
			Language: language,
		})
		if err != nil {
			return err
		}
		text = strings.TrimSpace(resp.Text)
		return nil
	})
	if err != nil {
		return "", err
	}
	return text, nil
}

// Translate translates text into the target language via a chat
// completion. The model is instructed to return only the translation.
func (c *OpenAIClient) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text is required")
	}
	if targetLanguage == "" {
		targetLanguage = "English"
	}

	req := openai.ChatCompletionRequest{
		Model: c.translationModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(
					"You are a translator. Translate the user's text to %s. Respond with only the translation, no explanations.",
					targetLanguage),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
		Temperature: 0.3,
	}

	var out string
	err := c.call.do(ctx, "translate", func() error {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("no translation returned")
		}
		out = strings.TrimSpace(resp.Choices[0].Message.Content)
		return nil
	})
	if err != nil {
		return "", err
	}
	return out, nil
}
