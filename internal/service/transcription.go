package service

import (
	"context"
	"io"
	"strings"

	"craftapi/internal/ai"
)

// TranscriptionResult is the outcome of one voice-description upload.
// TranslatedText is set only when the spoken language was not English.
type TranscriptionResult struct {
	Text           string `json:"text"`
	Language       string `json:"language"`
	TranslatedText string `json:"translated_text,omitempty"`
}

// TranscriptionService turns recorded voice descriptions into English
// text the rest of the pipeline can use.
type TranscriptionService interface {
	// Transcribe recognizes the audio; non-English results are also
	// translated to English so content generation always has an
	// English description to work from.
	Transcribe(ctx context.Context, r io.Reader, filename, language string) (*TranscriptionResult, error)

	// Translate translates arbitrary text into the target language.
	Translate(ctx context.Context, text, targetLanguage string) (string, error)
}

type transcriptionService struct {
	transcriber ai.Transcriber
	translator  ai.Translator
}

// NewTranscriptionService constructs a new TranscriptionService.
func NewTranscriptionService(transcriber ai.Transcriber, translator ai.Translator) TranscriptionService {
	return &transcriptionService{transcriber: transcriber, translator: translator}
}

func (s *transcriptionService) Transcribe(ctx context.Context, r io.Reader, filename, language string) (*TranscriptionResult, error) {
	if r == nil {
		return nil, ErrReaderNil
	}

	text, err := s.transcriber.Transcribe(ctx, r, filename, language)
	if err != nil {
		return nil, err
	}

	res := &TranscriptionResult{Text: text, Language: language}
	if language != "" && language != "en" && text != "" {
		translated, err := s.translator.Translate(ctx, text, "English")
		if err != nil {
			// The transcript is still useful on its own; surface it
			// and let the caller retry translation separately.
			return res, nil
		}
		res.TranslatedText = translated
	}
	return res, nil
}

func (s *transcriptionService) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrTextRequired
	}
	return s.translator.Translate(ctx, text, targetLanguage)
}
