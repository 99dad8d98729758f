package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	aiMocks "craftapi/internal/ai/mocks"
)

func TestTranscriptionService_Transcribe(t *testing.T) {
	ctx := context.Background()

	t.Run("english audio is not translated", func(t *testing.T) {
		mTranscriber := new(aiMocks.MockTranscriber)
		mTranslator := new(aiMocks.MockTranslator)
		r := strings.NewReader("audio")
		mTranscriber.On("Transcribe", ctx, r, "voice.webm", "en").
			Return("a hand woven scarf", nil)
		svc := NewTranscriptionService(mTranscriber, mTranslator)

		res, err := svc.Transcribe(ctx, r, "voice.webm", "en")

		assert.NoError(t, err)
		assert.Equal(t, "a hand woven scarf", res.Text)
		assert.Empty(t, res.TranslatedText)
		mTranslator.AssertNotCalled(t, "Translate")
	})

	t.Run("non-english audio gets an english translation", func(t *testing.T) {
		mTranscriber := new(aiMocks.MockTranscriber)
		mTranslator := new(aiMocks.MockTranslator)
		r := strings.NewReader("audio")
		mTranscriber.On("Transcribe", ctx, r, "voice.webm", "hi").
			Return("हाथ से बुना दुपट्टा", nil)
		mTranslator.On("Translate", ctx, "हाथ से बुना दुपट्टा", "English").
			Return("a hand woven scarf", nil)
		svc := NewTranscriptionService(mTranscriber, mTranslator)

		res, err := svc.Transcribe(ctx, r, "voice.webm", "hi")

		assert.NoError(t, err)
		assert.Equal(t, "हाथ से बुना दुपट्टा", res.Text)
		assert.Equal(t, "hi", res.Language)
		assert.Equal(t, "a hand woven scarf", res.TranslatedText)
	})

	t.Run("translation failure still returns the transcript", func(t *testing.T) {
		mTranscriber := new(aiMocks.MockTranscriber)
		mTranslator := new(aiMocks.MockTranslator)
		r := strings.NewReader("audio")
		mTranscriber.On("Transcribe", ctx, r, "voice.webm", "gu").
			Return("transcript", nil)
		mTranslator.On("Translate", ctx, "transcript", "English").
			Return("", errors.New("translator down"))
		svc := NewTranscriptionService(mTranscriber, mTranslator)

		res, err := svc.Transcribe(ctx, r, "voice.webm", "gu")

		assert.NoError(t, err)
		assert.Equal(t, "transcript", res.Text)
		assert.Empty(t, res.TranslatedText)
	})

	t.Run("transcriber error", func(t *testing.T) {
		mTranscriber := new(aiMocks.MockTranscriber)
		r := strings.NewReader("audio")
		mTranscriber.On("Transcribe", ctx, r, "voice.webm", "").
			Return("", errors.New("whisper down"))
		svc := NewTranscriptionService(mTranscriber, new(aiMocks.MockTranslator))

		res, err := svc.Transcribe(ctx, r, "voice.webm", "")

		assert.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := NewTranscriptionService(new(aiMocks.MockTranscriber), new(aiMocks.MockTranslator))
		_, err := svc.Transcribe(ctx, nil, "voice.webm", "")
		assert.ErrorIs(t, err, ErrReaderNil)
	})
}

func TestTranscriptionService_Translate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mTranslator := new(aiMocks.MockTranslator)
		mTranslator.On("Translate", ctx, "hello", "Hindi").Return("नमस्ते", nil)
		svc := NewTranscriptionService(new(aiMocks.MockTranscriber), mTranslator)

		out, err := svc.Translate(ctx, "hello", "Hindi")
		assert.NoError(t, err)
		assert.Equal(t, "नमस्ते", out)
	})

	t.Run("blank text", func(t *testing.T) {
		svc := NewTranscriptionService(new(aiMocks.MockTranscriber), new(aiMocks.MockTranslator))
		_, err := svc.Translate(ctx, "   ", "Hindi")
		assert.ErrorIs(t, err, ErrTextRequired)
	})
}
