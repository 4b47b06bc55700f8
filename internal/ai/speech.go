package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"google.golang.org/genai"
)

// ErrNoAudio is returned when the model answered without any audio part.
var ErrNoAudio = errors.New("no audio data in response")

// SpeechClient asks a Gemini TTS model for spoken audio.
type SpeechClient struct {
	client *genai.Client
	model  string
}

var _ contract.SpeechSynthesizer = (*SpeechClient)(nil)

// NewSpeechClient builds a Gemini API client. An empty baseURL keeps the
// SDK default.
func NewSpeechClient(ctx context.Context, apiKey, model, baseURL string) (*SpeechClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: 3 * time.Minute},
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &SpeechClient{client: client, model: model}, nil
}

// Synthesize returns raw 16-bit little-endian mono PCM at 24 kHz.
func (c *SpeechClient) Synthesize(ctx context.Context, script, voice string) ([]byte, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(script), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: voice},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %w", err)
	}

	var pcm []byte
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil {
				pcm = append(pcm, part.InlineData.Data...)
			}
		}
	}
	if len(pcm) == 0 {
		return nil, ErrNoAudio
	}

	return pcm, nil
}
