package contract

//go:generate mockgen -source=ai.go -destination=../../../mocks/ai_mock.go -package=mocks

import "context"

// TextGenerator produces text from a prompt
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// SpeechSynthesizer turns a script into raw 16-bit little-endian PCM
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, script, voice string) ([]byte, error)
}
