package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextClient_GenerateText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"안녕"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewTextClient("key", srv.URL+"/v1/", "test-model")
	got, err := c.GenerateText(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "안녕", got)
}

// speechRequestBody is the part of the generateContent body the tests check.
type speechRequestBody struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseModalities []string `json:"responseModalities"`
		SpeechConfig       struct {
			VoiceConfig struct {
				PrebuiltVoiceConfig struct {
					VoiceName string `json:"voiceName"`
				} `json:"prebuiltVoiceConfig"`
			} `json:"voiceConfig"`
		} `json:"speechConfig"`
	} `json:"generationConfig"`
}

func newTestSpeechClient(t *testing.T, handler http.HandlerFunc) *SpeechClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewSpeechClient(context.Background(), "key", "tts", srv.URL+"/")
	require.NoError(t, err)
	return c
}

func TestSpeechClient_Synthesize(t *testing.T) {
	pcm := []byte{0x01, 0x00, 0xff, 0x7f}

	t.Run("should concatenate inline audio parts", func(t *testing.T) {
		c := newTestSpeechClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasSuffix(r.URL.Path, "/models/tts:generateContent"), r.URL.Path)
			assert.Equal(t, "key", r.Header.Get("x-goog-api-key"))

			var req speechRequestBody
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"AUDIO"}, req.GenerationConfig.ResponseModalities)
			assert.Equal(t, "Charon", req.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
			require.NotEmpty(t, req.Contents)
			assert.Equal(t, "script", req.Contents[0].Parts[0].Text)

			data := base64.StdEncoding.EncodeToString(pcm[:2])
			rest := base64.StdEncoding.EncodeToString(pcm[2:])
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[` +
				`{"inlineData":{"mimeType":"audio/L16;rate=24000","data":"` + data + `"}},` +
				`{"inlineData":{"mimeType":"audio/L16;rate=24000","data":"` + rest + `"}}]}}]}`))
		})

		got, err := c.Synthesize(context.Background(), "script", "Charon")
		require.NoError(t, err)
		assert.Equal(t, pcm, got)
	})

	t.Run("should fail without audio", func(t *testing.T) {
		c := newTestSpeechClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := c.Synthesize(context.Background(), "s", "Puck")
		require.ErrorIs(t, err, ErrNoAudio)
	})

	t.Run("should surface API errors", func(t *testing.T) {
		c := newTestSpeechClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"unknown voice","status":"INVALID_ARGUMENT"}}`))
		})

		_, err := c.Synthesize(context.Background(), "s", "Nobody")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoAudio)
		assert.Contains(t, err.Error(), "unknown voice")
	})
}
