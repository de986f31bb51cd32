package openrouter_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silver-dev/resume-checker/internal/adapter/ai/openrouter"
	"github.com/silver-dev/resume-checker/internal/config"
	"github.com/silver-dev/resume-checker/internal/domain"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		AppEnv:            "test",
		OpenRouterAPIKey:  "test-key",
		OpenRouterBaseURL: baseURL,
		OpenRouterModel:   "openai/gpt-4o-mini",
		AIMaxTokens:       512,
		AIRequestTimeout:  5 * time.Second,
	}
}

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func sampleMessages() []domain.ChatMessage {
	return []domain.ChatMessage{
		domain.TextMessage(domain.RoleSystem, "system prompt"),
		{Role: domain.RoleUser, Parts: []domain.ContentPart{
			{Text: "user prompt"},
			{File: []byte("%PDF-1.4 fake")},
		}},
	}
}

func TestGrade_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string          `json:"role"`
				Content json.RawMessage `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "openai/gpt-4o-mini", body.Model)
		require.Len(t, body.Messages, 2)
		// File-bearing message uses the content-part array form.
		assert.Contains(t, string(body.Messages[1].Content), "data:application/pdf;base64,")

		_, _ = w.Write([]byte(chatResponse(`{"grade":"A","red_flags":[],"yellow_flags":["flag"]}`)))
	}))
	defer srv.Close()

	cl := openrouter.New(testConfig(srv.URL))
	res, err := cl.Grade(context.Background(), sampleMessages())
	require.NoError(t, err)
	assert.Equal(t, domain.GradeA, res.Grade)
	assert.Equal(t, []string{"flag"}, res.YellowFlags)
}

func TestGrade_RetriesOn429ThenSucceeds(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(chatResponse(`{"grade":"S","red_flags":[],"yellow_flags":[]}`)))
	}))
	defer srv.Close()

	cl := openrouter.New(testConfig(srv.URL))
	res, err := cl.Grade(context.Background(), sampleMessages())
	require.NoError(t, err)
	assert.Equal(t, domain.GradeS, res.Grade)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(2))
}

func TestGrade_ClientErrorIsPermanent(t *testing.T) {
	t.Parallel()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	cl := openrouter.New(testConfig(srv.URL))
	_, err := cl.Grade(context.Background(), sampleMessages())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGrading))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "4xx must not be retried")
}

func TestGrade_SchemaInvalidContent(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse(`{"grade":"Z"}`)))
	}))
	defer srv.Close()

	cl := openrouter.New(testConfig(srv.URL))
	_, err := cl.Grade(context.Background(), sampleMessages())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGrading))
}

func TestGrade_MissingAPIKey(t *testing.T) {
	t.Parallel()
	cfg := testConfig("http://unused")
	cfg.OpenRouterAPIKey = ""
	cl := openrouter.New(cfg)
	_, err := cl.Grade(context.Background(), sampleMessages())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGrading))
}
