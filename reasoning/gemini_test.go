package reasoning

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

func geminiForServer(srv *httptest.Server, key string) *Gemini {
	return NewGemini(func(o *GeminiOptions) {
		o.BaseURL = srv.URL
		o.HTTPClient = srv.Client()
		o.APIKey = func() string { return key }
	})
}

func TestGeminiCompleteFoldsSystemIntoUserMessage(t *testing.T) {
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"plan text"}]}}]}`))
	}))
	defer srv.Close()

	text, err := geminiForServer(srv, "secret").Complete(context.Background(), Request{
		System: "you orchestrate",
		User:   "find the CTO",
	})
	require.NoError(t, err)
	assert.Equal(t, "plan text", text)

	sent := gjson.GetBytes(gotBody, "contents.0.parts.0.text").String()
	assert.Contains(t, sent, "System: you orchestrate")
	assert.Contains(t, sent, "User Query: find the CTO")
	assert.Equal(t, "user", gjson.GetBytes(gotBody, "contents.0.role").String())
}

func TestGeminiCompleteMissingCredential(t *testing.T) {
	g := NewGemini()

	_, err := g.Complete(context.Background(), Request{User: "q"})
	var missing *core.MissingCredentialError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "google", missing.Provider)
}

func TestGeminiCompleteUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := geminiForServer(srv, "k").Complete(context.Background(), Request{User: "q"})
	var upstream *core.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusTooManyRequests, upstream.Status)
}

func TestGeminiCompleteNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := geminiForServer(srv, "k").Complete(context.Background(), Request{User: "q"})
	assert.ErrorIs(t, err, core.ErrEmptyCompletion)
}

func TestMockProviderCannedResponse(t *testing.T) {
	m := NewMockProvider("test", "mock")
	m.AddResponse("hello", "world")

	text, err := m.Complete(context.Background(), Request{User: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "world", text)
}
