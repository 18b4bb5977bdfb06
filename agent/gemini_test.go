package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

func callerForServer(srv *httptest.Server, key string) *GeminiCaller {
	return NewGeminiCaller(func(o *GeminiCallerOptions) {
		o.BaseURL = srv.URL
		o.HTTPClient = srv.Client()
		o.APIKey = func() string { return key }
	})
}

func collect(ch <-chan Chunk) []Chunk {
	var chunks []Chunk
	for c := range ch {
		chunks = append(chunks, c)
	}
	return chunks
}

func sseLine(text string) string {
	return fmt.Sprintf("data: {\"candidates\":[{\"content\":{\"parts\":[{\"text\":%q}]}}]}\n\n", text)
}

func TestStreamForwardsChunksInOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = fmt.Fprint(w, sseLine("one"))
		_, _ = fmt.Fprint(w, sseLine("two"))
		_, _ = fmt.Fprint(w, "data: not json, skipped\n\n")
		_, _ = fmt.Fprint(w, sseLine("three"))
	}))
	defer srv.Close()

	chunks := collect(callerForServer(srv, "k").Stream(context.Background(), "prompt", "system"))
	require.Len(t, chunks, 3)
	assert.Equal(t, []Chunk{{Text: "one"}, {Text: "two"}, {Text: "three"}}, chunks)
}

func TestStreamExtractsKnowledgeCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, `data: {"candidates":[{"content":{"parts":[{"functionCall":{"name":"addToKnowledge","args":{"entry":"CTO is Jane Doe"}}}]}}]}`+"\n\n")
	}))
	defer srv.Close()

	chunks := collect(callerForServer(srv, "k").Stream(context.Background(), "p", "s"))
	require.Len(t, chunks, 1)
	assert.Equal(t, "CTO is Jane Doe", chunks[0].Knowledge)
}

func TestStreamDeclaresTools(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		_, _ = fmt.Fprint(w, sseLine("ok"))
	}))
	defer srv.Close()

	collect(callerForServer(srv, "k").Stream(context.Background(), "p", "sys"))

	assert.True(t, gjson.Get(gotBody, "tools.0.googleSearch").Exists())
	assert.Equal(t, "addToKnowledge", gjson.Get(gotBody, "tools.1.functionDeclarations.0.name").String())
	sent := gjson.Get(gotBody, "contents.0.parts.0.text").String()
	assert.Contains(t, sent, "System: sys")
	assert.Contains(t, sent, "User: p")
}

func TestStreamMissingCredentialIsErrorChunk(t *testing.T) {
	chunks := collect(NewGeminiCaller().Stream(context.Background(), "p", "s"))
	require.Len(t, chunks, 1)

	var missing *core.MissingCredentialError
	assert.True(t, errors.As(chunks[0].Err, &missing))
}

func TestStreamNonSuccessStatusIsErrorChunk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	chunks := collect(callerForServer(srv, "k").Stream(context.Background(), "p", "s"))
	require.Len(t, chunks, 1)

	var upstream *core.UpstreamError
	require.True(t, errors.As(chunks[0].Err, &upstream))
	assert.Equal(t, http.StatusServiceUnavailable, upstream.Status)
}

func TestMockCallerReplaysScript(t *testing.T) {
	m := &MockCaller{Script: map[string][]Chunk{"p": {{Text: "a"}, {Text: "b"}}}}
	chunks := collect(m.Stream(context.Background(), "p", ""))
	assert.Equal(t, []Chunk{{Text: "a"}, {Text: "b"}}, chunks)
}
