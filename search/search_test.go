package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mukeshvancha122/Persona-Webscraping/core"
)

func noKey() string { return "" }
func withKey() string { return "test-key" }

func TestServiceUnknownProviderReturnsEmpty(t *testing.T) {
	svc := NewService(nil)

	results := svc.Search(context.Background(), "anyone", "altavista")
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestServiceMissingCredentialReturnsEmpty(t *testing.T) {
	svc := NewService([]Provider{NewBrave(noKey)})

	results := svc.Search(context.Background(), "anyone", "brave")
	assert.Empty(t, results)
}

func TestServiceDefaultsProviderName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"web":{"results":[{"title":"T","url":"https://t","description":"D"}]}}`))
	}))
	defer srv.Close()

	brave := NewBraveWithClient(withKey, srv.URL, srv.Client())
	svc := NewService([]Provider{brave}, WithDefaultProvider("brave"))

	results := svc.Search(context.Background(), "anyone", "")
	require.Len(t, results, 1)
	assert.Equal(t, "T", results[0].Title)
}

func TestServiceProviderFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	brave := NewBraveWithClient(withKey, srv.URL, srv.Client())
	svc := NewService([]Provider{brave})

	assert.Empty(t, svc.Search(context.Background(), "anyone", "brave"))
}

func TestBraveSearchNormalizesAndCaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-Subscription-Token"))
		assert.Equal(t, "jane doe", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"web":{"results":[
			{"title":"r1","url":"https://1","description":"d1"},
			{"title":"r2","url":"https://2","description":"d2"},
			{"title":"r3","url":"https://3","description":"d3"},
			{"title":"r4","url":"https://4","description":"d4"},
			{"title":"r5","url":"https://5","description":"d5"},
			{"title":"r6","url":"https://6","description":"d6"}
		]}}`))
	}))
	defer srv.Close()

	results, err := NewBraveWithClient(withKey, srv.URL, srv.Client()).
		Search(context.Background(), "jane doe")
	require.NoError(t, err)
	require.Len(t, results, braveMaxResults)
	assert.Equal(t, 1, results[0].Position)
	assert.Equal(t, "r5", results[4].Title)
	assert.Equal(t, "https://2", results[1].Link)
}

func TestBraveMissingCredential(t *testing.T) {
	_, err := NewBrave(noKey).Search(context.Background(), "q")

	var missing *core.MissingCredentialError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "brave", missing.Provider)
}

func TestZenserpPositionFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		_, _ = w.Write([]byte(`{"organic":[
			{"position":3,"title":"a","url":"https://a","description":"da"},
			{"rank":7,"title":"b","url":"https://b","description":"db"},
			{"title":"c","url":"https://c","description":"dc"}
		]}`))
	}))
	defer srv.Close()

	results, err := NewZenserpWithClient(withKey, srv.URL, srv.Client()).
		Search(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 3, results[0].Position)
	assert.Equal(t, 7, results[1].Position)
	assert.Equal(t, 3, results[2].Position) // enumeration order, 1-based
}

func TestPerplexitySnippetFallsBackToText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"results":[
			{"title":"a","url":"https://a","snippet":"sa"},
			{"title":"b","url":"https://b","text":"tb"}
		]}`))
	}))
	defer srv.Close()

	results, err := NewPerplexityWithClient(withKey, srv.URL, srv.Client()).
		Search(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "sa", results[0].Snippet)
	assert.Equal(t, "tb", results[1].Snippet)
}

func TestDuckDuckGoParsesLiteHTML(t *testing.T) {
	html := `<table>
		<tr><td><a rel="nofollow" class="result-link" href="https://example.com/one">First Result</a></td></tr>
		<tr><td class="result-snippet">Snippet one &amp; more</td></tr>
		<tr><td><a class="result-link" href="https://example.com/two">Second Result</a></td></tr>
		<tr><td class="result-snippet">Snippet two</td></tr>
	</table>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(html))
	}))
	defer srv.Close()

	results, err := NewDuckDuckGoWithClient(srv.URL, srv.Client()).
		Search(context.Background(), "example")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "First Result", results[0].Title)
	assert.Equal(t, "Snippet one & more", results[0].Snippet)
	assert.Equal(t, 2, results[1].Position)
}

func TestPageFetcherStripsHTML(t *testing.T) {
	page := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>
	<body><h1>Jane Doe</h1><p>Senior Engineer at Acme</p></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	text, err := NewPageFetcherWithClient(srv.Client()).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Engineer at Acme")
	assert.NotContains(t, text, "alert(1)")
	assert.NotContains(t, text, "color:red")
}
